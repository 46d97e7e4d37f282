package memdb

import (
	"time"

	"github.com/google/uuid"

	"loveadmin_backend/internal/models"
)

const dateLayout = "2006-01-02"

// NewSeeded builds a database filled with the demo dataset the dashboard is
// developed against: five users, open moderation cases, a month of
// transactions and a handful of API credentials. Runs before the server
// accepts requests, so no locking here.
func NewSeeded() *DB {
	db := New()
	today := time.Now().Format(dateLayout)
	now := time.Now()

	users := []models.User{
		{
			ID:       uuid.NewString(),
			Name:     "Sarah Johnson",
			Username: "sarah_j",
			Email:    "sarah@example.com",
			Phone:    "+1-555-123-4567",
			DOB:      "1995-06-15",
			Location: models.UserLocation{
				City:        "New York",
				Country:     "US",
				Coordinates: models.Coordinates{Latitude: 40.7128, Longitude: -74.006},
			},
			IsActive:     true,
			IsVerified:   true,
			Bio:          "Looking for genuine connections and someone who shares my love for adventure!",
			Images:       []string{"https://picsum.photos/400/400?random=1"},
			Interests:    []string{"Photography", "Hiking", "Travel", "Coffee", "Art"},
			Occupation:   "Marketing Manager",
			Education:    "Bachelor's Degree",
			Height:       "5'6\"",
			HereFor:      "Long-term relationship",
			Relationship: "Single",
			Children:     "Don't have kids",
			Drinking:     "Socially",
			Smoking:      "Never",
			Language:     []string{"English", "Spanish"},
			Religion:     "Christian",
			CreatedAt:    "2024-01-15",
			UpdatedAt:    "2024-01-15",
		},
		{
			ID:       uuid.NewString(),
			Name:     "Mike Chen",
			Username: "mike_chen",
			Email:    "mike@example.com",
			Phone:    "+1-555-234-5678",
			DOB:      "1990-03-22",
			Location: models.UserLocation{
				City:        "San Francisco",
				Country:     "US",
				Coordinates: models.Coordinates{Latitude: 37.7749, Longitude: -122.4194},
			},
			IsActive:     true,
			IsVerified:   false,
			Bio:          "Software engineer who loves outdoor activities and trying new restaurants.",
			Images:       []string{"https://picsum.photos/400/400?random=2"},
			Interests:    []string{"Hiking", "Coding", "Movies", "Food", "Gaming"},
			Occupation:   "Software Engineer",
			Education:    "Master's Degree",
			Height:       "5'10\"",
			HereFor:      "Dating",
			Relationship: "Single",
			Children:     "Want kids",
			Drinking:     "Occasionally",
			Smoking:      "Never",
			Language:     []string{"English", "Mandarin"},
			Religion:     "Agnostic",
			CreatedAt:    "2024-01-14",
			UpdatedAt:    "2024-01-14",
		},
		{
			ID:       uuid.NewString(),
			Name:     "Emma Davis",
			Username: "emma_d",
			Email:    "emma@example.com",
			Phone:    "+1-555-345-6789",
			DOB:      "1993-09-08",
			Location: models.UserLocation{
				City:        "Los Angeles",
				Country:     "US",
				Coordinates: models.Coordinates{Latitude: 34.0522, Longitude: -118.2437},
			},
			IsActive:     true,
			IsVerified:   true,
			Bio:          "Yoga instructor and wellness enthusiast. Looking for someone who values health and mindfulness.",
			Images:       []string{"https://picsum.photos/400/400?random=3"},
			Interests:    []string{"Yoga", "Meditation", "Healthy Cooking", "Beach", "Music"},
			Occupation:   "Yoga Instructor",
			Education:    "Bachelor's Degree",
			Height:       "5'4\"",
			HereFor:      "Serious relationship",
			Relationship: "Single",
			Children:     "Don't have kids",
			Drinking:     "Rarely",
			Smoking:      "Never",
			Language:     []string{"English"},
			Religion:     "Buddhist",
			CreatedAt:    "2024-01-13",
			UpdatedAt:    "2024-01-13",
		},
		{
			ID:       uuid.NewString(),
			Name:     "David Wilson",
			Username: "david_w",
			Email:    "david@example.com",
			Phone:    "+1-555-456-7890",
			DOB:      "1988-12-03",
			Location: models.UserLocation{
				City:        "Chicago",
				Country:     "US",
				Coordinates: models.Coordinates{Latitude: 41.8781, Longitude: -87.6298},
			},
			IsActive:     false,
			IsVerified:   true,
			Bio:          "Teacher who loves books, board games, and meaningful conversations.",
			Images:       []string{"https://picsum.photos/400/400?random=4"},
			Interests:    []string{"Reading", "Teaching", "Board Games", "History", "Writing"},
			Occupation:   "High School Teacher",
			Education:    "Master's Degree",
			Height:       "6'0\"",
			HereFor:      "Long-term relationship",
			Relationship: "Single",
			Children:     "Have kids",
			Drinking:     "Socially",
			Smoking:      "Never",
			Language:     []string{"English", "French"},
			Religion:     "Catholic",
			CreatedAt:    "2024-01-12",
			UpdatedAt:    "2024-01-12",
		},
		{
			ID:       uuid.NewString(),
			Name:     "Jessica Martinez",
			Username: "jess_m",
			Email:    "jessica@example.com",
			Phone:    "+1-555-567-8901",
			DOB:      "1996-04-18",
			Location: models.UserLocation{
				City:        "Miami",
				Country:     "US",
				Coordinates: models.Coordinates{Latitude: 25.7617, Longitude: -80.1918},
			},
			IsActive:     true,
			IsVerified:   false,
			Bio:          "Graphic designer who loves art, music festivals, and weekend adventures.",
			Images:       []string{"https://picsum.photos/400/400?random=5"},
			Interests:    []string{"Design", "Art", "Music", "Festivals", "Dancing"},
			Occupation:   "Graphic Designer",
			Education:    "Bachelor's Degree",
			Height:       "5'5\"",
			HereFor:      "Casual dating",
			Relationship: "Single",
			Children:     "Don't want kids",
			Drinking:     "Regularly",
			Smoking:      "Socially",
			Language:     []string{"English", "Spanish"},
			Religion:     "Non-religious",
			CreatedAt:    "2024-01-11",
			UpdatedAt:    "2024-01-11",
		},
	}
	for _, u := range users {
		db.Users[u.ID] = u
		db.UserOrder = append(db.UserOrder, u.ID)
	}

	reports := []models.Report{
		{
			ID:          uuid.NewString(),
			ViolatorID:  users[1].ID,
			UserID:      users[0].ID,
			Reason:      "Inappropriate Content",
			Description: "User posted inappropriate photos in their profile",
			Status:      models.ReportStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			ViolatorID:  users[4].ID,
			UserID:      users[2].ID,
			Reason:      "Harassment",
			Description: "User sent multiple unwanted messages after being asked to stop",
			Status:      models.ReportStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			ViolatorID:  users[3].ID,
			UserID:      users[1].ID,
			Reason:      "Fake Profile",
			Description: "Profile appears to be using fake photos and information",
			Status:      models.ReportStatusResolved,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
	for _, r := range reports {
		db.Reports[r.ID] = r
		db.ReportOrder = append(db.ReportOrder, r.ID)
	}

	verifications := []models.Verification{
		{
			ID:        uuid.NewString(),
			Video:     "https://example.com/verification1.mp4",
			UserID:    users[1].ID,
			Status:    models.VerificationStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Video:     "https://example.com/verification2.mp4",
			UserID:    users[4].ID,
			Status:    models.VerificationStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Video:     "https://example.com/verification3.mp4",
			UserID:    users[2].ID,
			Status:    models.VerificationStatusApproved,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for _, v := range verifications {
		db.Verifications[v.ID] = v
		db.VerificationOrder = append(db.VerificationOrder, v.ID)
	}

	transactions := []models.Transaction{
		{
			ID:          "TXN-001",
			Amount:      "29.99",
			ReferenceID: "REF-001",
			Narration:   "Premium Monthly Subscription",
			Plan:        "Premium Monthly",
			Subscribed:  true,
			UserID:      users[0].ID,
			ApprovedBy:  "admin",
			CreatedAt:   "2024-01-15",
			UpdatedAt:   "2024-01-15",
		},
		{
			ID:          "TXN-002",
			Amount:      "99.99",
			ReferenceID: "REF-002",
			Narration:   "Premium Annual Subscription",
			Plan:        "Premium Annual",
			Subscribed:  true,
			UserID:      users[2].ID,
			ApprovedBy:  "admin",
			CreatedAt:   "2024-01-14",
			UpdatedAt:   "2024-01-14",
		},
		{
			ID:          "TXN-003",
			Amount:      "19.99",
			ReferenceID: "REF-003",
			Narration:   "Premium Plus Monthly",
			Plan:        "Premium Plus",
			Subscribed:  false,
			UserID:      users[3].ID,
			ApprovedBy:  "admin",
			CreatedAt:   "2024-01-13",
			UpdatedAt:   "2024-01-13",
		},
		{
			ID:          "TXN-004",
			Amount:      "29.99",
			ReferenceID: "REF-004",
			Narration:   "Premium Monthly Subscription",
			Plan:        "Premium Monthly",
			Subscribed:  true,
			UserID:      users[4].ID,
			ApprovedBy:  "admin",
			CreatedAt:   "2024-01-12",
			UpdatedAt:   "2024-01-12",
		},
	}
	for _, t := range transactions {
		db.Transactions[t.ID] = t
		db.TransactionOrder = append(db.TransactionOrder, t.ID)
	}

	events := []models.Event{
		{
			ID:          uuid.NewString(),
			Title:       "Coffee Date",
			Description: "Let's grab coffee and get to know each other better",
			StartTime:   time.Date(2024, 1, 20, 15, 0, 0, 0, time.UTC),
			Location: models.EventLocation{
				Address:     "Starbucks, 123 Main St, New York, NY",
				Coordinates: models.EventCoordinates{Lat: 40.7589, Lng: -73.9851},
			},
			CreatorID: users[0].ID,
			PartnerID: users[1].ID,
			Status:    models.EventStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Museum Visit",
			Description: "Explore the art museum together this weekend",
			StartTime:   time.Date(2024, 1, 21, 14, 0, 0, 0, time.UTC),
			Location: models.EventLocation{
				Address:     "Metropolitan Museum, New York, NY",
				Coordinates: models.EventCoordinates{Lat: 40.7794, Lng: -73.9632},
			},
			CreatorID: users[2].ID,
			Status:    models.EventStatusPlanned,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for _, e := range events {
		db.Events[e.ID] = e
		db.EventOrder = append(db.EventOrder, e.ID)
	}

	messages := []models.Message{
		{
			ID:        uuid.NewString(),
			Channel:   "ch-" + uuid.NewString()[:8],
			Content:   "Hey! I really enjoyed our conversation yesterday. Would you like to meet for coffee sometime this week?",
			Type:      models.MessageTypeText,
			Sender:    users[0].ID,
			Recipient: users[1].ID,
			Read:      false,
			Deleted:   false,
			CreatedAt: today,
			UpdatedAt: today,
		},
		{
			ID:        uuid.NewString(),
			Channel:   "ch-" + uuid.NewString()[:8],
			Content:   "Check out this photo from my weekend trip!",
			Type:      models.MessageTypeImage,
			Sender:    users[2].ID,
			Recipient: users[4].ID,
			Read:      true,
			Deleted:   false,
			CreatedAt: today,
			UpdatedAt: today,
		},
	}
	for _, m := range messages {
		db.Messages[m.ID] = m
		db.MessageOrder = append(db.MessageOrder, m.ID)
	}

	apiKeys := []models.APIKey{
		{
			Key:       "loveapp_" + rawKeySuffix(),
			Name:      "Mobile App Production",
			Email:     "dev@loveapp.com",
			Active:    true,
			CreatedAt: today,
			UpdatedAt: today,
		},
		{
			Key:       "loveapp_" + rawKeySuffix(),
			Name:      "Analytics Dashboard",
			Email:     "analytics@loveapp.com",
			Active:    true,
			CreatedAt: today,
			UpdatedAt: today,
		},
		{
			Key:       "loveapp_" + rawKeySuffix(),
			Name:      "Testing Environment",
			Email:     "test@loveapp.com",
			Active:    false,
			CreatedAt: today,
			UpdatedAt: today,
		},
	}
	for _, k := range apiKeys {
		db.APIKeys[k.Key] = k
		db.APIKeyOrder = append(db.APIKeyOrder, k.Key)
	}

	apiLogs := []models.APILog{
		{
			ID:        uuid.NewString(),
			APIKey:    apiKeys[0].Key,
			URL:       "/api/users",
			Type:      "GET",
			IP:        "192.168.1.100",
			Duration:  "143ms",
			Location:  "New York, US",
			By:        "mobile_app",
			CreatedAt: today,
			UpdatedAt: today,
		},
		{
			ID:        uuid.NewString(),
			APIKey:    apiKeys[0].Key,
			URL:       "/api/matches",
			Type:      "POST",
			IP:        "10.0.0.45",
			Duration:  "267ms",
			Location:  "London, UK",
			By:        "mobile_app",
			CreatedAt: today,
			UpdatedAt: today,
		},
		{
			ID:        uuid.NewString(),
			APIKey:    apiKeys[1].Key,
			URL:       "/api/analytics",
			Type:      "GET",
			IP:        "172.16.0.12",
			Duration:  "89ms",
			Location:  "Tokyo, JP",
			By:        "analytics_dashboard",
			CreatedAt: today,
			UpdatedAt: today,
		},
	}
	for _, l := range apiLogs {
		db.APILogs[l.ID] = l
		db.APILogOrder = append(db.APILogOrder, l.ID)
	}

	return db
}

// rawKeySuffix returns 32 hex chars without dashes, the historical key format.
func rawKeySuffix() string {
	s := uuid.NewString()
	out := make([]byte, 0, 32)
	for i := 0; i < len(s) && len(out) < 32; i++ {
		if s[i] != '-' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
