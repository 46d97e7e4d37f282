package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loveadmin_backend/internal/memdb"
	"loveadmin_backend/internal/models"
)

func newTestUser(name, username, email string, active, verified bool) *models.User {
	return &models.User{
		Name:       name,
		Username:   username,
		Email:      email,
		IsActive:   active,
		IsVerified: verified,
		Location: models.UserLocation{
			City:    "Austin",
			Country: "US",
		},
	}
}

func TestUserRepository_CreateAssignsIDAndTimestamps(t *testing.T) {
	repo := NewUserRepository(memdb.New())

	user := newTestUser("Alice Green", "alice_g", "alice@example.com", true, false)
	require.NoError(t, repo.Create(user))

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, dateNow(), user.CreatedAt)
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)

	other := newTestUser("Bob Stone", "bob_s", "bob@example.com", true, false)
	require.NoError(t, repo.Create(other))
	assert.NotEqual(t, user.ID, other.ID)
}

func TestUserRepository_CreateRejectsDuplicateID(t *testing.T) {
	repo := NewUserRepository(memdb.New())

	user := newTestUser("Alice Green", "alice_g", "alice@example.com", true, false)
	require.NoError(t, repo.Create(user))

	dup := newTestUser("Imposter", "imposter", "imposter@example.com", true, false)
	dup.ID = user.ID
	assert.ErrorIs(t, repo.Create(dup), ErrUserAlreadyExists)
}

func TestUserRepository_FindMissing(t *testing.T) {
	repo := NewUserRepository(memdb.New())

	_, err := repo.FindByID("no-such-id")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.FindByEmail("ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.FindByUsername("ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_FindByEmailAndUsername(t *testing.T) {
	repo := NewUserRepository(memdb.New())

	user := newTestUser("Alice Green", "alice_g", "alice@example.com", true, false)
	require.NoError(t, repo.Create(user))

	byEmail, err := repo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byUsername, err := repo.FindByUsername("alice_g")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)
}

func TestUserRepository_UpdateMergesOnlySuppliedFields(t *testing.T) {
	repo := NewUserRepository(memdb.New())

	user := newTestUser("Alice Green", "alice_g", "alice@example.com", true, false)
	user.Bio = "original bio"
	user.Interests = []string{"Hiking"}
	require.NoError(t, repo.Create(user))

	newBio := "updated bio"
	inactive := false
	updated, err := repo.Update(user.ID, models.UserUpdate{
		Bio:      &newBio,
		IsActive: &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, "updated bio", updated.Bio)
	assert.False(t, updated.IsActive)
	// Untouched fields survive the merge.
	assert.Equal(t, "Alice Green", updated.Name)
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, []string{"Hiking"}, updated.Interests)
	assert.Equal(t, "Austin", updated.Location.City)
}

func TestUserRepository_UpdateIsIdempotent(t *testing.T) {
	repo := NewUserRepository(memdb.New())

	user := newTestUser("Alice Green", "alice_g", "alice@example.com", true, false)
	require.NoError(t, repo.Create(user))

	newName := "Alice G."
	first, err := repo.Update(user.ID, models.UserUpdate{Name: &newName})
	require.NoError(t, err)

	second, err := repo.Update(user.ID, models.UserUpdate{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, first.ID, second.ID)
}

func TestUserRepository_UpdateMissing(t *testing.T) {
	repo := NewUserRepository(memdb.New())

	newName := "Nobody"
	_, err := repo.Update("no-such-id", models.UserUpdate{Name: &newName})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_UpdateReplacesLocationWholesale(t *testing.T) {
	repo := NewUserRepository(memdb.New())

	user := newTestUser("Alice Green", "alice_g", "alice@example.com", true, false)
	user.Location.Coordinates = models.Coordinates{Latitude: 30.2672, Longitude: -97.7431}
	require.NoError(t, repo.Create(user))

	updated, err := repo.Update(user.ID, models.UserUpdate{
		Location: &models.UserLocation{City: "Denver", Country: "US"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Denver", updated.Location.City)
	// The whole struct is replaced, coordinates included.
	assert.Zero(t, updated.Location.Coordinates.Latitude)
	assert.Zero(t, updated.Location.Coordinates.Longitude)
}

func TestUserRepository_FindAllPreservesInsertionOrder(t *testing.T) {
	repo := NewUserRepository(memdb.New())

	names := []string{"First User", "Second User", "Third User"}
	for _, name := range names {
		u := newTestUser(name, name, name+"@example.com", true, false)
		require.NoError(t, repo.Create(u))
	}

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, name := range names {
		assert.Equal(t, name, all[i].Name)
	}
}

func TestUserRepository_FindWithFilter(t *testing.T) {
	repo := NewUserRepository(memdb.New())

	seed := []*models.User{
		newTestUser("Active Verified", "av", "av@example.com", true, true),
		newTestUser("Active Unverified", "au", "au@example.com", true, false),
		newTestUser("Inactive Verified", "iv", "iv@example.com", false, true),
		newTestUser("Inactive Unverified", "iu", "iu@example.com", false, false),
	}
	for _, u := range seed {
		require.NoError(t, repo.Create(u))
	}

	tests := []struct {
		name   string
		filter UserFilter
		want   []string
	}{
		{
			name:   "no filter returns everyone",
			filter: UserFilter{},
			want:   []string{"Active Verified", "Active Unverified", "Inactive Verified", "Inactive Unverified"},
		},
		{
			name:   "sentinels are no-ops",
			filter: UserFilter{Status: "All Users", Verification: "All"},
			want:   []string{"Active Verified", "Active Unverified", "Inactive Verified", "Inactive Unverified"},
		},
		{
			name:   "active only",
			filter: UserFilter{Status: "Active"},
			want:   []string{"Active Verified", "Active Unverified"},
		},
		{
			name:   "inactive only",
			filter: UserFilter{Status: "Inactive"},
			want:   []string{"Inactive Verified", "Inactive Unverified"},
		},
		{
			name:   "verified only",
			filter: UserFilter{Verification: "Verified"},
			want:   []string{"Active Verified", "Inactive Verified"},
		},
		{
			name:   "unverified only",
			filter: UserFilter{Verification: "Unverified"},
			want:   []string{"Active Unverified", "Inactive Unverified"},
		},
		{
			name:   "filters combine with AND",
			filter: UserFilter{Status: "Active", Verification: "Verified"},
			want:   []string{"Active Verified"},
		},
		{
			name:   "unknown filter value passes everyone through",
			filter: UserFilter{Status: "Banned"},
			want:   []string{"Active Verified", "Active Unverified", "Inactive Verified", "Inactive Unverified"},
		},
		{
			name:   "subscription filter is accepted but never applied",
			filter: UserFilter{Subscription: "Premium"},
			want:   []string{"Active Verified", "Active Unverified", "Inactive Verified", "Inactive Unverified"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindWithFilter(tt.filter)
			require.NoError(t, err)
			names := make([]string, 0, len(got))
			for _, u := range got {
				names = append(names, u.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
