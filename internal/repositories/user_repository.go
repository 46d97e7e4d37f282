package repositories

import (
	"errors"

	"github.com/google/uuid"

	"loveadmin_backend/internal/memdb"
	"loveadmin_backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserFilter carries the dashboard's listing filters. Empty values and the
// sentinels "All Users"/"All" are no-ops; supplied filters combine with AND.
// Subscription is accepted by the admin client contract but has never been
// applied; it is kept here as-is rather than guessed into a feature.
type UserFilter struct {
	Status       string
	Verification string
	Subscription string
}

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	Create(user *models.User) error
	Update(id string, upd models.UserUpdate) (*models.User, error)
	FindAll() ([]models.User, error)
	FindWithFilter(filter UserFilter) ([]models.User, error)
}

type UserRepositoryImpl struct {
	db *memdb.DB
}

func NewUserRepository(db *memdb.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	user, ok := r.db.Users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	for _, id := range r.db.UserOrder {
		if user := r.db.Users[id]; user.Email == email {
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *UserRepositoryImpl) FindByUsername(username string) (*models.User, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	for _, id := range r.db.UserOrder {
		if user := r.db.Users[id]; user.Username == username {
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// Create stores a new user. The id is always generated here; a caller-supplied
// id that collides with an existing record is rejected.
func (r *UserRepositoryImpl) Create(user *models.User) error {
	r.db.Lock()
	defer r.db.Unlock()

	if user.ID == "" {
		user.ID = uuid.NewString()
	} else if _, exists := r.db.Users[user.ID]; exists {
		return ErrUserAlreadyExists
	}

	today := dateNow()
	user.CreatedAt = today
	user.UpdatedAt = today

	r.db.Users[user.ID] = *user
	r.db.UserOrder = append(r.db.UserOrder, user.ID)
	return nil
}

// Update overlays the supplied fields onto the stored record. The merge is
// shallow: Location is replaced wholesale when present.
func (r *UserRepositoryImpl) Update(id string, upd models.UserUpdate) (*models.User, error) {
	r.db.Lock()
	defer r.db.Unlock()

	user, ok := r.db.Users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Username != nil {
		user.Username = *upd.Username
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Phone != nil {
		user.Phone = *upd.Phone
	}
	if upd.DOB != nil {
		user.DOB = *upd.DOB
	}
	if upd.Location != nil {
		user.Location = *upd.Location
	}
	if upd.IsActive != nil {
		user.IsActive = *upd.IsActive
	}
	if upd.IsVerified != nil {
		user.IsVerified = *upd.IsVerified
	}
	if upd.Bio != nil {
		user.Bio = *upd.Bio
	}
	if upd.Images != nil {
		user.Images = *upd.Images
	}
	if upd.Interests != nil {
		user.Interests = *upd.Interests
	}
	if upd.Occupation != nil {
		user.Occupation = *upd.Occupation
	}
	if upd.Education != nil {
		user.Education = *upd.Education
	}
	if upd.Height != nil {
		user.Height = *upd.Height
	}
	if upd.HereFor != nil {
		user.HereFor = *upd.HereFor
	}
	if upd.Relationship != nil {
		user.Relationship = *upd.Relationship
	}
	if upd.Children != nil {
		user.Children = *upd.Children
	}
	if upd.Drinking != nil {
		user.Drinking = *upd.Drinking
	}
	if upd.Smoking != nil {
		user.Smoking = *upd.Smoking
	}
	if upd.Language != nil {
		user.Language = *upd.Language
	}
	if upd.Religion != nil {
		user.Religion = *upd.Religion
	}
	user.UpdatedAt = dateNow()

	r.db.Users[id] = user
	return &user, nil
}

func (r *UserRepositoryImpl) FindAll() ([]models.User, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	return r.allUsersLocked(), nil
}

func (r *UserRepositoryImpl) FindWithFilter(filter UserFilter) ([]models.User, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	users := r.allUsersLocked()

	if filter.Status != "" && filter.Status != "All Users" {
		filtered := users[:0:0]
		for _, u := range users {
			switch filter.Status {
			case "Active":
				if u.IsActive {
					filtered = append(filtered, u)
				}
			case "Inactive":
				if !u.IsActive {
					filtered = append(filtered, u)
				}
			default:
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}

	if filter.Verification != "" && filter.Verification != "All" {
		filtered := users[:0:0]
		for _, u := range users {
			switch filter.Verification {
			case "Verified":
				if u.IsVerified {
					filtered = append(filtered, u)
				}
			case "Unverified":
				if !u.IsVerified {
					filtered = append(filtered, u)
				}
			default:
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}

	return users, nil
}

// allUsersLocked copies the collection in insertion order. Caller holds the lock.
func (r *UserRepositoryImpl) allUsersLocked() []models.User {
	users := make([]models.User, 0, len(r.db.UserOrder))
	for _, id := range r.db.UserOrder {
		users = append(users, r.db.Users[id])
	}
	return users
}
