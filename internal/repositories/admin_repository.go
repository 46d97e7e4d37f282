package repositories

import (
	"errors"

	"github.com/google/uuid"

	"loveadmin_backend/internal/memdb"
	"loveadmin_backend/internal/models"
)

var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrAdminAlreadyExists = errors.New("admin already exists")
)

type AdminRepository interface {
	FindByID(id string) (*models.Admin, error)
	FindByEmail(email string) (*models.Admin, error)
	Create(admin *models.Admin) error
}

type AdminRepositoryImpl struct {
	db *memdb.DB
}

func NewAdminRepository(db *memdb.DB) AdminRepository {
	return &AdminRepositoryImpl{db: db}
}

func (r *AdminRepositoryImpl) FindByID(id string) (*models.Admin, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	admin, ok := r.db.Admins[id]
	if !ok {
		return nil, ErrAdminNotFound
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) FindByEmail(email string) (*models.Admin, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	for _, id := range r.db.AdminOrder {
		if admin := r.db.Admins[id]; admin.Email == email {
			return &admin, nil
		}
	}
	return nil, ErrAdminNotFound
}

func (r *AdminRepositoryImpl) Create(admin *models.Admin) error {
	r.db.Lock()
	defer r.db.Unlock()

	if admin.ID == "" {
		admin.ID = uuid.NewString()
	} else if _, exists := r.db.Admins[admin.ID]; exists {
		return ErrAdminAlreadyExists
	}

	today := dateNow()
	admin.CreatedAt = today
	admin.UpdatedAt = today

	r.db.Admins[admin.ID] = *admin
	r.db.AdminOrder = append(r.db.AdminOrder, admin.ID)
	return nil
}
