package services

import (
	"loveadmin_backend/internal/models"
	"loveadmin_backend/internal/repositories"
	"loveadmin_backend/pkg/apperrors"
)

type UserService interface {
	FindByID(id string) (*models.User, error)
	Update(id string, upd models.UserUpdate) (*models.User, error)
	List(filter repositories.UserFilter) ([]models.User, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) FindByID(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "users", "User not found")
	}
	return user, nil
}

func (s *UserServiceImpl) Update(id string, upd models.UserUpdate) (*models.User, error) {
	user, err := s.userRepo.Update(id, upd)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "users", "User not found")
	}
	return user, nil
}

func (s *UserServiceImpl) List(filter repositories.UserFilter) ([]models.User, error) {
	users, err := s.userRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}
