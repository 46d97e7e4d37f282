package services

import (
	"loveadmin_backend/internal/auth"
	"loveadmin_backend/internal/dto"
	"loveadmin_backend/internal/repositories"
	"loveadmin_backend/pkg/apperrors"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	adminRepo repositories.AdminRepository
	tokens    *auth.TokenManager
}

func NewAuthService(adminRepo repositories.AdminRepository, tokens *auth.TokenManager) AuthService {
	return &AuthServiceImpl{
		adminRepo: adminRepo,
		tokens:    tokens,
	}
}

// Login checks the admin credentials against the stored bcrypt hash and
// issues a signed session token. Unknown email, wrong password and a
// deactivated account are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !admin.Active {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, admin.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(admin.ID, admin.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Admin: dto.AdminInfo{
			ID:    admin.ID,
			Name:  admin.Name,
			Email: admin.Email,
			Role:  admin.Role,
		},
		Token: token,
	}, nil
}
