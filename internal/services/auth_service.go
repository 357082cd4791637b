package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	dto "repairdesk.com/repairdesk/internal/data_models"
	apperrors "repairdesk.com/repairdesk/internal/errors"
	repository "repairdesk.com/repairdesk/internal/repositories"
	"repairdesk.com/repairdesk/internal/sessions"
)

type AuthService struct {
	users *repository.UserRepository
	store sessions.Store
}

func NewAuthService(users *repository.UserRepository, store sessions.Store) *AuthService {
	return &AuthService{users: users, store: store}
}

// Login matches the login against userName or email and the password against
// the stored bcrypt hash. A credential mismatch of either kind is reported
// identically.
func (s *AuthService) Login(ctx context.Context, login, password string) (*dto.LoginResponse, error) {
	user, roleDesc, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.store.Create(ctx, sessions.SessionUser{
		ID:              user.ID,
		UserName:        user.UserName,
		Name:            user.Name,
		Email:           user.Email,
		RoleCode:        user.RoleCode,
		RoleDescription: roleDesc,
	})
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserRow{
			ID:              user.ID,
			UserName:        user.UserName,
			Name:            user.Name,
			Email:           user.Email,
			RoleCode:        user.RoleCode,
			RoleDescription: roleDesc,
		},
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.store.Delete(ctx, token)
}

func (s *AuthService) CurrentUser(ctx context.Context, token string) (*sessions.SessionUser, error) {
	user, err := s.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, err
	}

	return user, nil
}
