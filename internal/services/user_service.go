package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	dto "repairdesk.com/repairdesk/internal/data_models"
	apperrors "repairdesk.com/repairdesk/internal/errors"
	model "repairdesk.com/repairdesk/internal/models"
	repository "repairdesk.com/repairdesk/internal/repositories"
)

type UserService struct {
	repo              *repository.UserRepository
	jobRepo           *repository.JobRepository
	restrictOnDeletes bool
}

func NewUserService(
	repo *repository.UserRepository,
	jobRepo *repository.JobRepository,
	restrictOnDeletes bool,
) *UserService {
	return &UserService{
		repo:              repo,
		jobRepo:           jobRepo,
		restrictOnDeletes: restrictOnDeletes,
	}
}

func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*model.User, error) {
	exists, err := s.repo.ExistsByUserNameOrEmail(ctx, req.UserName, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserName:     req.UserName,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		RoleCode:     req.Role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]dto.UserRow, error) {
	listings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.UserRow, 0, len(listings))
	for _, l := range listings {
		rows = append(rows, dto.UserRow{
			ID:              l.ID,
			UserName:        l.UserName,
			Name:            l.Name,
			Email:           l.Email,
			RoleCode:        l.RoleCode,
			RoleDescription: l.RoleDesc,
		})
	}

	return rows, nil
}

// EditUser applies exactly the non-nil fields of the request and leaves the
// rest untouched.
func (s *UserService) EditUser(ctx context.Context, req dto.EditUserRequest) error {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Role != nil {
		fields["role_code"] = *req.Role
	}

	return s.repo.Update(ctx, req.ID, fields)
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if s.restrictOnDeletes {
		count, err := s.jobRepo.CountByUser(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrUserReferenced
		}
	}

	return s.repo.Delete(ctx, id)
}
