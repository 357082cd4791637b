package repository

import (
	"context"

	"gorm.io/gorm"

	"repairdesk.com/repairdesk/internal/constants"
	model "repairdesk.com/repairdesk/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// UserListing is a user row joined with the role description.
type UserListing struct {
	ID       uint
	UserName string
	Name     string
	Email    string
	RoleCode int
	RoleDesc string
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) List(ctx context.Context) ([]UserListing, error) {
	var rows []UserListing
	err := r.db.WithContext(ctx).Table("users").
		Select(`users.id AS id,
			users.user_name AS user_name,
			users.name AS name,
			users.email AS email,
			users.role_code AS role_code,
			rc.description AS role_desc`).
		Joins("LEFT JOIN codes rc ON rc.kind = ? AND rc.code = users.role_code", constants.KindRole).
		Order("users.id asc").
		Scan(&rows).Error
	return rows, err
}

// FindByLogin matches the login against userName or email, role description
// joined in.
func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*model.User, string, error) {
	var row struct {
		ID           uint
		UserName     string
		Name         string
		Email        string
		PasswordHash string
		RoleCode     int
		RoleDesc     string
	}

	res := r.db.WithContext(ctx).Table("users").
		Select("users.*, rc.description AS role_desc").
		Joins("LEFT JOIN codes rc ON rc.kind = ? AND rc.code = users.role_code", constants.KindRole).
		Where("users.user_name = ? OR users.email = ?", login, login).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, "", res.Error
	}
	if res.RowsAffected == 0 {
		return nil, "", gorm.ErrRecordNotFound
	}

	user := &model.User{
		ID:           row.ID,
		UserName:     row.UserName,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		RoleCode:     row.RoleCode,
	}

	return user, row.RoleDesc, nil
}

func (r *UserRepository) ExistsByUserNameOrEmail(ctx context.Context, userName, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_name = ? OR email = ?", userName, email).
		Count(&count).Error
	return count > 0, err
}

// Update applies a partial field replacement; untouched columns keep their
// values. A missing id is not an error.
func (r *UserRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}
