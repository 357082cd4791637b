package repository

import (
	"context"

	"gorm.io/gorm"

	model "repairdesk.com/repairdesk/internal/models"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *ClientRepository) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	err := r.db.WithContext(ctx).Order("id asc").Find(&clients).Error
	return clients, err
}

// Delete removes the row if it exists. Deleting a missing id succeeds.
func (r *ClientRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Client{}, id).Error
}
