package services

import (
	"context"

	dto "repairdesk.com/repairdesk/internal/data_models"
	apperrors "repairdesk.com/repairdesk/internal/errors"
	model "repairdesk.com/repairdesk/internal/models"
	repository "repairdesk.com/repairdesk/internal/repositories"
)

type ClientService struct {
	repo              *repository.ClientRepository
	jobRepo           *repository.JobRepository
	restrictOnDeletes bool
}

func NewClientService(
	repo *repository.ClientRepository,
	jobRepo *repository.JobRepository,
	restrictOnDeletes bool,
) *ClientService {
	return &ClientService{
		repo:              repo,
		jobRepo:           jobRepo,
		restrictOnDeletes: restrictOnDeletes,
	}
}

func (s *ClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*model.Client, error) {
	client := &model.Client{
		Name:     req.Name,
		Address:  req.Address,
		PostCode: req.PostCode,
		Email:    req.Email,
		TaxID:    req.TaxID,
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

func (s *ClientService) ListClients(ctx context.Context) ([]model.Client, error) {
	return s.repo.List(ctx)
}

// DeleteClient removes the client. With restricted deletes enabled, a client
// still referenced by jobs is refused; otherwise the delete is unconditional
// and idempotent.
func (s *ClientService) DeleteClient(ctx context.Context, id uint) error {
	if s.restrictOnDeletes {
		count, err := s.jobRepo.CountByClient(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrClientReferenced
		}
	}

	return s.repo.Delete(ctx, id)
}
