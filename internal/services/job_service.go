package services

import (
	"context"
	"strconv"

	dto "repairdesk.com/repairdesk/internal/data_models"
	apperrors "repairdesk.com/repairdesk/internal/errors"
	model "repairdesk.com/repairdesk/internal/models"
	repository "repairdesk.com/repairdesk/internal/repositories"
)

type JobService struct {
	repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{repo: repo}
}

func (s *JobService) CreateJob(ctx context.Context, req dto.CreateJobRequest) (*model.Job, error) {
	job := &model.Job{
		UserID:             req.UserID,
		ClientID:           req.ClientID,
		EquipmentType:      req.EquipmentType,
		EquipmentBrand:     req.EquipmentBrand,
		EquipmentProcedure: req.EquipmentProcedure,
		Notes:              req.Notes,
		StatusCode:         req.Status,
		PriorityCode:       req.Priority,
	}

	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// ListJobs resolves the filter into joined rows. Status codes cross the
// boundary as strings; they live as integers everywhere below it.
func (s *JobService) ListJobs(ctx context.Context, filter dto.StatusFilter) ([]dto.JobRow, error) {
	listings, err := s.repo.List(ctx, filter.All, filter.Code)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.JobRow, 0, len(listings))
	for _, l := range listings {
		rows = append(rows, dto.JobRow{
			JobID:                         l.JobID,
			ClientName:                    l.ClientName,
			UserName:                      l.UserName,
			EquipmentTypeDescription:      l.EquipmentTypeDesc,
			EquipmentBrandDescription:     l.EquipmentBrandDesc,
			EquipmentProcedureDescription: l.EquipmentProcedureDesc,
			Notes:                         l.Notes,
			StatusProgressCode:            strconv.Itoa(l.StatusCode),
			StatusProgressDescription:     l.StatusProgressDesc,
			PriorityDescription:           l.PriorityDesc,
		})
	}

	return rows, nil
}

// EditJob applies the non-nil fields of the request. Status transitions are
// unconstrained: any code is accepted, including moving out of the terminal
// status.
func (s *JobService) EditJob(ctx context.Context, req dto.EditJobRequest) error {
	if req.ID == 0 {
		return apperrors.ErrJobIDRequired
	}

	fields := map[string]interface{}{}
	if req.UserID != nil {
		fields["user_id"] = *req.UserID
	}
	if req.ClientID != nil {
		fields["client_id"] = *req.ClientID
	}
	if req.EquipmentType != nil {
		fields["equipment_type"] = *req.EquipmentType
	}
	if req.EquipmentBrand != nil {
		fields["equipment_brand"] = *req.EquipmentBrand
	}
	if req.EquipmentProcedure != nil {
		fields["equipment_procedure"] = *req.EquipmentProcedure
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.Status != nil {
		fields["status_code"] = *req.Status
	}
	if req.Priority != nil {
		fields["priority_code"] = *req.Priority
	}

	return s.repo.Update(ctx, req.ID, fields)
}
