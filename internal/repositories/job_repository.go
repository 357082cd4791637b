package repository

import (
	"context"

	"gorm.io/gorm"

	"repairdesk.com/repairdesk/internal/constants"
	model "repairdesk.com/repairdesk/internal/models"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// JobListing is a job row joined with the client, the assigned user and the
// lookup-table descriptions. Readers get descriptions next to codes, never
// codes alone.
type JobListing struct {
	JobID                   uint
	ClientName              string
	UserName                string
	EquipmentTypeDesc       string
	EquipmentBrandDesc      string
	EquipmentProcedureDesc  string
	Notes                   string
	StatusCode              int
	StatusProgressDesc      string
	PriorityDesc            string
}

func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// List returns joined job rows, either every active job (all=true) or every
// job with exactly statusCode. Active membership and the terminal status
// share one definition in the constants package.
func (r *JobRepository) List(ctx context.Context, all bool, statusCode int) ([]JobListing, error) {
	query := r.db.WithContext(ctx).Table("jobs").
		Select(`jobs.id AS job_id,
			clients.name AS client_name,
			users.name AS user_name,
			et.description AS equipment_type_desc,
			eb.description AS equipment_brand_desc,
			ep.description AS equipment_procedure_desc,
			jobs.notes AS notes,
			jobs.status_code AS status_code,
			st.description AS status_progress_desc,
			pr.description AS priority_desc`).
		Joins("LEFT JOIN clients ON clients.id = jobs.client_id").
		Joins("LEFT JOIN users ON users.id = jobs.user_id").
		Joins("LEFT JOIN codes st ON st.kind = ? AND st.code = jobs.status_code", constants.KindStatus).
		Joins("LEFT JOIN codes pr ON pr.kind = ? AND pr.code = jobs.priority_code", constants.KindPriority).
		Joins("LEFT JOIN codes et ON et.kind = ? AND et.code = jobs.equipment_type", constants.KindEquipmentType).
		Joins("LEFT JOIN codes eb ON eb.kind = ? AND eb.code = jobs.equipment_brand", constants.KindEquipmentBrand).
		Joins("LEFT JOIN codes ep ON ep.kind = ? AND ep.code = jobs.equipment_procedure", constants.KindEquipmentProcedure).
		Order("jobs.id asc")

	if all {
		query = query.Where("jobs.status_code <> ?", constants.StatusCompleted)
	} else {
		query = query.Where("jobs.status_code = ?", statusCode)
	}

	var rows []JobListing
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// Update applies a partial field replacement. An id that matches no row is
// not an error; callers observe the effect by re-listing.
func (r *JobRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Model(&model.Job{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *JobRepository) CountByClient(ctx context.Context, clientID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Job{}).
		Where("client_id = ?", clientID).
		Count(&count).Error
	return count, err
}

func (r *JobRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Job{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
