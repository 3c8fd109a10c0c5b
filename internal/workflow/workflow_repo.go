package workflow

import (
	"context"

	"gorm.io/gorm"
)

type ListFilter struct {
	EmployeeID string
	Limit      int
	Offset     int
}

//go:generate mockgen -source=workflow_repo.go -destination=mock/workflow_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, wf *Workflow) error
	FindAll(ctx context.Context, filter ListFilter) ([]Workflow, int64, error)
	FindByID(ctx context.Context, id uint) (*Workflow, error)
	// TransitionStatus moves a workflow from one status to another and
	// reports how many rows matched both id and the expected status.
	TransitionStatus(ctx context.Context, id uint, from, to string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, wf *Workflow) error {
	return r.db.WithContext(ctx).Create(wf).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Workflow, int64, error) {
	var (
		workflows []Workflow
		total     int64
	)

	query := r.db.WithContext(ctx).Model(&Workflow{})
	if filter.EmployeeID != "" {
		query = query.Where("employee_id = ?", filter.EmployeeID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Find(&workflows).Error
	return workflows, total, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Workflow, error) {
	var wf Workflow
	err := r.db.WithContext(ctx).First(&wf, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &wf, nil
}

func (r *repository) TransitionStatus(ctx context.Context, id uint, from, to string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Workflow{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
