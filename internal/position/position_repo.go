package position

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

//go:generate mockgen -source=position_repo.go -destination=mock/position_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Position, error)
	FindByID(ctx context.Context, id uint) (*Position, error)
	FindByName(ctx context.Context, name string) (*Position, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Position, error) {
	var positions []Position
	err := r.db.WithContext(ctx).
		Order("position ASC").
		Find(&positions).Error
	return positions, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Position, error) {
	var pos Position
	err := r.db.WithContext(ctx).First(&pos, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pos, nil
}

func (r *repository) FindByName(ctx context.Context, name string) (*Position, error) {
	var pos Position
	err := r.db.WithContext(ctx).
		Where("LOWER(position) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&pos).Error
	if err != nil {
		return nil, err
	}
	return &pos, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&Position{}).
		Where("id = ?", id).
		Update("status", status).Error
}
