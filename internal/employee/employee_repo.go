package employee

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go-hr-admin/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByAccountID(ctx context.Context, accountID uint) (*Employee, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) error
	ClearManagerReferences(ctx context.Context, managerID string) error
	Count(ctx context.Context) (int64, error)
	// MaxIDSequence returns the largest numeric suffix among ids shaped
	// <prefix><digits>; ok is false when no id has that shape.
	MaxIDSequence(ctx context.Context, prefix string) (max int64, ok bool, err error)
	CountActiveHolders(ctx context.Context, positionName, excludeEmployeeID string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.BindTx(r.db, r.tx).WithContext(ctx)
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.conn(ctx).Omit(clause.Associations).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.conn(ctx).
		Preload("Account").
		Preload("Department").
		Preload("Workflows", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Order("id DESC")
		}).
		Order("employee_id ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.conn(ctx).
		Select("employee_id", "account_id", "status").
		Preload("Account").
		Where("status = ?", StatusActive).
		Order("employee_id ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.conn(ctx).
		Preload("Account").
		Preload("Department").
		Preload("Workflows", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Order("id DESC")
		}).
		First(&empl, "employee_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByAccountID(ctx context.Context, accountID uint) (*Employee, error) {
	var empl Employee
	err := r.conn(ctx).First(&empl, "account_id = ?", accountID).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&Employee{}).
		Where("employee_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// Update writes every mutable column, including explicit NULLs.
func (r *repository) Update(ctx context.Context, empl *Employee) error {
	empl.UpdatedAt = time.Now()
	return r.conn(ctx).
		Model(&Employee{}).
		Where("employee_id = ?", empl.EmployeeID).
		Updates(map[string]any{
			"account_id":    empl.AccountID,
			"position":      empl.Position,
			"department_id": empl.DepartmentID,
			"manager_id":    empl.ManagerID,
			"hire_date":     empl.HireDate,
			"status":        empl.Status,
			"updated":       empl.UpdatedAt,
		}).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Employee{}, "employee_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ClearManagerReferences(ctx context.Context, managerID string) error {
	return r.conn(ctx).
		Model(&Employee{}).
		Where("manager_id = ?", managerID).
		Update("manager_id", nil).Error
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.conn(ctx).Model(&Employee{}).Count(&count).Error
	return count, err
}

func (r *repository) MaxIDSequence(ctx context.Context, prefix string) (int64, bool, error) {
	var max sql.NullInt64
	err := r.conn(ctx).
		Raw(
			`SELECT MAX(CAST(SUBSTRING(employee_id FROM ?) AS BIGINT)) FROM employees WHERE employee_id ~ ?`,
			len(prefix)+1,
			fmt.Sprintf("^%s[0-9]+$", prefix),
		).
		Row().
		Scan(&max)
	if err != nil {
		return 0, false, err
	}
	return max.Int64, max.Valid, nil
}

func (r *repository) CountActiveHolders(ctx context.Context, positionName, excludeEmployeeID string) (int64, error) {
	query := r.conn(ctx).
		Model(&Employee{}).
		Where("LOWER(TRIM(position)) = ?", strings.ToLower(strings.TrimSpace(positionName))).
		Where("status = ?", StatusActive)
	if excludeEmployeeID != "" {
		query = query.Where("employee_id <> ?", excludeEmployeeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}
