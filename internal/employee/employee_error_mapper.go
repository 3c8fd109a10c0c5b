package employee

import (
	"errors"
	"strings"

	accounterrors "go-hr-admin/internal/account/errors"
	departmenterrors "go-hr-admin/internal/department/errors"
	employeeerrors "go-hr-admin/internal/employee/errors"
	positionerrors "go-hr-admin/internal/position/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"

	constraintPrimaryKey       = "employees_pkey"
	constraintAccountUnique    = "uq_employees_account_id"
	constraintActivePresident  = "uq_employees_active_president"
	constraintDepartmentFK     = "fk_employees_department"
	constraintManagerFK        = "fk_employees_manager"
	constraintAccountFK        = "fk_employees_account"
	duplicateKeyMessage        = "duplicate key value"
	foreignKeyViolationMessage = "violates foreign key constraint"
)

var constraintErrors = map[string]error{
	constraintPrimaryKey:      employeeerrors.ErrEmployeeIDAlreadyExists,
	constraintAccountUnique:   employeeerrors.ErrAccountAlreadyLinked,
	constraintActivePresident: positionerrors.ErrPresidentAlreadyAssigned,
	constraintDepartmentFK:    departmenterrors.ErrDepartmentNotFound,
	constraintManagerFK:       employeeerrors.ErrManagerNotFound,
	constraintAccountFK:       accounterrors.ErrAccountNotFound,
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation || pgErr.Code == pgForeignKeyViolation {
			if mapped, ok := constraintErrors[pgErr.ConstraintName]; ok {
				return mapped
			}
		}
		return err
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, duplicateKeyMessage) || strings.Contains(errMsg, foreignKeyViolationMessage) {
		for name, mapped := range constraintErrors {
			if strings.Contains(errMsg, name) {
				return mapped
			}
		}
	}

	return err
}

// isIDCollision reports a primary key clash on insert, the signal for the
// create loop to derive a fresh identifier.
func isIDCollision(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraintPrimaryKey
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, duplicateKeyMessage) && strings.Contains(errMsg, constraintPrimaryKey)
}
