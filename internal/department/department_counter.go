package department

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Counter keeps departments.employee_count equal to the number of employees
// referencing the department. It is the only writer of that column.
//
//go:generate mockgen -source=department_counter.go -destination=mock/department_counter_mock.go -package=mock
type Counter interface {
	// Recount is a no-op for a nil id and idempotent otherwise.
	Recount(ctx context.Context, departmentID *uint) error
}

type counter struct {
	repo   Repository
	logger *zap.Logger
}

func NewCounter(repo Repository, logger ...*zap.Logger) Counter {
	l := zap.L().Named("department.counter")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.counter")
	}
	return &counter{repo: repo, logger: l}
}

func (c *counter) Recount(ctx context.Context, departmentID *uint) error {
	if departmentID == nil {
		return nil
	}
	id := *departmentID

	count, err := c.repo.CountEmployees(ctx, id)
	if err != nil {
		return fmt.Errorf("count employees of department %d: %w", id, err)
	}

	if err := c.repo.UpdateEmployeeCount(ctx, id, count); err != nil {
		return fmt.Errorf("store employee count of department %d: %w", id, err)
	}

	c.logger.Debug("department employee count recomputed",
		zap.Uint("department_id", id),
		zap.Int64("employee_count", count),
	)
	return nil
}
