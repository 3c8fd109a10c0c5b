package department

import (
	"context"
	"errors"
	"strconv"

	departmenterrors "go-hr-admin/internal/department/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
}

type service struct {
	repo    Repository
	counter Counter
	logger  *zap.Logger
}

// NewService builds the read API. Drifted counts are repaired through counter,
// which stays the only writer of employee_count.
func NewService(repo Repository, counter Counter, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, counter: counter, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	depts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all departments failed", zap.Error(err))
		return nil, err
	}

	for i := range depts {
		s.syncEmployeeCount(ctx, &depts[i])
	}
	return mapToListResponse(depts), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	deptID, err := ParseID(id)
	if err != nil {
		return DepartmentResponse{}, err
	}

	dept, err := s.repo.FindByID(ctx, deptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
		}
		s.logger.Error("get department by id failed", zap.Uint("department_id", deptID), zap.Error(err))
		return DepartmentResponse{}, err
	}

	s.syncEmployeeCount(ctx, dept)
	return mapToResponse(*dept), nil
}

// syncEmployeeCount repairs a drifted cached count on read. Failures are
// logged; the freshly counted value is still returned to the caller.
func (s *service) syncEmployeeCount(ctx context.Context, dept *Department) {
	count, err := s.repo.CountEmployees(ctx, dept.ID)
	if err != nil {
		s.logger.Warn("count department employees failed", zap.Uint("department_id", dept.ID), zap.Error(err))
		return
	}
	if count == dept.EmployeeCount {
		return
	}

	s.logger.Info("department employee count drifted",
		zap.Uint("department_id", dept.ID),
		zap.Int64("cached", dept.EmployeeCount),
		zap.Int64("actual", count),
	)
	if err := s.counter.Recount(ctx, &dept.ID); err != nil {
		s.logger.Warn("repair department employee count failed", zap.Uint("department_id", dept.ID), zap.Error(err))
	}
	dept.EmployeeCount = count
}

// ParseID validates a department id taken from a path or payload.
func ParseID(raw string) (uint, error) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, departmenterrors.ErrInvalidDepartmentID
	}
	return uint(n), nil
}

func mapToResponse(dept Department) DepartmentResponse {
	resp := DepartmentResponse{
		ID:            dept.ID,
		Name:          dept.Name,
		EmployeeCount: dept.EmployeeCount,
	}
	if dept.Description != nil {
		resp.Description = *dept.Description
	}
	return resp
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
