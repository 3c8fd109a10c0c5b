package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"go-hr-admin/internal/shared/response"
	workflowerrors "go-hr-admin/internal/workflow/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultPageSize = 20

// transitions lists, per target status, the only status it may come from.
var transitions = map[string]string{
	StatusApproved:  StatusPending,
	StatusRejected:  StatusPending,
	StatusCompleted: StatusApproved,
}

//go:generate mockgen -source=workflow_service.go -destination=mock/workflow_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, req ListWorkflowRequest) ([]WorkflowResponse, response.PaginationMeta, error)
	GetByID(ctx context.Context, id string) (WorkflowResponse, error)
	Approve(ctx context.Context, id string) (WorkflowResponse, error)
	Reject(ctx context.Context, id string) (WorkflowResponse, error)
	Complete(ctx context.Context, id string) (WorkflowResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("workflow.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workflow.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, req ListWorkflowRequest) ([]WorkflowResponse, response.PaginationMeta, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	workflows, total, err := s.repo.FindAll(ctx, ListFilter{
		EmployeeID: req.EmployeeID,
		Limit:      pageSize,
		Offset:     (page - 1) * pageSize,
	})
	if err != nil {
		s.logger.Error("get all workflows failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}

	return mapToListResponse(workflows), response.NewPaginationMeta(total, page, pageSize), nil
}

func (s *service) GetByID(ctx context.Context, id string) (WorkflowResponse, error) {
	wfID, err := parseID(id)
	if err != nil {
		return WorkflowResponse{}, err
	}

	wf, err := s.find(ctx, wfID)
	if err != nil {
		return WorkflowResponse{}, err
	}
	return mapToResponse(*wf), nil
}

func (s *service) Approve(ctx context.Context, id string) (WorkflowResponse, error) {
	return s.transition(ctx, id, StatusApproved)
}

func (s *service) Reject(ctx context.Context, id string) (WorkflowResponse, error) {
	return s.transition(ctx, id, StatusRejected)
}

func (s *service) Complete(ctx context.Context, id string) (WorkflowResponse, error) {
	return s.transition(ctx, id, StatusCompleted)
}

func (s *service) transition(ctx context.Context, id, to string) (WorkflowResponse, error) {
	wfID, err := parseID(id)
	if err != nil {
		return WorkflowResponse{}, err
	}

	wf, err := s.find(ctx, wfID)
	if err != nil {
		return WorkflowResponse{}, err
	}

	from := transitions[to]
	if wf.Status != from {
		s.logger.Warn("workflow transition rejected",
			zap.Uint("workflow_id", wfID),
			zap.String("status", wf.Status),
			zap.String("target_status", to),
		)
		return WorkflowResponse{}, workflowerrors.ErrInvalidStatusTransition
	}

	affected, err := s.repo.TransitionStatus(ctx, wfID, from, to)
	if err != nil {
		s.logger.Error("workflow transition failed", zap.Uint("workflow_id", wfID), zap.Error(err))
		return WorkflowResponse{}, err
	}
	if affected == 0 {
		// status moved between the read and the conditional update
		return WorkflowResponse{}, workflowerrors.ErrInvalidStatusTransition
	}

	wf.Status = to
	wf.UpdatedAt = time.Now()

	s.logger.Info("workflow status changed",
		zap.Uint("workflow_id", wfID),
		zap.String("employee_id", wf.EmployeeID),
		zap.String("from", from),
		zap.String("to", to),
	)
	return mapToResponse(*wf), nil
}

func (s *service) find(ctx context.Context, id uint) (*Workflow, error) {
	wf, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, workflowerrors.ErrWorkflowNotFound
		}
		s.logger.Error("get workflow failed", zap.Uint("workflow_id", id), zap.Error(err))
		return nil, err
	}
	return wf, nil
}

func parseID(raw string) (uint, error) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, workflowerrors.ErrInvalidWorkflowID
	}
	return uint(n), nil
}

func mapToResponse(wf Workflow) WorkflowResponse {
	resp := WorkflowResponse{
		ID:         wf.ID,
		EmployeeID: wf.EmployeeID,
		RequestID:  wf.RequestID,
		Type:       wf.Type,
		Details:    wf.Details,
		Status:     wf.Status,
		CreatedAt:  wf.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  wf.UpdatedAt.Format(time.RFC3339),
	}
	if len(wf.Changes) > 0 {
		resp.Changes = json.RawMessage(wf.Changes)
	}
	return resp
}

func mapToListResponse(workflows []Workflow) []WorkflowResponse {
	res := make([]WorkflowResponse, len(workflows))
	for i, wf := range workflows {
		res[i] = mapToResponse(wf)
	}
	return res
}
