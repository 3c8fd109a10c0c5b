package workflow_test

import (
	"context"
	"errors"
	"testing"

	"go-hr-admin/internal/workflow"
	workflowerrors "go-hr-admin/internal/workflow/errors"
	workflowMock "go-hr-admin/internal/workflow/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupServiceTest(t *testing.T) (workflow.Service, *workflowMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := workflowMock.NewMockRepository(ctrl)
	return workflow.NewService(repo), repo
}

func TestWorkflowService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by employee and paginates", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			FindAll(ctx, workflow.ListFilter{EmployeeID: "EMP001", Limit: 5, Offset: 5}).
			Return([]workflow.Workflow{{ID: 9, EmployeeID: "EMP001", Type: workflow.TypeTransfer, Status: workflow.StatusPending}}, int64(6), nil)

		resp, meta, err := svc.GetAll(ctx, workflow.ListWorkflowRequest{EmployeeID: "EMP001", Page: 2, PageSize: 5})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, int64(6), meta.Total)
		assert.Equal(t, 2, meta.TotalPages)
	})

	t.Run("defaults page size", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			FindAll(ctx, workflow.ListFilter{Limit: 20, Offset: 0}).
			Return(nil, int64(0), nil)

		resp, _, err := svc.GetAll(ctx, workflow.ListWorkflowRequest{})

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})

	t.Run("database error", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().FindAll(ctx, gomock.Any()).Return(nil, int64(0), errors.New("db down"))

		_, _, err := svc.GetAll(ctx, workflow.ListWorkflowRequest{})

		assert.Error(t, err)
	})
}

func TestWorkflowService_Transitions(t *testing.T) {
	ctx := context.Background()

	type action func(workflow.Service, context.Context, string) (workflow.WorkflowResponse, error)
	approve := func(s workflow.Service, ctx context.Context, id string) (workflow.WorkflowResponse, error) {
		return s.Approve(ctx, id)
	}
	reject := func(s workflow.Service, ctx context.Context, id string) (workflow.WorkflowResponse, error) {
		return s.Reject(ctx, id)
	}
	complete := func(s workflow.Service, ctx context.Context, id string) (workflow.WorkflowResponse, error) {
		return s.Complete(ctx, id)
	}

	allowed := []struct {
		name string
		do   action
		from string
		to   string
	}{
		{"approve pending", approve, workflow.StatusPending, workflow.StatusApproved},
		{"reject pending", reject, workflow.StatusPending, workflow.StatusRejected},
		{"complete approved", complete, workflow.StatusApproved, workflow.StatusCompleted},
	}

	for _, tt := range allowed {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := setupServiceTest(t)

			repo.EXPECT().FindByID(ctx, uint(3)).Return(&workflow.Workflow{ID: 3, EmployeeID: "EMP001", Status: tt.from}, nil)
			repo.EXPECT().TransitionStatus(ctx, uint(3), tt.from, tt.to).Return(int64(1), nil)

			resp, err := tt.do(svc, ctx, "3")

			assert.NoError(t, err)
			assert.Equal(t, tt.to, resp.Status)
		})
	}

	rejected := []struct {
		name string
		do   action
		from string
	}{
		{"approve rejected", approve, workflow.StatusRejected},
		{"approve completed", approve, workflow.StatusCompleted},
		{"reject approved", reject, workflow.StatusApproved},
		{"complete pending", complete, workflow.StatusPending},
		{"complete rejected", complete, workflow.StatusRejected},
	}

	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := setupServiceTest(t)

			repo.EXPECT().FindByID(ctx, uint(3)).Return(&workflow.Workflow{ID: 3, Status: tt.from}, nil)

			_, err := tt.do(svc, ctx, "3")

			assert.ErrorIs(t, err, workflowerrors.ErrInvalidStatusTransition)
		})
	}

	t.Run("concurrent change loses the race", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().FindByID(ctx, uint(4)).Return(&workflow.Workflow{ID: 4, Status: workflow.StatusPending}, nil)
		repo.EXPECT().TransitionStatus(ctx, uint(4), workflow.StatusPending, workflow.StatusApproved).Return(int64(0), nil)

		_, err := svc.Approve(ctx, "4")

		assert.ErrorIs(t, err, workflowerrors.ErrInvalidStatusTransition)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().FindByID(ctx, uint(5)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Approve(ctx, "5")

		assert.ErrorIs(t, err, workflowerrors.ErrWorkflowNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc, _ := setupServiceTest(t)

		_, err := svc.Reject(ctx, "abc")

		assert.ErrorIs(t, err, workflowerrors.ErrInvalidWorkflowID)
	})
}
