package employee_test

import (
	"context"
	"errors"
	"testing"

	"go-hr-admin/internal/employee"
	employeeMock "go-hr-admin/internal/employee/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestIDGenerator_NextEmployeeID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(repo *employeeMock.MockRepository)
		want    string
		wantErr bool
	}{
		{
			name: "highest numeric suffix plus one",
			setup: func(repo *employeeMock.MockRepository) {
				// EMP001, EMP002, EMP007
				repo.EXPECT().MaxIDSequence(gomock.Any(), "EMP").Return(int64(7), true, nil)
			},
			want: "EMP008",
		},
		{
			name: "widens past three digits",
			setup: func(repo *employeeMock.MockRepository) {
				repo.EXPECT().MaxIDSequence(gomock.Any(), "EMP").Return(int64(999), true, nil)
			},
			want: "EMP1000",
		},
		{
			name: "falls back to row count without a matching id",
			setup: func(repo *employeeMock.MockRepository) {
				repo.EXPECT().MaxIDSequence(gomock.Any(), "EMP").Return(int64(0), false, nil)
				repo.EXPECT().Count(gomock.Any()).Return(int64(4), nil)
			},
			want: "EMP005",
		},
		{
			name: "empty table",
			setup: func(repo *employeeMock.MockRepository) {
				repo.EXPECT().MaxIDSequence(gomock.Any(), "EMP").Return(int64(0), false, nil)
				repo.EXPECT().Count(gomock.Any()).Return(int64(0), nil)
			},
			want: "EMP001",
		},
		{
			name: "sequence read fails",
			setup: func(repo *employeeMock.MockRepository) {
				repo.EXPECT().MaxIDSequence(gomock.Any(), "EMP").Return(int64(0), false, errors.New("timeout"))
			},
			wantErr: true,
		},
		{
			name: "count fails",
			setup: func(repo *employeeMock.MockRepository) {
				repo.EXPECT().MaxIDSequence(gomock.Any(), "EMP").Return(int64(0), false, nil)
				repo.EXPECT().Count(gomock.Any()).Return(int64(0), errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := employeeMock.NewMockRepository(ctrl)
			tt.setup(repo)

			got, err := employee.NewIDGenerator(repo).NextEmployeeID(ctx)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
