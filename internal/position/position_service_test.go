package position_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-hr-admin/internal/position"
	positionerrors "go-hr-admin/internal/position/errors"
	positionMock "go-hr-admin/internal/position/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service position.Service
	repo    *positionMock.MockRepository
	redis   redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := positionMock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()

	return &serviceDeps{
		service: position.NewService(repo, rdb),
		repo:    repo,
		redis:   redisMock,
	}
}

func TestPositionService_GetAll(t *testing.T) {
	ctx := context.Background()
	positions := []position.Position{
		{ID: 1, Name: "President", Status: position.StatusDeactive},
		{ID: 2, Name: "Engineer", Status: position.StatusActive},
	}
	expected := []position.PositionResponse{
		{ID: 1, Name: "President", Status: position.StatusDeactive},
		{ID: 2, Name: "Engineer", Status: position.StatusActive},
	}

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		payload, err := json.Marshal(expected)
		require.NoError(t, err)

		deps.redis.ExpectGet(position.PositionAllKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return(positions, nil)
		deps.redis.ExpectSet(position.PositionAllKey, payload, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redis.ExpectationsWereMet())
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		deps := setupServiceTest(t)
		payload, err := json.Marshal(expected)
		require.NoError(t, err)

		deps.redis.ExpectGet(position.PositionAllKey).SetVal(string(payload))

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
	})

	t.Run("database error", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redis.ExpectGet(position.PositionAllKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return(nil, errors.New("db down"))

		_, err := deps.service.GetAll(ctx)

		assert.Error(t, err)
	})
}

func TestPositionService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, uint(2)).Return(&position.Position{ID: 2, Name: "Engineer", Status: position.StatusActive}, nil)

		resp, err := deps.service.GetByID(ctx, "2")

		assert.NoError(t, err)
		assert.Equal(t, "Engineer", resp.Name)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, "9")

		assert.ErrorIs(t, err, positionerrors.ErrPositionNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetByID(ctx, "x1")

		assert.ErrorIs(t, err, positionerrors.ErrInvalidPositionID)
	})
}
