package position_test

import (
	"context"
	"errors"
	"testing"

	"go-hr-admin/internal/position"
	positionerrors "go-hr-admin/internal/position/errors"
	positionMock "go-hr-admin/internal/position/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type guardDeps struct {
	guard   position.Guard
	repo    *positionMock.MockRepository
	holders *positionMock.MockHolderFinder
	redis   redismock.ClientMock
}

func setupGuardTest(t *testing.T) *guardDeps {
	ctrl := gomock.NewController(t)
	repo := positionMock.NewMockRepository(ctrl)
	holders := positionMock.NewMockHolderFinder(ctrl)
	rdb, redisMock := redismock.NewClientMock()

	return &guardDeps{
		guard:   position.NewGuard(repo, holders, rdb),
		repo:    repo,
		holders: holders,
		redis:   redisMock,
	}
}

func TestIsPrivileged(t *testing.T) {
	assert.True(t, position.IsPrivileged("President"))
	assert.True(t, position.IsPrivileged("  PRESIDENT "))
	assert.False(t, position.IsPrivileged("Vice President"))
	assert.False(t, position.IsPrivileged(""))
}

func TestGuard_CheckAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("active position", func(t *testing.T) {
		deps := setupGuardTest(t)
		deps.repo.EXPECT().FindByName(ctx, "Engineer").Return(&position.Position{ID: 2, Name: "Engineer", Status: position.StatusActive}, nil)

		assert.NoError(t, deps.guard.CheckAvailable(ctx, "Engineer"))
	})

	t.Run("deactive ordinary position", func(t *testing.T) {
		deps := setupGuardTest(t)
		deps.repo.EXPECT().FindByName(ctx, "Intern").Return(&position.Position{ID: 3, Name: "Intern", Status: position.StatusDeactive}, nil)

		assert.ErrorIs(t, deps.guard.CheckAvailable(ctx, "Intern"), positionerrors.ErrPositionNotAvailable)
	})

	t.Run("deactive president is left to the assign gate", func(t *testing.T) {
		deps := setupGuardTest(t)
		deps.repo.EXPECT().FindByName(ctx, "President").Return(&position.Position{ID: 1, Name: "President", Status: position.StatusDeactive}, nil)

		assert.NoError(t, deps.guard.CheckAvailable(ctx, "President"))
	})

	t.Run("unknown position", func(t *testing.T) {
		deps := setupGuardTest(t)
		deps.repo.EXPECT().FindByName(ctx, "Wizard").Return(nil, gorm.ErrRecordNotFound)

		assert.ErrorIs(t, deps.guard.CheckAvailable(ctx, "Wizard"), positionerrors.ErrPositionNotFound)
	})
}

func TestGuard_CheckAssign(t *testing.T) {
	ctx := context.Background()

	t.Run("another active president blocks", func(t *testing.T) {
		deps := setupGuardTest(t)
		deps.holders.EXPECT().CountActiveHolders(ctx, position.PrivilegedName, "EMP002").Return(int64(1), nil)

		err := deps.guard.CheckAssign(ctx, "President", "active", "EMP002")

		assert.ErrorIs(t, err, positionerrors.ErrPresidentAlreadyAssigned)
	})

	t.Run("no other holder", func(t *testing.T) {
		deps := setupGuardTest(t)
		deps.holders.EXPECT().CountActiveHolders(ctx, position.PrivilegedName, "EMP001").Return(int64(0), nil)

		assert.NoError(t, deps.guard.CheckAssign(ctx, "president", "active", "EMP001"))
	})

	t.Run("inactive candidate skips the check", func(t *testing.T) {
		deps := setupGuardTest(t)

		assert.NoError(t, deps.guard.CheckAssign(ctx, "President", "inactive", "EMP003"))
	})

	t.Run("ordinary position skips the check", func(t *testing.T) {
		deps := setupGuardTest(t)

		assert.NoError(t, deps.guard.CheckAssign(ctx, "Engineer", "active", "EMP003"))
	})

	t.Run("count failure", func(t *testing.T) {
		deps := setupGuardTest(t)
		deps.holders.EXPECT().CountActiveHolders(ctx, position.PrivilegedName, "EMP004").Return(int64(0), errors.New("db down"))

		err := deps.guard.CheckAssign(ctx, "President", "active", "EMP004")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, positionerrors.ErrPresidentAlreadyAssigned)
	})
}

func TestGuard_OnAssign(t *testing.T) {
	ctx := context.Background()

	t.Run("flips president to deactive and drops the cache", func(t *testing.T) {
		deps := setupGuardTest(t)
		deps.repo.EXPECT().FindByName(ctx, "President").Return(&position.Position{ID: 1, Name: "President", Status: position.StatusActive}, nil)
		deps.repo.EXPECT().UpdateStatus(ctx, uint(1), position.StatusDeactive).Return(nil)
		deps.redis.ExpectDel(position.PositionAllKey).SetVal(1)

		assert.NoError(t, deps.guard.OnAssign(ctx, "President", "active"))
		assert.NoError(t, deps.redis.ExpectationsWereMet())
	})

	t.Run("already deactive", func(t *testing.T) {
		deps := setupGuardTest(t)
		deps.repo.EXPECT().FindByName(ctx, "President").Return(&position.Position{ID: 1, Name: "President", Status: position.StatusDeactive}, nil)

		assert.NoError(t, deps.guard.OnAssign(ctx, "President", "active"))
	})

	t.Run("inactive holder leaves the position open", func(t *testing.T) {
		deps := setupGuardTest(t)

		assert.NoError(t, deps.guard.OnAssign(ctx, "President", "inactive"))
	})

	t.Run("missing position record", func(t *testing.T) {
		deps := setupGuardTest(t)
		deps.repo.EXPECT().FindByName(ctx, "President").Return(nil, gorm.ErrRecordNotFound)

		assert.NoError(t, deps.guard.OnAssign(ctx, "President", "active"))
	})

	t.Run("update failure is returned", func(t *testing.T) {
		deps := setupGuardTest(t)
		deps.repo.EXPECT().FindByName(ctx, "President").Return(&position.Position{ID: 1, Name: "President", Status: position.StatusActive}, nil)
		deps.repo.EXPECT().UpdateStatus(ctx, uint(1), position.StatusDeactive).Return(errors.New("deadlock"))

		assert.Error(t, deps.guard.OnAssign(ctx, "President", "active"))
	})
}

func TestGuard_OnVacate(t *testing.T) {
	ctx := context.Background()

	t.Run("reactivates when nobody holds it", func(t *testing.T) {
		deps := setupGuardTest(t)
		deps.holders.EXPECT().CountActiveHolders(ctx, position.PrivilegedName, "").Return(int64(0), nil)
		deps.repo.EXPECT().FindByName(ctx, "President").Return(&position.Position{ID: 1, Name: "President", Status: position.StatusDeactive}, nil)
		deps.repo.EXPECT().UpdateStatus(ctx, uint(1), position.StatusActive).Return(nil)
		deps.redis.ExpectDel(position.PositionAllKey).SetVal(1)

		assert.NoError(t, deps.guard.OnVacate(ctx, "President"))
		assert.NoError(t, deps.redis.ExpectationsWereMet())
	})

	t.Run("still held", func(t *testing.T) {
		deps := setupGuardTest(t)
		deps.holders.EXPECT().CountActiveHolders(ctx, position.PrivilegedName, "").Return(int64(1), nil)

		assert.NoError(t, deps.guard.OnVacate(ctx, "President"))
	})

	t.Run("ordinary position", func(t *testing.T) {
		deps := setupGuardTest(t)

		assert.NoError(t, deps.guard.OnVacate(ctx, "Engineer"))
	})
}
