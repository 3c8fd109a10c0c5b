package position

import (
	"context"
	"errors"
	"fmt"

	positionerrors "go-hr-admin/internal/position/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// activeHolderStatus is the employee status that counts as holding a
// position.
const activeHolderStatus = "active"

// HolderFinder counts employees actively holding a position. The employee
// repository implements it.
//
//go:generate mockgen -source=position_guard.go -destination=mock/position_guard_mock.go -package=mock
type HolderFinder interface {
	CountActiveHolders(ctx context.Context, positionName, excludeEmployeeID string) (int64, error)
}

// Guard enforces the single active President rule and is the only writer of
// positions.status.
type Guard interface {
	// CheckAvailable fails when the named position does not exist, or is a
	// non-privileged position marked deactive.
	CheckAvailable(ctx context.Context, positionName string) error
	// CheckAssign is the hard gate run before persisting an assignment.
	CheckAssign(ctx context.Context, positionName, employeeStatus, employeeID string) error
	// OnAssign marks the privileged position deactive once it is held.
	OnAssign(ctx context.Context, positionName, employeeStatus string) error
	// OnVacate reactivates the privileged position when nobody holds it.
	OnVacate(ctx context.Context, positionName string) error
}

type guard struct {
	repo    Repository
	holders HolderFinder
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewGuard(repo Repository, holders HolderFinder, rdb *redis.Client, logger ...*zap.Logger) Guard {
	l := zap.L().Named("position.guard")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("position.guard")
	}
	return &guard{repo: repo, holders: holders, rdb: rdb, logger: l}
}

func (g *guard) CheckAvailable(ctx context.Context, positionName string) error {
	pos, err := g.repo.FindByName(ctx, positionName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return positionerrors.ErrPositionNotFound
		}
		return fmt.Errorf("find position %q: %w", positionName, err)
	}

	if pos.Status == StatusDeactive && !IsPrivileged(pos.Name) {
		return positionerrors.ErrPositionNotAvailable
	}
	return nil
}

func (g *guard) CheckAssign(ctx context.Context, positionName, employeeStatus, employeeID string) error {
	if !IsPrivileged(positionName) || employeeStatus != activeHolderStatus {
		return nil
	}

	count, err := g.holders.CountActiveHolders(ctx, PrivilegedName, employeeID)
	if err != nil {
		return fmt.Errorf("count active president holders: %w", err)
	}
	if count > 0 {
		g.logger.Warn("president already assigned",
			zap.String("employee_id", employeeID),
			zap.Int64("active_holders", count),
		)
		return positionerrors.ErrPresidentAlreadyAssigned
	}
	return nil
}

func (g *guard) OnAssign(ctx context.Context, positionName, employeeStatus string) error {
	if !IsPrivileged(positionName) || employeeStatus != activeHolderStatus {
		return nil
	}
	return g.setStatus(ctx, positionName, StatusDeactive)
}

func (g *guard) OnVacate(ctx context.Context, positionName string) error {
	if !IsPrivileged(positionName) {
		return nil
	}

	count, err := g.holders.CountActiveHolders(ctx, PrivilegedName, "")
	if err != nil {
		return fmt.Errorf("count active president holders: %w", err)
	}
	if count > 0 {
		return nil
	}
	return g.setStatus(ctx, positionName, StatusActive)
}

func (g *guard) setStatus(ctx context.Context, positionName, status string) error {
	pos, err := g.repo.FindByName(ctx, positionName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			g.logger.Debug("position record missing, status left untouched", zap.String("position", positionName))
			return nil
		}
		return fmt.Errorf("find position %q: %w", positionName, err)
	}

	if pos.Status == status {
		return nil
	}

	if err := g.repo.UpdateStatus(ctx, pos.ID, status); err != nil {
		return fmt.Errorf("set position %d status to %s: %w", pos.ID, status, err)
	}

	g.logger.Info("position status changed",
		zap.Uint("position_id", pos.ID),
		zap.String("from", pos.Status),
		zap.String("to", status),
	)

	if g.rdb != nil {
		if err := g.rdb.Del(ctx, PositionAllKey).Err(); err != nil {
			g.logger.Warn("invalidate positions cache failed", zap.String("key", PositionAllKey), zap.Error(err))
		}
	}
	return nil
}
