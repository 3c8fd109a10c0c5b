package position

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	positionerrors "go-hr-admin/internal/position/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	PositionAllKey   = "positions:all"
	positionCacheTTL = 30 * time.Minute
)

//go:generate mockgen -source=position_service.go -destination=mock/position_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]PositionResponse, error)
	GetByID(ctx context.Context, id string) (PositionResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("position.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("position.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]PositionResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, PositionAllKey).Result()
		if err == nil {
			var resp []PositionResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("read positions cache failed", zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(PositionAllKey, func() (interface{}, error) {
		positions, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(positions)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, PositionAllKey, jsonData, positionCacheTTL).Err(); err != nil {
					s.logger.Warn("write positions cache failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("get all positions failed", zap.Error(err))
		return nil, err
	}

	return v.([]PositionResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PositionResponse, error) {
	posID, err := strconv.ParseUint(id, 10, 64)
	if err != nil || posID == 0 {
		return PositionResponse{}, positionerrors.ErrInvalidPositionID
	}

	pos, err := s.repo.FindByID(ctx, uint(posID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PositionResponse{}, positionerrors.ErrPositionNotFound
		}
		s.logger.Error("get position by id failed", zap.Uint64("position_id", posID), zap.Error(err))
		return PositionResponse{}, err
	}

	return mapToResponse(*pos), nil
}

func mapToResponse(pos Position) PositionResponse {
	resp := PositionResponse{
		ID:     pos.ID,
		Name:   pos.Name,
		Status: pos.Status,
	}
	if pos.CreatedAt != nil {
		resp.CreatedAt = pos.CreatedAt.Format(time.RFC3339)
	}
	if pos.UpdatedAt != nil {
		resp.UpdatedAt = pos.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(positions []Position) []PositionResponse {
	res := make([]PositionResponse, len(positions))
	for i, p := range positions {
		res[i] = mapToResponse(p)
	}
	return res
}
