package department

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	OptionsKey = "departments:names"
	optionsTTL = 5 * time.Minute
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]DepartmentOption, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) List(ctx context.Context) ([]DepartmentOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsKey).Result(); err == nil {
			var resp []DepartmentOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsKey, func() (interface{}, error) {
		names, err := s.repo.DistinctNames(ctx)
		if err != nil {
			return nil, err
		}
		opts := make([]DepartmentOption, len(names))
		for i, name := range names {
			opts[i] = DepartmentOption{Name: name}
		}

		if s.rdb != nil {
			if raw, err := json.Marshal(opts); err == nil {
				if err := s.rdb.Set(ctx, OptionsKey, raw, optionsTTL).Err(); err != nil {
					s.logger.Warn("cache departments failed", zap.Error(err))
				}
			}
		}
		return opts, nil
	})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list departments failed", zap.Error(err))
		return nil, err
	}
	return v.([]DepartmentOption), nil
}
