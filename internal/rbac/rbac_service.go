package rbac

import (
	"context"
	"sync"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/shared/contextutil"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error)
	Permissions(ctx context.Context, userID uint) (PermissionsResponse, error)
	Policies() []domain.PolicyRule
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	rules    []domain.PolicyRule
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, rules []domain.PolicyRule, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		rules:    rules,
		logger:   l,
	}
}

// Enforce resolves the caller's position on every call. A user without an
// employee profile is always denied.
func (s *service) Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error) {
	rid := contextutil.GetRequestID(ctx)

	position, err := s.repo.FindPositionByUserID(ctx, req.UserID)
	if err != nil {
		s.logger.Error("rbac resolve position failed",
			zap.String("request_id", rid),
			zap.Uint("user_id", req.UserID),
			zap.Error(err),
		)
		return false, err
	}
	if position == nil {
		s.logger.Debug("rbac denied without employee profile",
			zap.String("request_id", rid),
			zap.Uint("user_id", req.UserID),
		)
		return false, nil
	}

	s.mu.RLock()
	allowed, err := s.enforcer.Enforce(string(*position), req.Resource, req.Action)
	s.mu.RUnlock()
	if err != nil {
		s.logger.Error("rbac enforce failed", zap.String("request_id", rid), zap.Error(err))
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("request_id", rid),
		zap.Uint("user_id", req.UserID),
		zap.String("position", string(*position)),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)

	return allowed, nil
}

func (s *service) Permissions(ctx context.Context, userID uint) (PermissionsResponse, error) {
	position, err := s.repo.FindPositionByUserID(ctx, userID)
	if err != nil {
		return PermissionsResponse{}, err
	}

	resp := PermissionsResponse{Position: position, Permissions: []domain.PolicyRule{}}
	if position == nil {
		return resp, nil
	}

	for _, r := range s.Policies() {
		if r.Position == *position {
			resp.Permissions = append(resp.Permissions, r)
		}
	}
	return resp, nil
}

func (s *service) Policies() []domain.PolicyRule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PolicyRule, len(s.rules))
	copy(out, s.rules)
	return out
}
