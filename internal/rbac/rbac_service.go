package rbac

import (
	"sync"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	PermissionsFor(role string) ([]domain.PermissionResponse, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewService loads policies into the enforcer. An empty policy list means DefaultPolicies.
func NewService(enforcer *casbin.Enforcer, policies []Policy, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	if len(policies) == 0 {
		policies = DefaultPolicies
	}

	enforcer.ClearPolicy()
	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
			return nil, err
		}
	}
	l.Info("rbac policy loaded", zap.Int("policies", len(policies)))

	return &service{enforcer: enforcer, logger: l}, nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("user_id", req.UserID),
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("user_id", req.UserID),
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) PermissionsFor(role string) ([]domain.PermissionResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rules, err := s.enforcer.GetFilteredPolicy(0, role)
	if err != nil {
		return nil, err
	}
	perms := make([]domain.PermissionResponse, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 3 {
			continue
		}
		perms = append(perms, domain.PermissionResponse{Resource: rule[1], Action: rule[2]})
	}
	return perms, nil
}
