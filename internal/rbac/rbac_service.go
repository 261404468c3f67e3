package rbac

import (
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

type Service interface {
	Enforce(role, resource, action string) (bool, error)
	Permissions(role string) ([]Permission, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{enforcer: enforcer, logger: l}
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(strings.TrimSpace(role), resource, action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", role),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}
	return allowed, nil
}

// Permissions lists what role may do, including inherited grants.
func (s *service) Permissions(role string) ([]Permission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rules, err := s.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return nil, err
	}

	perms := make([]Permission, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 3 {
			continue
		}
		perms = append(perms, Permission{Resource: rule[1], Action: rule[2]})
	}
	return perms, nil
}
