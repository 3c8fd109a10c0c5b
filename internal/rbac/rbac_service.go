package rbac

import (
	"fmt"
	"sync"

	"go-hr-admin/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

type Policy struct {
	Role     string
	Resource string
	Action   string
}

// Inheritance makes Child hold every permission of Parent.
type Inheritance struct {
	Child  string
	Parent string
}

// DefaultPolicies: every account may read the HR directory, only admins
// mutate employees and move workflows through their states.
var DefaultPolicies = []Policy{
	{Role: RoleUser, Resource: "employee", Action: "read"},
	{Role: RoleUser, Resource: "department", Action: "read"},
	{Role: RoleUser, Resource: "position", Action: "read"},
	{Role: RoleUser, Resource: "workflow", Action: "read"},
	{Role: RoleAdmin, Resource: "employee", Action: "*"},
	{Role: RoleAdmin, Resource: "workflow", Action: "*"},
}

var DefaultInheritance = []Inheritance{
	{Child: RoleAdmin, Parent: RoleUser},
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicies(policies []Policy, inheritance []Inheritance) error
	Enforce(req domain.EnforceRequest) (bool, error)
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

// NewDefaultService builds a service already loaded with DefaultPolicies.
func NewDefaultService(enforcer *casbin.Enforcer, logger ...*zap.Logger) (Service, error) {
	svc := NewService(enforcer, logger...)
	if err := svc.LoadPolicies(DefaultPolicies, DefaultInheritance); err != nil {
		return nil, err
	}
	return svc, nil
}

// LoadPolicies replaces the whole policy set.
func (s *service) LoadPolicies(policies []Policy, inheritance []Inheritance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	for _, in := range inheritance {
		if _, err := s.enforcer.AddGroupingPolicy(in.Child, in.Parent); err != nil {
			return fmt.Errorf("add role inheritance %s -> %s: %w", in.Child, in.Parent, err)
		}
	}

	for _, p := range policies {
		if _, err := s.enforcer.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
			return fmt.Errorf("add policy %s %s:%s: %w", p.Role, p.Resource, p.Action, err)
		}
	}

	s.logger.Info("rbac policies loaded",
		zap.Int("policies", len(policies)),
		zap.Int("inheritance", len(inheritance)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}
