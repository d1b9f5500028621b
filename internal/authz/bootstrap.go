package authz

import (
	"fmt"

	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/repository"
)

// RoleSeed is a built-in role definition.
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
}

// BuiltinRoleSeeds returns the platform's role matrix. The admin role
// covers the whole admin surface; agents and merchants get their own
// self-service endpoints.
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: models.RoleAdmin,
			Policies: []Policy{
				{Object: "/admin/*", Action: "*"},
			},
		},
		{
			Role: models.RoleAgent,
			Policies: []Policy{
				{Object: "/agents/me", Action: "GET"},
				{Object: "/agents/withdrawals", Action: "*"},
			},
		},
		{
			Role: models.RoleMerchant,
			Policies: []Policy{
				{Object: "/merchants/usage", Action: "POST"},
			},
		},
	}
}

// BootstrapBuiltinRoles installs the built-in roles and their default
// policies. Idempotent.
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := s.EnsureRole(seed.Role)
		if err != nil {
			return err
		}
		for _, parent := range seed.Inherits {
			parentRole, err := NormalizeRole(parent)
			if err != nil {
				return err
			}
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, parentRole); err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
		}
		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}
	return nil
}

// SyncUserRoles mirrors a user's role rows into casbin grouping
// policies.
func (s *Service) SyncUserRoles(userRepo repository.UserRepository, userID uint) error {
	roles, err := userRepo.RolesOf(userID)
	if err != nil {
		return err
	}
	return s.SetUserRoles(userID, roles)
}
