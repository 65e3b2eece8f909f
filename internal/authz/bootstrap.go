package authz

import (
	"fmt"

	"github.com/artisan-market/internal/constants"
)

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
}

// BuiltinRoleSeeds 系统预置角色能力矩阵。
// admin 继承 artisan，artisan 继承 buyer。
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: constants.RoleBuyer,
			Policies: []Policy{
				{Object: "/cart", Action: "*"},
				{Object: "/cart/:itemId", Action: "*"},
				{Object: "/orders", Action: "GET"},
				{Object: "/orders", Action: "POST"},
				{Object: "/orders/:id", Action: "GET"},
				{Object: "/wishlist", Action: "*"},
				{Object: "/wishlist/:productId", Action: "*"},
				{Object: "/users/profile", Action: "GET"},
				{Object: "/users/profile", Action: "PUT"},
			},
		},
		{
			Role:     constants.RoleArtisan,
			Inherits: []string{constants.RoleBuyer},
			Policies: []Policy{
				{Object: "/products", Action: "POST"},
				{Object: "/products/:id", Action: "PUT"},
				{Object: "/products/:id", Action: "DELETE"},
			},
		},
		{
			Role:     constants.RoleAdmin,
			Inherits: []string{constants.RoleArtisan},
			Policies: []Policy{
				{Object: "/orders/admin/all", Action: "GET"},
				{Object: "/admin/*", Action: "*"},
			},
		},
	}
}

// BootstrapBuiltinRoles 初始化预置角色与默认策略
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := SubjectForRole(seed.Role)
		if err != nil {
			return err
		}

		for _, parent := range seed.Inherits {
			parentRole, err := SubjectForRole(parent)
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
