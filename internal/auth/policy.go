package auth

import (
	"net/http"

	apperrors "duty-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// Roles recognised by the role policy
const (
	RoleUser       = "User"
	RoleAdmin      = "Admin"
	RoleSuperAdmin = "SuperAdmin"
)

// RolePolicy grants access when the caller's role is in the allowed set
type RolePolicy struct {
	allowed map[string]struct{}
}

// NewRolePolicy creates a policy for the given roles
func NewRolePolicy(roles ...string) *RolePolicy {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return &RolePolicy{allowed: allowed}
}

// TeamAdminPolicy is the capability set guarding team mutations
func TeamAdminPolicy() *RolePolicy {
	return NewRolePolicy(RoleAdmin, RoleSuperAdmin)
}

// Check returns nil when role is allowed
func (p *RolePolicy) Check(role string) error {
	if _, ok := p.allowed[role]; ok {
		return nil
	}
	return apperrors.ErrInsufficientRole
}

// RequireRoles rejects requests whose role fails the policy. It must run after RequireAuth.
func RequireRoles(policy *RolePolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := GetRole(c)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		if err := policy.Check(role); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}

		c.Next()
	}
}
