// Package scope carries the authenticated caller's tenant context and the
// predicate that keeps every entity access inside that tenant.
package scope

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"scheduler-service/internal/apperr"
	"scheduler-service/internal/model"
)

// Scope is the resolved (tenant, user, role) triple of the caller. It is
// rebuilt from the request context on every call and never cached.
type Scope struct {
	TenantID uuid.UUID
	UserID   uuid.UUID
	Role     model.UserRole
}

// FromContext reads the values the auth middleware stored. A missing or
// unresolvable tenant id is fatal: the request never reaches business logic.
func FromContext(c echo.Context) (Scope, error) {
	tenantID, ok := c.Get("tenant_id").(uuid.UUID)
	if !ok || tenantID == uuid.Nil {
		return Scope{}, apperr.Unauthenticated("tenant not resolved from credentials")
	}
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return Scope{}, apperr.Unauthenticated("user not resolved from credentials")
	}
	role, _ := c.Get("user_role").(model.UserRole)
	return Scope{TenantID: tenantID, UserID: userID, Role: role}, nil
}

// Authorize checks that the entity's effective tenant equals the caller's.
// A mismatch is Forbidden, deliberately distinct from NotFound: the entity
// exists, the caller just may not see it.
func (s Scope) Authorize(e model.TenantOwned) error {
	if e.EffectiveTenant() != s.TenantID {
		return apperr.Forbidden("resource belongs to another organization")
	}
	return nil
}
