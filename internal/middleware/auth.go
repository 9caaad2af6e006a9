package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"scheduler-service/internal/model"
	"scheduler-service/prometheus"
	"scheduler-service/pkg/jwtutil"
	"scheduler-service/pkg/logger"
)

// AuthMiddleware validates the bearer token and stores the caller's
// resolved (tenant, user, role) triple in the request context. A token
// without a resolvable tenant never reaches business logic.
func AuthMiddleware(issuer *jwtutil.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromContext(c)

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				log.Error("Missing Authorization header")
				prometheus.RecordAuthError("missing_token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				log.Error("Invalid Authorization header format")
				prometheus.RecordAuthError("invalid_auth_format")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
			}

			claims, err := issuer.Validate(parts[1])
			if err != nil {
				log.Error("Invalid JWT token", zap.Error(err))
				prometheus.RecordAuthError("invalid_token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				log.Error("Invalid user id in token", zap.Error(err))
				prometheus.RecordAuthError("invalid_token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}
			tenantID, err := uuid.Parse(claims.TenantID)
			if err != nil || tenantID == uuid.Nil {
				log.Error("Token carries no resolvable tenant", zap.Error(err))
				prometheus.RecordAuthError("missing_tenant")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "tenant not resolved from credentials"})
			}

			c.Set("user_id", userID)
			c.Set("tenant_id", tenantID)
			c.Set("email", claims.Email)
			c.Set("user_role", model.UserRole(claims.Role))

			return next(c)
		}
	}
}
