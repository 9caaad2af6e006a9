package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduler-service/internal/model"
	"scheduler-service/pkg/config"
	"scheduler-service/pkg/jwtutil"
)

func newAuthTestServer(issuer *jwtutil.Issuer) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"tenant_id": c.Get("tenant_id").(uuid.UUID).String(),
			"user_id":   c.Get("user_id").(uuid.UUID).String(),
			"role":      string(c.Get("user_role").(model.UserRole)),
		})
	}, AuthMiddleware(issuer))
	return e
}

func issueToken(t *testing.T, issuer *jwtutil.Issuer, user *model.User) string {
	t.Helper()
	token, err := issuer.Issue(user)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	issuer := jwtutil.New(&config.JWTConfig{SigningKey: "test-signing-key", ExpiryMinutes: 60})
	e := newAuthTestServer(issuer)

	user := &model.User{
		Email:    "admin@acme.co",
		Role:     model.RoleAdmin,
		TenantID: uuid.New(),
	}
	user.ID = uuid.New()

	t.Run("valid token resolves tenant scope", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, issuer, user))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), user.TenantID.String())
		assert.Contains(t, rec.Body.String(), user.ID.String())
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other := jwtutil.New(&config.JWTConfig{SigningKey: "other-key", ExpiryMinutes: 60})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, other, user))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token without tenant is rejected", func(t *testing.T) {
		anon := &model.User{Email: "x@acme.co", Role: model.RoleEmployee}
		anon.ID = uuid.New()

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, issuer, anon))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "tenant not resolved")
	})
}
