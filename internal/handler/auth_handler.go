package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"scheduler-service/internal/service"
	"scheduler-service/pkg/logger"
	"scheduler-service/prometheus"
)

// AuthHandler exposes the onboarding and session endpoints.
type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// RegisterTenant creates a new tenant with its administrator account and
// returns the implicit-login session credential.
func (h *AuthHandler) RegisterTenant(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RegisterCounter.Inc()

	var req service.RegisterTenantInput
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse registration request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	result, err := h.svc.RegisterTenant(req)
	if err != nil {
		prometheus.RecordAuthError("registration_failed")
		return fail(c, log, err)
	}

	prometheus.IncreaseActiveTokens()
	log.Info("Tenant registered",
		zap.String("domain", req.Domain),
		zap.String("admin_email", req.AdminEmail))

	return c.JSON(http.StatusCreated, result)
}

// Login authenticates a user and issues a tenant-bound session credential.
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	result, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		prometheus.RecordAuthError("login_failure")
		return fail(c, log, err)
	}

	prometheus.IncreaseActiveTokens()
	return c.JSON(http.StatusOK, result)
}

// Logout acknowledges; tokens stay valid until natural expiry.
func (h *AuthHandler) Logout(c echo.Context) error {
	log := logger.FromContext(c)

	token := strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
	if token == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "token is required"})
	}

	if err := h.svc.Logout(token); err != nil {
		return fail(c, log, err)
	}

	prometheus.DecreaseActiveTokens()
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out successfully"})
}

// Refresh surfaces the unsupported refresh flow explicitly.
func (h *AuthHandler) Refresh(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	result, err := h.svc.RefreshToken(req.RefreshToken)
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusOK, result)
}
