package scope

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduler-service/internal/apperr"
	"scheduler-service/internal/model"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestFromContext(t *testing.T) {
	tenantID := uuid.New()
	userID := uuid.New()

	c := newEchoContext()
	c.Set("tenant_id", tenantID)
	c.Set("user_id", userID)
	c.Set("user_role", model.RoleManager)

	sc, err := FromContext(c)
	require.NoError(t, err)
	assert.Equal(t, tenantID, sc.TenantID)
	assert.Equal(t, userID, sc.UserID)
	assert.Equal(t, model.RoleManager, sc.Role)
}

func TestFromContextMissingTenant(t *testing.T) {
	c := newEchoContext()
	c.Set("user_id", uuid.New())

	_, err := FromContext(c)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}

func TestFromContextNilTenant(t *testing.T) {
	c := newEchoContext()
	c.Set("tenant_id", uuid.Nil)
	c.Set("user_id", uuid.New())

	_, err := FromContext(c)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}

func TestFromContextMissingUser(t *testing.T) {
	c := newEchoContext()
	c.Set("tenant_id", uuid.New())

	_, err := FromContext(c)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}

func TestAuthorize(t *testing.T) {
	tenantID := uuid.New()
	sc := Scope{TenantID: tenantID, UserID: uuid.New(), Role: model.RoleAdmin}

	owned := &model.Schedule{TenantID: tenantID}
	assert.NoError(t, sc.Authorize(owned))

	foreign := &model.Schedule{TenantID: uuid.New()}
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(sc.Authorize(foreign)))
}

func TestAuthorizeUnloadedRelationIsForbidden(t *testing.T) {
	// A shift whose schedule was never loaded resolves to the nil tenant and
	// must not pass authorization by accident.
	sc := Scope{TenantID: uuid.New(), UserID: uuid.New()}
	assert.Error(t, sc.Authorize(&model.Shift{}))
}
