package jwtutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduler-service/internal/model"
	"scheduler-service/pkg/config"
)

func newTestIssuer(key string, minutes int) *Issuer {
	return New(&config.JWTConfig{SigningKey: key, ExpiryMinutes: minutes})
}

func testUser() *model.User {
	u := &model.User{
		Email:    "admin@acme.co",
		Role:     model.RoleAdmin,
		TenantID: uuid.New(),
	}
	u.ID = uuid.New()
	return u
}

func TestIssueAndValidate(t *testing.T) {
	issuer := newTestIssuer("test-signing-key", 60)
	user := testUser()

	token, err := issuer.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.TenantID.String(), claims.TenantID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateRejectsWrongKey(t *testing.T) {
	token, err := newTestIssuer("key-one", 60).Issue(testUser())
	require.NoError(t, err)

	_, err = newTestIssuer("key-two", 60).Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	token, err := newTestIssuer("test-signing-key", -1).Issue(testUser())
	require.NoError(t, err)

	_, err = newTestIssuer("test-signing-key", -1).Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := newTestIssuer("test-signing-key", 60).Validate("not-a-token")
	assert.Error(t, err)
}

func TestIssueRefreshIsOpaqueAndUnique(t *testing.T) {
	issuer := newTestIssuer("test-signing-key", 60)

	a, err := issuer.IssueRefresh()
	require.NoError(t, err)
	b, err := issuer.IssueRefresh()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
