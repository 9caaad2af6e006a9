package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduler-service/internal/apperr"
)

func TestCreateTemplateDefaults(t *testing.T) {
	db := newTestDB(t)
	fx := seedTenantFixture(t, db, "acme.co")
	svc := NewShiftTemplateService(db, nil)

	template, err := svc.Create(fx.scope, CreateTemplateInput{Name: "Standard Week"})
	require.NoError(t, err)

	assert.Equal(t, fx.tenant.ID, template.TenantID)
	assert.Equal(t, "{}", template.DefaultShifts)
	assert.True(t, template.Active)
}

func TestCreateTemplateRequiresName(t *testing.T) {
	db := newTestDB(t)
	fx := seedTenantFixture(t, db, "acme.co")
	svc := NewShiftTemplateService(db, nil)

	_, err := svc.Create(fx.scope, CreateTemplateInput{})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestTemplateTenantIsolation(t *testing.T) {
	db := newTestDB(t)
	acme := seedTenantFixture(t, db, "acme.co")
	beta := seedTenantFixture(t, db, "beta.co")
	svc := NewShiftTemplateService(db, nil)

	template, err := svc.Create(acme.scope, CreateTemplateInput{Name: "Standard Week"})
	require.NoError(t, err)

	_, err = svc.Get(beta.scope, template.ID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	list, err := svc.List(beta.scope)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateTemplateDeactivation(t *testing.T) {
	db := newTestDB(t)
	fx := seedTenantFixture(t, db, "acme.co")
	svc := NewShiftTemplateService(db, nil)

	template, err := svc.Create(fx.scope, CreateTemplateInput{Name: "Standard Week"})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.Update(fx.scope, template.ID, CreateTemplateInput{Active: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, "Standard Week", updated.Name)
}

func TestDeleteTemplate(t *testing.T) {
	db := newTestDB(t)
	fx := seedTenantFixture(t, db, "acme.co")
	svc := NewShiftTemplateService(db, nil)

	template, err := svc.Create(fx.scope, CreateTemplateInput{Name: "Standard Week"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(fx.scope, template.ID))

	_, err = svc.Get(fx.scope, template.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
