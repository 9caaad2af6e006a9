package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"scheduler-service/internal/apperr"
	"scheduler-service/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Tenant{},
		&model.User{},
		&model.Employee{},
		&model.Schedule{},
		&model.Shift{},
		&model.ShiftTemplate{},
	))
	return db
}

func seedTenant(t *testing.T, db *gorm.DB, domain string) *model.Tenant {
	t.Helper()
	tenant := &model.Tenant{Name: domain, Domain: domain, Active: true}
	require.NoError(t, New[model.Tenant](db).Add(tenant))
	return tenant
}

func TestAddAssignsIdentifierAndTimestamps(t *testing.T) {
	db := newTestDB(t)

	tenant := seedTenant(t, db, "acme.co")
	assert.NotEqual(t, uuid.Nil, tenant.ID)
	assert.False(t, tenant.CreatedAt.IsZero())
	assert.False(t, tenant.UpdatedAt.IsZero())
}

func TestGetByIDUnknownIsNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := New[model.Tenant](db).GetByID(uuid.New())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestSoftDeleteHidesRecordFromAllReads(t *testing.T) {
	db := newTestDB(t)
	tenants := New[model.Tenant](db)

	tenant := seedTenant(t, db, "acme.co")
	require.NoError(t, tenants.Delete(tenant))

	_, err := tenants.GetByID(tenant.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	found, err := tenants.Find("domain = ?", "acme.co")
	require.NoError(t, err)
	assert.Empty(t, found)

	exists, err := tenants.Exists("domain = ?", "acme.co")
	require.NoError(t, err)
	assert.False(t, exists)

	// The row itself survives for audit; only the default scope hides it.
	var count int64
	require.NoError(t, db.Unscoped().Model(&model.Tenant{}).Where("domain = ?", "acme.co").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateCannotReviveDeletedRecord(t *testing.T) {
	db := newTestDB(t)
	tenants := New[model.Tenant](db)

	tenant := seedTenant(t, db, "acme.co")
	require.NoError(t, tenants.Delete(tenant))

	tenant.Name = "Acme Renamed"
	_ = tenants.Update(tenant)

	_, err := tenants.GetByID(tenant.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeleteCascadesToAssociations(t *testing.T) {
	db := newTestDB(t)

	tenant := seedTenant(t, db, "acme.co")
	user := &model.User{Email: "e@acme.co", Password: "x", FirstName: "Eve", LastName: "Lee", Role: model.RoleEmployee, TenantID: tenant.ID, Active: true}
	require.NoError(t, New[model.User](db).Add(user))
	employee := &model.Employee{UserID: user.ID, EmployeeCode: "E1", HireDate: time.Now()}
	require.NoError(t, New[model.Employee](db).Add(employee))

	schedules := New[model.Schedule](db)
	schedule := &model.Schedule{TenantID: tenant.ID, WeekStart: time.Now(), WeekEnd: time.Now().AddDate(0, 0, 6), CreatedBy: user.ID, Status: model.ScheduleDraft}
	require.NoError(t, schedules.Add(schedule))

	shifts := New[model.Shift](db)
	shift := &model.Shift{ScheduleID: schedule.ID, EmployeeID: employee.ID, Date: time.Now(), StartTime: "09:00", EndTime: "17:00", Type: model.ShiftMorning, Status: model.ShiftScheduled}
	require.NoError(t, shifts.Add(shift))

	require.NoError(t, schedules.Delete(schedule))

	_, err := shifts.GetByID(shift.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUnitOfWorkSaveChangesReportsAffectedCount(t *testing.T) {
	db := newTestDB(t)

	uow, err := Begin(db)
	require.NoError(t, err)
	defer uow.Rollback()

	tenants := Scoped[model.Tenant](uow)
	require.NoError(t, tenants.Add(&model.Tenant{Name: "Acme", Domain: "acme.co", Active: true}))
	require.NoError(t, tenants.Add(&model.Tenant{Name: "Beta", Domain: "beta.co", Active: true}))

	affected, err := uow.SaveChanges()
	require.NoError(t, err)
	assert.EqualValues(t, 2, affected)

	exists, err := New[model.Tenant](db).Exists("domain = ?", "beta.co")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUnitOfWorkRollbackDiscardsWrites(t *testing.T) {
	db := newTestDB(t)

	uow, err := Begin(db)
	require.NoError(t, err)

	require.NoError(t, Scoped[model.Tenant](uow).Add(&model.Tenant{Name: "Acme", Domain: "acme.co", Active: true}))
	uow.Rollback()

	exists, err := New[model.Tenant](db).Exists("domain = ?", "acme.co")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = uow.SaveChanges()
	assert.Error(t, err)
}

func TestDuplicateKeySurfacesAsDuplicate(t *testing.T) {
	db := newTestDB(t)
	tenants := New[model.Tenant](db)

	require.NoError(t, tenants.Add(&model.Tenant{Name: "Acme", Domain: "acme.co", Active: true}))
	err := tenants.Add(&model.Tenant{Name: "Shadow", Domain: "acme.co", Active: true})
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))
}

func TestPreloadLoadsAssociation(t *testing.T) {
	db := newTestDB(t)

	tenant := seedTenant(t, db, "acme.co")
	user := &model.User{Email: "e@acme.co", Password: "x", FirstName: "Eve", LastName: "Lee", Role: model.RoleEmployee, TenantID: tenant.ID, Active: true}
	require.NoError(t, New[model.User](db).Add(user))

	loaded, err := New[model.User](db).Preload("Tenant").GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, loaded.Tenant.ID)
}
