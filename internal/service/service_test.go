package service

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"scheduler-service/internal/model"
	"scheduler-service/internal/scope"
	"scheduler-service/internal/store"
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

// fakeIssuer hands out deterministic credentials so tests can assert the
// wiring without parsing JWTs.
type fakeIssuer struct {
	issued int
}

func (f *fakeIssuer) Issue(user *model.User) (string, error) {
	f.issued++
	return "token-" + user.Email, nil
}

func (f *fakeIssuer) IssueRefresh() (string, error) {
	return "refresh-" + strconv.Itoa(f.issued), nil
}

// fakeNotifier records welcome mails and can be told to fail.
type fakeNotifier struct {
	welcomes []string
	fail     bool
}

func (f *fakeNotifier) err() error {
	if f.fail {
		return errors.New("smtp unreachable")
	}
	return nil
}

func (f *fakeNotifier) SendWelcome(to, name string) error {
	f.welcomes = append(f.welcomes, to)
	return f.err()
}

func (f *fakeNotifier) SendShiftReminder(to, details string) error  { return f.err() }
func (f *fakeNotifier) SendScheduleUpdate(to, details string) error { return f.err() }

// tenantFixture is one registered tenant with an admin scope ready for use.
type tenantFixture struct {
	tenant *model.Tenant
	admin  *model.User
	scope  scope.Scope
}

func seedTenantFixture(t *testing.T, db *gorm.DB, domain string) *tenantFixture {
	t.Helper()

	tenant := &model.Tenant{
		Name:         domain,
		Domain:       domain,
		Subscription: model.SubscriptionFree,
		TimeZone:     "UTC",
		Locale:       "en-US",
		Active:       true,
	}
	require.NoError(t, store.New[model.Tenant](db).Add(tenant))

	admin := &model.User{
		Email:     "admin@" + domain,
		Password:  "not-a-real-hash",
		FirstName: "Admin",
		LastName:  "User",
		Role:      model.RoleAdmin,
		TenantID:  tenant.ID,
		Active:    true,
	}
	require.NoError(t, store.New[model.User](db).Add(admin))

	return &tenantFixture{
		tenant: tenant,
		admin:  admin,
		scope:  scope.Scope{TenantID: tenant.ID, UserID: admin.ID, Role: model.RoleAdmin},
	}
}

func seedEmployee(t *testing.T, db *gorm.DB, fx *tenantFixture, email, code string) *model.Employee {
	t.Helper()

	user := &model.User{
		Email:     email,
		Password:  "not-a-real-hash",
		FirstName: "Test",
		LastName:  "Employee",
		Role:      model.RoleEmployee,
		TenantID:  fx.tenant.ID,
		Active:    true,
	}
	require.NoError(t, store.New[model.User](db).Add(user))

	employee := &model.Employee{
		UserID:       user.ID,
		EmployeeCode: code,
		HireDate:     time.Now().UTC(),
	}
	require.NoError(t, store.New[model.Employee](db).Add(employee))
	employee.User = *user
	return employee
}

func seedSchedule(t *testing.T, db *gorm.DB, fx *tenantFixture, weekStart time.Time) *model.Schedule {
	t.Helper()

	schedule := &model.Schedule{
		TenantID:  fx.tenant.ID,
		WeekStart: weekStart,
		WeekEnd:   weekStart.AddDate(0, 0, 6),
		CreatedBy: fx.admin.ID,
		Status:    model.ScheduleDraft,
	}
	require.NoError(t, store.New[model.Schedule](db).Add(schedule))
	return schedule
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}
