package service

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"scheduler-service/internal/apperr"
	"scheduler-service/internal/model"
	"scheduler-service/internal/store"
)

// TokenIssuer is the credential-issuer collaborator.
type TokenIssuer interface {
	Issue(user *model.User) (string, error)
	IssueRefresh() (string, error)
}

// Notifier is the outbound-mail collaborator. Sends are fire-and-forget;
// the services log failures and never propagate them.
type Notifier interface {
	SendWelcome(to, name string) error
	SendShiftReminder(to, details string) error
	SendScheduleUpdate(to, details string) error
}

// AuthService handles tenant onboarding and session issuance.
type AuthService struct {
	db       *gorm.DB
	tokens   TokenIssuer
	notifier Notifier
	tokenTTL time.Duration
	log      *zap.Logger
}

// NewAuthService creates the onboarding/auth service.
func NewAuthService(db *gorm.DB, tokens TokenIssuer, notifier Notifier, tokenTTL time.Duration, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{db: db, tokens: tokens, notifier: notifier, tokenTTL: tokenTTL, log: log}
}

// RegisterTenantInput is the onboarding payload.
type RegisterTenantInput struct {
	TenantName     string                 `json:"tenant_name"`
	Domain         string                 `json:"domain"`
	AdminFirstName string                 `json:"admin_first_name"`
	AdminLastName  string                 `json:"admin_last_name"`
	AdminEmail     string                 `json:"admin_email"`
	AdminPassword  string                 `json:"admin_password"`
	Subscription   model.SubscriptionTier `json:"subscription"`
	TimeZone       string                 `json:"time_zone"`
	Locale         string                 `json:"locale"`
}

// AuthResult is the session credential returned by login and registration.
type AuthResult struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
	User         *model.User `json:"user"`
	ExpiresAt    time.Time   `json:"expires_at"`
}

// RegisterTenant creates a tenant and its administrator as one unit, sends a
// best-effort welcome mail, and performs an implicit login.
//
// Domain and email are pre-checked before any write. Two concurrent
// registrations for the same domain can both pass the pre-check; the unique
// index decides the race and the loser surfaces as a conflict.
func (s *AuthService) RegisterTenant(in RegisterTenantInput) (*AuthResult, error) {
	if in.TenantName == "" || in.Domain == "" || in.AdminEmail == "" || in.AdminPassword == "" {
		return nil, apperr.Validation("tenant name, domain, admin email and password are required")
	}

	tenants := store.New[model.Tenant](s.db)
	exists, err := tenants.Exists("domain = ?", in.Domain)
	if err != nil {
		return nil, apperr.Internal("registration failed", err)
	}
	if exists {
		return nil, apperr.Validation("domain already exists")
	}

	users := store.New[model.User](s.db)
	exists, err = users.Exists("email = ?", in.AdminEmail)
	if err != nil {
		return nil, apperr.Internal("registration failed", err)
	}
	if exists {
		return nil, apperr.Validation("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperr.Internal("registration failed", err)
	}

	subscription := in.Subscription
	if subscription == "" {
		subscription = model.SubscriptionFree
	}
	timeZone := in.TimeZone
	if timeZone == "" {
		timeZone = "UTC"
	}
	locale := in.Locale
	if locale == "" {
		locale = "en-US"
	}

	uow, err := store.Begin(s.db)
	if err != nil {
		return nil, apperr.Internal("registration failed", err)
	}
	defer uow.Rollback()

	tenant := model.Tenant{
		Name:         in.TenantName,
		Domain:       in.Domain,
		Subscription: subscription,
		TimeZone:     timeZone,
		Locale:       locale,
		Active:       true,
	}
	if err := store.Scoped[model.Tenant](uow).Add(&tenant); err != nil {
		if store.IsDuplicate(err) {
			return nil, apperr.Conflict("domain already exists")
		}
		s.log.Error("Failed to create tenant", zap.Error(err))
		return nil, apperr.Internal("registration failed", err)
	}

	admin := model.User{
		Email:     in.AdminEmail,
		Password:  string(hash),
		FirstName: in.AdminFirstName,
		LastName:  in.AdminLastName,
		Role:      model.RoleAdmin,
		TenantID:  tenant.ID,
		Active:    true,
	}
	if err := store.Scoped[model.User](uow).Add(&admin); err != nil {
		if store.IsDuplicate(err) {
			return nil, apperr.Conflict("email already exists")
		}
		s.log.Error("Failed to create admin user", zap.Error(err))
		return nil, apperr.Internal("registration failed", err)
	}

	if _, err := uow.SaveChanges(); err != nil {
		s.log.Error("Failed to commit registration", zap.Error(err))
		return nil, apperr.Internal("registration failed", err)
	}

	// Welcome mail must not fail registration
	if err := s.notifier.SendWelcome(admin.Email, admin.FirstName+" "+admin.LastName); err != nil {
		s.log.Warn("Failed to send welcome mail",
			zap.String("email", admin.Email),
			zap.Error(err))
	}

	s.log.Info("Tenant registered",
		zap.String("domain", tenant.Domain),
		zap.String("tenant_id", tenant.ID.String()))

	return s.Login(in.AdminEmail, in.AdminPassword)
}

// Login verifies the credentials, rejects inactive users or tenants, stamps
// the last login, and issues a tenant-bound session credential.
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	users := store.New[model.User](s.db).Preload("Tenant")
	user, err := users.First("email = ?", email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, apperr.Unauthenticated("invalid email or password")
		}
		return nil, apperr.Internal("login failed", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.Unauthenticated("invalid email or password")
	}

	if !user.Active {
		return nil, apperr.Unauthenticated("account is deactivated")
	}
	if !user.Tenant.Active {
		return nil, apperr.Unauthenticated("tenant account is deactivated")
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	if err := store.New[model.User](s.db).Update(user); err != nil {
		s.log.Error("Failed to update last login", zap.Error(err))
		return nil, apperr.Internal("login failed", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.log.Error("Failed to generate token", zap.Error(err))
		return nil, apperr.Internal("login failed", err)
	}
	refresh, err := s.tokens.IssueRefresh()
	if err != nil {
		s.log.Error("Failed to generate refresh token", zap.Error(err))
		return nil, apperr.Internal("login failed", err)
	}

	s.log.Info("User logged in",
		zap.String("email", user.Email),
		zap.String("tenant_id", user.TenantID.String()),
		zap.String("role", string(user.Role)))

	return &AuthResult{
		Token:        token,
		RefreshToken: refresh,
		User:         user,
		ExpiresAt:    time.Now().UTC().Add(s.tokenTTL),
	}, nil
}

// Logout acknowledges without invalidating anything; credentials stay valid
// until natural expiry because no revocation list exists.
func (s *AuthService) Logout(token string) error {
	return nil
}

// RefreshToken is not supported.
func (s *AuthService) RefreshToken(refreshToken string) (*AuthResult, error) {
	return nil, apperr.NotImplemented("refresh token flow is not supported")
}
