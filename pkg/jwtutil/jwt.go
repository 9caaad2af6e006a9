package jwtutil

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"scheduler-service/internal/model"
	"scheduler-service/pkg/config"
)

// UserClaims represents the JWT claims for an authenticated user. The token
// binds the session to one tenant; every later request derives its tenant
// scope from these claims, never from client-supplied input.
type UserClaims struct {
	Email    string `json:"email"`
	UserID   string `json:"user_id"`
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and validates session credentials.
type Issuer struct {
	key    []byte
	expiry time.Duration
}

// New creates an issuer from the JWT configuration.
func New(cfg *config.JWTConfig) *Issuer {
	return &Issuer{
		key:    []byte(cfg.SigningKey),
		expiry: cfg.Expiry(),
	}
}

// Issue creates a signed token carrying the user's identity and tenant.
func (i *Issuer) Issue(user *model.User) (string, error) {
	claims := UserClaims{
		Email:    user.Email,
		UserID:   user.ID.String(),
		TenantID: user.TenantID.String(),
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.key)
}

// IssueRefresh returns an opaque refresh credential. The refresh flow itself
// is not implemented; the credential is issued for the response contract only.
func (i *Issuer) IssueRefresh() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Validate parses and verifies a token string.
func (i *Issuer) Validate(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return i.key, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
