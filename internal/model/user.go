package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is the user's role within their tenant
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleManager  UserRole = "manager"
	RoleEmployee UserRole = "employee"
)

// User represents an account bound to a single tenant for its lifetime.
// Email is unique across all tenants.
type User struct {
	Base
	Email       string     `json:"email" gorm:"type:varchar(256);uniqueIndex;not null"`
	Password    string     `json:"-" gorm:"type:varchar(255)"`
	FirstName   string     `json:"first_name" gorm:"type:varchar(50)"`
	LastName    string     `json:"last_name" gorm:"type:varchar(50)"`
	Role        UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'employee'"`
	TenantID    uuid.UUID  `json:"tenant_id" gorm:"type:uuid;index;not null"`
	Active      bool       `json:"active" gorm:"default:true"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	// Relations
	Tenant   Tenant    `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) EffectiveTenant() uuid.UUID {
	return u.TenantID
}
