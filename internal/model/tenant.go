package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionTier is the tenant's subscription level
type SubscriptionTier string

const (
	SubscriptionFree    SubscriptionTier = "free"
	SubscriptionBasic   SubscriptionTier = "basic"
	SubscriptionPremium SubscriptionTier = "premium"
)

// Tenant represents an isolated organization. All other records belong to
// exactly one tenant, directly or through an owning relation.
type Tenant struct {
	Base
	Name               string           `json:"name" gorm:"type:varchar(100);not null"`
	Domain             string           `json:"domain" gorm:"type:varchar(100);uniqueIndex;not null"`
	Subscription       SubscriptionTier `json:"subscription" gorm:"type:varchar(20);default:'free'"`
	TimeZone           string           `json:"time_zone" gorm:"type:varchar(50);default:'UTC'"`
	Locale             string           `json:"locale" gorm:"type:varchar(10);default:'en-US'"`
	Settings           string           `json:"settings" gorm:"type:jsonb;default:'{}'"`
	Active             bool             `json:"active" gorm:"default:true"`
	SubscriptionExpiry *time.Time       `json:"subscription_expiry,omitempty"`

	// Relations
	Users          []User          `json:"users,omitempty" gorm:"foreignKey:TenantID"`
	Schedules      []Schedule      `json:"schedules,omitempty" gorm:"foreignKey:TenantID"`
	ShiftTemplates []ShiftTemplate `json:"shift_templates,omitempty" gorm:"foreignKey:TenantID"`
}

func (t *Tenant) EffectiveTenant() uuid.UUID {
	return t.ID
}
