package model

import "github.com/google/uuid"

// ShiftTemplate is a named, reusable default-shift pattern. It is stored and
// listed per tenant; no lifecycle logic reads the pattern blob.
type ShiftTemplate struct {
	Base
	TenantID      uuid.UUID `json:"tenant_id" gorm:"type:uuid;index;not null"`
	Name          string    `json:"name" gorm:"type:varchar(100);not null"`
	Description   string    `json:"description" gorm:"type:text"`
	DefaultShifts string    `json:"default_shifts" gorm:"type:jsonb;default:'{}'"`
	Active        bool      `json:"active" gorm:"default:true"`

	Tenant Tenant `json:"-" gorm:"foreignKey:TenantID"`
}

func (t *ShiftTemplate) EffectiveTenant() uuid.UUID {
	return t.TenantID
}
