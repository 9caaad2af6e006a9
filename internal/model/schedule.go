package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleStatus is the schedule lifecycle state. Archived is defined but no
// operation produces it; schedules only move from draft to published.
type ScheduleStatus string

const (
	ScheduleDraft     ScheduleStatus = "draft"
	SchedulePublished ScheduleStatus = "published"
	ScheduleArchived  ScheduleStatus = "archived"
)

// Schedule is a tenant's weekly shift plan.
type Schedule struct {
	Base
	TenantID  uuid.UUID      `json:"tenant_id" gorm:"type:uuid;index;not null"`
	WeekStart time.Time      `json:"week_start"`
	WeekEnd   time.Time      `json:"week_end"`
	CreatedBy uuid.UUID      `json:"created_by" gorm:"type:uuid;not null"`
	Status    ScheduleStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft'"`
	Notes     string         `json:"notes" gorm:"type:text"`

	// Relations
	Tenant  Tenant  `json:"-" gorm:"foreignKey:TenantID"`
	Creator User    `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	Shifts  []Shift `json:"shifts,omitempty" gorm:"foreignKey:ScheduleID"`
}

func (s *Schedule) EffectiveTenant() uuid.UUID {
	return s.TenantID
}
