package model

import (
	"time"

	"github.com/google/uuid"
)

// ShiftType is the planned slot of the day
type ShiftType string

const (
	ShiftMorning   ShiftType = "morning"
	ShiftAfternoon ShiftType = "afternoon"
	ShiftEvening   ShiftType = "evening"
	ShiftNight     ShiftType = "night"
)

// ShiftStatus is the shift lifecycle state. Status writes are direct
// overwrites; no transition table restricts which state may follow which.
type ShiftStatus string

const (
	ShiftScheduled  ShiftStatus = "scheduled"
	ShiftInProgress ShiftStatus = "in_progress"
	ShiftCompleted  ShiftStatus = "completed"
	ShiftCancelled  ShiftStatus = "cancelled"
	ShiftNoShow     ShiftStatus = "no_show"
)

// Shift assigns one employee to one schedule slot. Planned times are
// distinct from the recorded clock-in/out pair.
type Shift struct {
	Base
	ScheduleID  uuid.UUID   `json:"schedule_id" gorm:"type:uuid;index;not null"`
	EmployeeID  uuid.UUID   `json:"employee_id" gorm:"type:uuid;index;not null"`
	Date        time.Time   `json:"date"`
	StartTime   string      `json:"start_time" gorm:"type:varchar(8)"`
	EndTime     string      `json:"end_time" gorm:"type:varchar(8)"`
	Type        ShiftType   `json:"type" gorm:"type:varchar(20);not null"`
	Status      ShiftStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled'"`
	Notes       string      `json:"notes" gorm:"type:text"`
	Overtime    bool        `json:"overtime" gorm:"default:false"`
	ActualStart *string     `json:"actual_start,omitempty" gorm:"type:varchar(8)"`
	ActualEnd   *string     `json:"actual_end,omitempty" gorm:"type:varchar(8)"`

	// Relations
	Schedule Schedule `json:"-" gorm:"foreignKey:ScheduleID"`
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// EffectiveTenant dereferences the preloaded Schedule. It returns uuid.Nil
// when the relation was not loaded, which never matches a caller's tenant.
func (s *Shift) EffectiveTenant() uuid.UUID {
	return s.Schedule.TenantID
}
