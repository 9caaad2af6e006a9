package model

import (
	"time"

	"github.com/google/uuid"
)

// Employee is the one-to-one workforce extension of a User. It carries no
// tenant column of its own; the tenant is always the linked User's.
type Employee struct {
	Base
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	EmployeeCode string    `json:"employee_code" gorm:"type:varchar(20);not null"`
	Department   string    `json:"department" gorm:"type:varchar(100)"`
	Position     string    `json:"position" gorm:"type:varchar(100)"`
	HireDate     time.Time `json:"hire_date"`
	PhoneNumber  string    `json:"phone_number" gorm:"type:varchar(20)"`
	Address      string    `json:"address" gorm:"type:text"`

	// Relations
	User   User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Shifts []Shift `json:"shifts,omitempty" gorm:"foreignKey:EmployeeID"`
}

// EffectiveTenant dereferences the preloaded User. It returns uuid.Nil when
// the relation was not loaded, which never matches a caller's tenant.
func (e *Employee) EffectiveTenant() uuid.UUID {
	return e.User.TenantID
}
