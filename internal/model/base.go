package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base holds the columns shared by every persisted entity. Deleting a
// record only sets DeletedAt; GORM excludes flagged rows from all reads,
// so the row stays available for audit through Unscoped queries.
type Base struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate assigns the primary key so the same models work against
// Postgres and the in-memory test database alike.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TenantOwned is implemented by every entity that transitively belongs to a
// tenant. Entities without a tenant column (Employee, Shift) compute it by
// dereferencing their owning relation.
type TenantOwned interface {
	EffectiveTenant() uuid.UUID
}
