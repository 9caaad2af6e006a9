// Package store is the uniform persistence layer. Every entity goes through
// the same type-parameterized store, which applies soft deletion, timestamp
// maintenance, and cascade behavior identically regardless of entity type.
package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scheduler-service/internal/apperr"
)

// Store is a generic CRUD facade over one entity table. Reads never return
// soft-deleted rows; there is no store method that bypasses that filter.
type Store[T any] struct {
	db   *gorm.DB
	unit *UnitOfWork
}

// New returns a store that applies each write immediately, outside any unit
// of work.
func New[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

// Scoped returns a store whose writes all happen inside the given unit of
// work and only take effect when it is saved.
func Scoped[T any](u *UnitOfWork) *Store[T] {
	return &Store[T]{db: u.tx, unit: u}
}

// Preload returns a derived store that eager-loads the named associations on
// subsequent reads.
func (s *Store[T]) Preload(associations ...string) *Store[T] {
	db := s.db
	for _, a := range associations {
		db = db.Preload(a)
	}
	return &Store[T]{db: db, unit: s.unit}
}

// Order returns a derived store that sorts subsequent Find results.
func (s *Store[T]) Order(value string) *Store[T] {
	return &Store[T]{db: s.db.Order(value), unit: s.unit}
}

// GetByID fetches one record by primary key.
func (s *Store[T]) GetByID(id uuid.UUID) (*T, error) {
	var out T
	if err := s.db.First(&out, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("record not found")
		}
		return nil, err
	}
	return &out, nil
}

// First fetches the first record matching the condition.
func (s *Store[T]) First(query any, args ...any) (*T, error) {
	var out T
	if err := s.db.Where(query, args...).First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("record not found")
		}
		return nil, err
	}
	return &out, nil
}

// Find returns all records matching the condition.
func (s *Store[T]) Find(query any, args ...any) ([]T, error) {
	var out []T
	if err := s.db.Where(query, args...).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Exists reports whether any non-deleted record matches the condition.
func (s *Store[T]) Exists(query any, args ...any) (bool, error) {
	var model T
	var count int64
	if err := s.db.Model(&model).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Add persists a new record, assigning its identifier and both timestamps.
func (s *Store[T]) Add(entity *T) error {
	return s.track(s.db.Omit(clause.Associations).Create(entity))
}

// Update overwrites the stored fields and refreshes the update timestamp.
// GORM scopes the statement to non-deleted rows, so an update can never
// revive a soft-deleted record.
func (s *Store[T]) Update(entity *T) error {
	return s.track(s.db.Omit(clause.Associations).Save(entity))
}

// Delete soft-deletes the record together with its direct has-one/has-many
// associations, mirroring the referential cascades of the schema.
func (s *Store[T]) Delete(entity *T) error {
	return s.track(s.db.Select(clause.Associations).Delete(entity))
}

func (s *Store[T]) track(res *gorm.DB) error {
	if s.unit != nil {
		s.unit.affected += res.RowsAffected
	}
	return res.Error
}

// UnitOfWork groups writes into one transaction. Nothing is visible to other
// requests until SaveChanges commits.
type UnitOfWork struct {
	tx       *gorm.DB
	affected int64
	done     bool
}

// Begin opens a unit of work.
func Begin(db *gorm.DB) (*UnitOfWork, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &UnitOfWork{tx: tx}, nil
}

// SaveChanges commits all writes applied through stores scoped to this unit
// and returns the total number of affected records.
func (u *UnitOfWork) SaveChanges() (int64, error) {
	if u.done {
		return 0, gorm.ErrInvalidTransaction
	}
	u.done = true
	if err := u.tx.Commit().Error; err != nil {
		return 0, err
	}
	return u.affected, nil
}

// Rollback abandons the unit. Safe to defer after SaveChanges.
func (u *UnitOfWork) Rollback() {
	if u.done {
		return
	}
	u.done = true
	u.tx.Rollback()
}

// IsDuplicate reports whether err is the store's uniqueness-constraint
// violation, the losing side of a check-then-act race.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
