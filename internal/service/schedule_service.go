package service

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"scheduler-service/internal/apperr"
	"scheduler-service/internal/model"
	"scheduler-service/internal/scope"
	"scheduler-service/internal/store"
)

// ScheduleService governs the schedule lifecycle. Schedules always start as
// drafts and only ever move to published; no transition is reversible and
// nothing produces the archived state.
type ScheduleService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewScheduleService(db *gorm.DB, log *zap.Logger) *ScheduleService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScheduleService{db: db, log: log}
}

// CreateScheduleInput is the schedule creation/update payload. Tenant and
// creator are never part of it; they come from the caller's scope.
type CreateScheduleInput struct {
	WeekStart time.Time `json:"week_start"`
	WeekEnd   time.Time `json:"week_end"`
	Notes     string    `json:"notes"`
}

// Create records a new draft schedule for the caller's tenant.
func (s *ScheduleService) Create(sc scope.Scope, in CreateScheduleInput) (*model.Schedule, error) {
	schedule := model.Schedule{
		TenantID:  sc.TenantID,
		WeekStart: in.WeekStart.UTC(),
		WeekEnd:   in.WeekEnd.UTC(),
		CreatedBy: sc.UserID,
		Status:    model.ScheduleDraft,
		Notes:     in.Notes,
	}

	uow, err := store.Begin(s.db)
	if err != nil {
		return nil, apperr.Internal("failed to create schedule", err)
	}
	defer uow.Rollback()

	if err := store.Scoped[model.Schedule](uow).Add(&schedule); err != nil {
		s.log.Error("Failed to create schedule", zap.Error(err))
		return nil, apperr.Internal("failed to create schedule", err)
	}
	if _, err := uow.SaveChanges(); err != nil {
		return nil, apperr.Internal("failed to create schedule", err)
	}

	s.log.Info("Schedule created",
		zap.String("schedule_id", schedule.ID.String()),
		zap.String("tenant_id", sc.TenantID.String()))

	return &schedule, nil
}

// Get fetches one schedule with its shifts, employees and creator loaded.
func (s *ScheduleService) Get(sc scope.Scope, id uuid.UUID) (*model.Schedule, error) {
	schedules := store.New[model.Schedule](s.db).
		Preload("Creator", "Shifts.Employee.User")
	schedule, err := schedules.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := sc.Authorize(schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// List returns the caller tenant's schedules, newest week first. The tenant
// filter is implicit and mandatory; there is no unfiltered path.
func (s *ScheduleService) List(sc scope.Scope) ([]model.Schedule, error) {
	schedules, err := store.New[model.Schedule](s.db).
		Preload("Creator", "Shifts.Employee.User").
		Order("week_start DESC").
		Find("tenant_id = ?", sc.TenantID)
	if err != nil {
		return nil, apperr.Internal("failed to list schedules", err)
	}
	return schedules, nil
}

// Update overwrites the week range and notes of a schedule.
func (s *ScheduleService) Update(sc scope.Scope, id uuid.UUID, in CreateScheduleInput) (*model.Schedule, error) {
	schedules := store.New[model.Schedule](s.db)
	schedule, err := schedules.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := sc.Authorize(schedule); err != nil {
		return nil, err
	}

	schedule.WeekStart = in.WeekStart.UTC()
	schedule.WeekEnd = in.WeekEnd.UTC()
	schedule.Notes = in.Notes

	if err := schedules.Update(schedule); err != nil {
		s.log.Error("Failed to update schedule", zap.Error(err))
		return nil, apperr.Internal("failed to update schedule", err)
	}
	return schedule, nil
}

// Publish moves the schedule to published. The write is a plain overwrite:
// publishing an already-published schedule succeeds and leaves it published.
func (s *ScheduleService) Publish(sc scope.Scope, id uuid.UUID) (*model.Schedule, error) {
	schedules := store.New[model.Schedule](s.db)
	schedule, err := schedules.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := sc.Authorize(schedule); err != nil {
		return nil, err
	}

	schedule.Status = model.SchedulePublished
	if err := schedules.Update(schedule); err != nil {
		s.log.Error("Failed to publish schedule", zap.Error(err))
		return nil, apperr.Internal("failed to publish schedule", err)
	}

	s.log.Info("Schedule published", zap.String("schedule_id", schedule.ID.String()))
	return schedule, nil
}

// Delete soft-deletes the schedule; its shifts go with it.
func (s *ScheduleService) Delete(sc scope.Scope, id uuid.UUID) error {
	schedules := store.New[model.Schedule](s.db)
	schedule, err := schedules.GetByID(id)
	if err != nil {
		return err
	}
	if err := sc.Authorize(schedule); err != nil {
		return err
	}

	if err := schedules.Delete(schedule); err != nil {
		s.log.Error("Failed to delete schedule", zap.Error(err))
		return apperr.Internal("failed to delete schedule", err)
	}
	return nil
}
