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

// ShiftService governs shift records. Creating or moving a shift always
// revalidates that both the schedule and the employee's user live in the
// caller's tenant; status writes are unguarded overwrites.
type ShiftService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewShiftService(db *gorm.DB, log *zap.Logger) *ShiftService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ShiftService{db: db, log: log}
}

// CreateShiftInput is the shift creation/update payload.
type CreateShiftInput struct {
	ScheduleID uuid.UUID       `json:"schedule_id"`
	EmployeeID uuid.UUID       `json:"employee_id"`
	Date       time.Time       `json:"date"`
	StartTime  string          `json:"start_time"`
	EndTime    string          `json:"end_time"`
	Type       model.ShiftType `json:"type"`
	Notes      string          `json:"notes"`
	Overtime   bool            `json:"overtime"`
}

// validateReferences checks the two mandatory cross-entity preconditions,
// each failing with its own message: the schedule must exist in the caller's
// tenant, and the employee must resolve to a user of the same tenant.
func (s *ShiftService) validateReferences(sc scope.Scope, scheduleID, employeeID uuid.UUID) error {
	schedule, err := store.New[model.Schedule](s.db).GetByID(scheduleID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return apperr.Validation("schedule not found")
		}
		return apperr.Internal("failed to validate shift", err)
	}
	if schedule.TenantID != sc.TenantID {
		return apperr.Validation("schedule does not belong to your organization")
	}

	employee, err := store.New[model.Employee](s.db).Preload("User").GetByID(employeeID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return apperr.Validation("employee not found")
		}
		return apperr.Internal("failed to validate shift", err)
	}
	if employee.User.ID == uuid.Nil {
		return apperr.Validation("employee user data not found")
	}
	if employee.EffectiveTenant() != sc.TenantID {
		return apperr.Validation("employee does not belong to your organization")
	}
	return nil
}

// Create records a new scheduled shift after both references validate.
// The shift's date is not checked against the schedule's week range.
func (s *ShiftService) Create(sc scope.Scope, in CreateShiftInput) (*model.Shift, error) {
	if err := s.validateReferences(sc, in.ScheduleID, in.EmployeeID); err != nil {
		return nil, err
	}

	shift := model.Shift{
		ScheduleID: in.ScheduleID,
		EmployeeID: in.EmployeeID,
		Date:       in.Date.UTC(),
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		Type:       in.Type,
		Status:     model.ShiftScheduled,
		Notes:      in.Notes,
		Overtime:   in.Overtime,
	}

	uow, err := store.Begin(s.db)
	if err != nil {
		return nil, apperr.Internal("failed to create shift", err)
	}
	defer uow.Rollback()

	if err := store.Scoped[model.Shift](uow).Add(&shift); err != nil {
		s.log.Error("Failed to create shift", zap.Error(err))
		return nil, apperr.Internal("failed to create shift", err)
	}
	if _, err := uow.SaveChanges(); err != nil {
		return nil, apperr.Internal("failed to create shift", err)
	}

	s.log.Info("Shift created",
		zap.String("shift_id", shift.ID.String()),
		zap.String("schedule_id", in.ScheduleID.String()),
		zap.String("employee_id", in.EmployeeID.String()))

	return &shift, nil
}

// Get fetches one shift; the tenant is derived through its schedule.
func (s *ShiftService) Get(sc scope.Scope, id uuid.UUID) (*model.Shift, error) {
	shifts := store.New[model.Shift](s.db).Preload("Schedule", "Employee.User")
	shift, err := shifts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := sc.Authorize(shift); err != nil {
		return nil, err
	}
	return shift, nil
}

// ListBySchedule returns the shifts of one schedule, earliest first. The
// schedule itself is tenant-guarded before any shift row is read.
func (s *ShiftService) ListBySchedule(sc scope.Scope, scheduleID uuid.UUID) ([]model.Shift, error) {
	schedule, err := store.New[model.Schedule](s.db).GetByID(scheduleID)
	if err != nil {
		return nil, err
	}
	if err := sc.Authorize(schedule); err != nil {
		return nil, err
	}

	shifts, err := store.New[model.Shift](s.db).
		Preload("Employee.User").
		Order("date, start_time").
		Find("schedule_id = ?", scheduleID)
	if err != nil {
		return nil, apperr.Internal("failed to list shifts", err)
	}
	return shifts, nil
}

// ListCurrentWeek returns the caller tenant's shifts for the running week,
// the fallback listing when no schedule id is given.
func (s *ShiftService) ListCurrentWeek(sc scope.Scope) ([]model.Shift, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7)
	return s.ListByDateRange(sc, weekStart, weekEnd)
}

// ListByDateRange returns the tenant's shifts between two dates, joined
// through schedules so the tenant filter can never be skipped.
func (s *ShiftService) ListByDateRange(sc scope.Scope, from, to time.Time) ([]model.Shift, error) {
	var shifts []model.Shift
	err := s.db.
		Joins("JOIN schedules ON schedules.id = shifts.schedule_id AND schedules.deleted_at IS NULL").
		Where("schedules.tenant_id = ? AND shifts.date >= ? AND shifts.date <= ?", sc.TenantID, from.UTC(), to.UTC()).
		Preload("Employee.User").
		Preload("Schedule").
		Order("shifts.date, shifts.start_time").
		Find(&shifts).Error
	if err != nil {
		return nil, apperr.Internal("failed to list shifts", err)
	}
	return shifts, nil
}

// Update overwrites the planned fields of a shift after revalidating the
// employee reference against the caller's tenant.
func (s *ShiftService) Update(sc scope.Scope, id uuid.UUID, in CreateShiftInput) (*model.Shift, error) {
	shift, err := s.Get(sc, id)
	if err != nil {
		return nil, err
	}

	if err := s.validateReferences(sc, shift.ScheduleID, in.EmployeeID); err != nil {
		return nil, err
	}

	shift.EmployeeID = in.EmployeeID
	shift.Date = in.Date.UTC()
	shift.StartTime = in.StartTime
	shift.EndTime = in.EndTime
	shift.Type = in.Type
	shift.Notes = in.Notes
	shift.Overtime = in.Overtime

	if err := store.New[model.Shift](s.db).Update(shift); err != nil {
		s.log.Error("Failed to update shift", zap.Error(err))
		return nil, apperr.Internal("failed to update shift", err)
	}
	return shift, nil
}

// UpdateStatus sets the shift status directly. Any status may be set from
// any other; no transition table restricts the jump.
func (s *ShiftService) UpdateStatus(sc scope.Scope, id uuid.UUID, status model.ShiftStatus) (*model.Shift, error) {
	shift, err := s.Get(sc, id)
	if err != nil {
		return nil, err
	}

	shift.Status = status
	if err := store.New[model.Shift](s.db).Update(shift); err != nil {
		s.log.Error("Failed to update shift status", zap.Error(err))
		return nil, apperr.Internal("failed to update shift status", err)
	}

	s.log.Info("Shift status updated",
		zap.String("shift_id", shift.ID.String()),
		zap.String("status", string(status)))
	return shift, nil
}

// RecordTimes stores the actual clock-in/out pair, distinct from the
// planned start and end.
func (s *ShiftService) RecordTimes(sc scope.Scope, id uuid.UUID, actualStart, actualEnd *string) (*model.Shift, error) {
	shift, err := s.Get(sc, id)
	if err != nil {
		return nil, err
	}

	if actualStart != nil {
		shift.ActualStart = actualStart
	}
	if actualEnd != nil {
		shift.ActualEnd = actualEnd
	}

	if err := store.New[model.Shift](s.db).Update(shift); err != nil {
		s.log.Error("Failed to record shift times", zap.Error(err))
		return nil, apperr.Internal("failed to record shift times", err)
	}
	return shift, nil
}

// Delete soft-deletes one shift.
func (s *ShiftService) Delete(sc scope.Scope, id uuid.UUID) error {
	shift, err := s.Get(sc, id)
	if err != nil {
		return err
	}

	if err := store.New[model.Shift](s.db).Delete(shift); err != nil {
		s.log.Error("Failed to delete shift", zap.Error(err))
		return apperr.Internal("failed to delete shift", err)
	}
	return nil
}
