package service

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"scheduler-service/internal/apperr"
	"scheduler-service/internal/model"
	"scheduler-service/internal/scope"
	"scheduler-service/internal/store"
)

// ShiftTemplateService is plain tenant-scoped storage for reusable shift
// patterns; no lifecycle logic reads the pattern blob.
type ShiftTemplateService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewShiftTemplateService(db *gorm.DB, log *zap.Logger) *ShiftTemplateService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ShiftTemplateService{db: db, log: log}
}

// CreateTemplateInput is the template creation/update payload.
type CreateTemplateInput struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	DefaultShifts string `json:"default_shifts"`
	Active        *bool  `json:"active,omitempty"`
}

func (s *ShiftTemplateService) Create(sc scope.Scope, in CreateTemplateInput) (*model.ShiftTemplate, error) {
	if in.Name == "" {
		return nil, apperr.Validation("name is required")
	}

	defaults := in.DefaultShifts
	if defaults == "" {
		defaults = "{}"
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}

	template := model.ShiftTemplate{
		TenantID:      sc.TenantID,
		Name:          in.Name,
		Description:   in.Description,
		DefaultShifts: defaults,
		Active:        active,
	}
	if err := store.New[model.ShiftTemplate](s.db).Add(&template); err != nil {
		s.log.Error("Failed to create shift template", zap.Error(err))
		return nil, apperr.Internal("failed to create shift template", err)
	}
	return &template, nil
}

func (s *ShiftTemplateService) Get(sc scope.Scope, id uuid.UUID) (*model.ShiftTemplate, error) {
	template, err := store.New[model.ShiftTemplate](s.db).GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := sc.Authorize(template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *ShiftTemplateService) List(sc scope.Scope) ([]model.ShiftTemplate, error) {
	templates, err := store.New[model.ShiftTemplate](s.db).
		Order("name").
		Find("tenant_id = ?", sc.TenantID)
	if err != nil {
		return nil, apperr.Internal("failed to list shift templates", err)
	}
	return templates, nil
}

func (s *ShiftTemplateService) Update(sc scope.Scope, id uuid.UUID, in CreateTemplateInput) (*model.ShiftTemplate, error) {
	template, err := s.Get(sc, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		template.Name = in.Name
	}
	template.Description = in.Description
	if in.DefaultShifts != "" {
		template.DefaultShifts = in.DefaultShifts
	}
	if in.Active != nil {
		template.Active = *in.Active
	}

	if err := store.New[model.ShiftTemplate](s.db).Update(template); err != nil {
		s.log.Error("Failed to update shift template", zap.Error(err))
		return nil, apperr.Internal("failed to update shift template", err)
	}
	return template, nil
}

func (s *ShiftTemplateService) Delete(sc scope.Scope, id uuid.UUID) error {
	template, err := s.Get(sc, id)
	if err != nil {
		return err
	}
	if err := store.New[model.ShiftTemplate](s.db).Delete(template); err != nil {
		s.log.Error("Failed to delete shift template", zap.Error(err))
		return apperr.Internal("failed to delete shift template", err)
	}
	return nil
}
