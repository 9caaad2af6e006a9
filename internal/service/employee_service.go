package service

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"scheduler-service/internal/apperr"
	"scheduler-service/internal/model"
	"scheduler-service/internal/scope"
	"scheduler-service/internal/store"
)

// tempPassword is assigned to newly created employee accounts until the
// employee logs in and changes it.
const tempPassword = "TempPassword123!"

// EmployeeService manages the user+employee pair. The employee record has no
// tenant column; every guard goes through the linked user.
type EmployeeService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewEmployeeService(db *gorm.DB, log *zap.Logger) *EmployeeService {
	if log == nil {
		log = zap.NewNop()
	}
	return &EmployeeService{db: db, log: log}
}

// CreateEmployeeInput is the employee creation/update payload.
type CreateEmployeeInput struct {
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	Email        string         `json:"email"`
	EmployeeCode string         `json:"employee_code"`
	Department   string         `json:"department"`
	Position     string         `json:"position"`
	HireDate     time.Time      `json:"hire_date"`
	PhoneNumber  string         `json:"phone_number"`
	Address      string         `json:"address"`
	Role         model.UserRole `json:"role"`
}

// Create makes the user account and its employee extension in one unit of
// work; neither exists without the other.
func (s *EmployeeService) Create(sc scope.Scope, in CreateEmployeeInput) (*model.Employee, error) {
	if in.Email == "" || in.EmployeeCode == "" {
		return nil, apperr.Validation("email and employee code are required")
	}

	users := store.New[model.User](s.db)
	exists, err := users.Exists("email = ?", in.Email)
	if err != nil {
		return nil, apperr.Internal("failed to create employee", err)
	}
	if exists {
		return nil, apperr.Validation("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("failed to create employee", err)
	}

	role := in.Role
	if role == "" {
		role = model.RoleEmployee
	}

	uow, err := store.Begin(s.db)
	if err != nil {
		return nil, apperr.Internal("failed to create employee", err)
	}
	defer uow.Rollback()

	user := model.User{
		Email:     in.Email,
		Password:  string(hash),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      role,
		TenantID:  sc.TenantID,
		Active:    true,
	}
	if err := store.Scoped[model.User](uow).Add(&user); err != nil {
		if store.IsDuplicate(err) {
			return nil, apperr.Conflict("email already exists")
		}
		s.log.Error("Failed to create employee user", zap.Error(err))
		return nil, apperr.Internal("failed to create employee", err)
	}

	employee := model.Employee{
		UserID:       user.ID,
		EmployeeCode: in.EmployeeCode,
		Department:   in.Department,
		Position:     in.Position,
		HireDate:     in.HireDate.UTC(),
		PhoneNumber:  in.PhoneNumber,
		Address:      in.Address,
	}
	if err := store.Scoped[model.Employee](uow).Add(&employee); err != nil {
		s.log.Error("Failed to create employee", zap.Error(err))
		return nil, apperr.Internal("failed to create employee", err)
	}

	if _, err := uow.SaveChanges(); err != nil {
		return nil, apperr.Internal("failed to create employee", err)
	}

	employee.User = user

	s.log.Info("Employee created",
		zap.String("employee_id", employee.ID.String()),
		zap.String("employee_code", employee.EmployeeCode),
		zap.String("tenant_id", sc.TenantID.String()))

	return &employee, nil
}

// Get fetches one employee with its user loaded for the tenant guard.
func (s *EmployeeService) Get(sc scope.Scope, id uuid.UUID) (*model.Employee, error) {
	employees := store.New[model.Employee](s.db).Preload("User")
	employee, err := employees.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := sc.Authorize(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// List returns the caller tenant's employees, joined through users because
// the employee row itself carries no tenant.
func (s *EmployeeService) List(sc scope.Scope) ([]model.Employee, error) {
	var employees []model.Employee
	err := s.db.
		Joins("JOIN users ON users.id = employees.user_id AND users.deleted_at IS NULL").
		Where("users.tenant_id = ?", sc.TenantID).
		Preload("User").
		Find(&employees).Error
	if err != nil {
		return nil, apperr.Internal("failed to list employees", err)
	}
	return employees, nil
}

// Update mutates both the employee record and its linked user.
func (s *EmployeeService) Update(sc scope.Scope, id uuid.UUID, in CreateEmployeeInput) (*model.Employee, error) {
	employee, err := s.Get(sc, id)
	if err != nil {
		return nil, err
	}

	employee.EmployeeCode = in.EmployeeCode
	employee.Department = in.Department
	employee.Position = in.Position
	employee.HireDate = in.HireDate.UTC()
	employee.PhoneNumber = in.PhoneNumber
	employee.Address = in.Address

	user := employee.User
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.Email = in.Email
	if in.Role != "" {
		user.Role = in.Role
	}

	uow, err := store.Begin(s.db)
	if err != nil {
		return nil, apperr.Internal("failed to update employee", err)
	}
	defer uow.Rollback()

	if err := store.Scoped[model.Employee](uow).Update(employee); err != nil {
		s.log.Error("Failed to update employee", zap.Error(err))
		return nil, apperr.Internal("failed to update employee", err)
	}
	if err := store.Scoped[model.User](uow).Update(&user); err != nil {
		if store.IsDuplicate(err) {
			return nil, apperr.Conflict("email already exists")
		}
		s.log.Error("Failed to update employee user", zap.Error(err))
		return nil, apperr.Internal("failed to update employee", err)
	}
	if _, err := uow.SaveChanges(); err != nil {
		return nil, apperr.Internal("failed to update employee", err)
	}

	employee.User = user
	return employee, nil
}

// Delete soft-deletes the employee; its shifts go with it and stop showing
// up in any read.
func (s *EmployeeService) Delete(sc scope.Scope, id uuid.UUID) error {
	employee, err := s.Get(sc, id)
	if err != nil {
		return err
	}

	if err := store.New[model.Employee](s.db).Delete(employee); err != nil {
		s.log.Error("Failed to delete employee", zap.Error(err))
		return apperr.Internal("failed to delete employee", err)
	}
	return nil
}
