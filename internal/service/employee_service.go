package service

import (
	"context"
	"strings"

	"github.com/workforce-api/internal/auth"
	"github.com/workforce-api/internal/domain"
	"github.com/workforce-api/internal/dto"
	"github.com/workforce-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*domain.Employee, error)
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	GetAll(ctx context.Context) ([]domain.Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error)
	Update(ctx context.Context, employeeID string, req *dto.UpdateEmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, employeeID string) error
	Count(ctx context.Context) (int64, error)
}

type employeeService struct {
	empRepo repository.EmployeeRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{empRepo: empRepo}
}

// Login находит сотрудника по employeeId и сверяет пароль с bcrypt-хешем
func (s *employeeService) Login(ctx context.Context, req *dto.LoginRequest) (*domain.Employee, error) {
	emp, err := s.empRepo.FindByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !auth.VerifyPassword(req.Password, emp.EmployeePwd) {
		return nil, domain.ErrPasswordMismatch
	}
	return emp, nil
}

// Create регистрирует сотрудника; пароль хешируется до сохранения
func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	hash, err := auth.HashPassword(req.EmployeePwd)
	if err != nil {
		return nil, err
	}

	emp := &domain.Employee{
		EmployeeID:    strings.TrimSpace(req.EmployeeID),
		EmployeeName:  strings.TrimSpace(req.EmployeeName),
		EmployeePwd:   hash,
		PhoneNum:      req.PhoneNum,
		EmployeeType:  req.EmployeeType,
		Address:       req.Address,
		WorkPlaceName: req.WorkPlaceName,
	}

	if err := s.empRepo.Save(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) GetAll(ctx context.Context) ([]domain.Employee, error) {
	return s.empRepo.FindAll(ctx)
}

func (s *employeeService) GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return s.empRepo.FindByEmployeeID(ctx, employeeID)
}

// Update изменяет неключевые поля профиля. Пароль перехешируется только
// если в запросе передан новый непустой, иначе сохранённый хеш не трогается.
func (s *employeeService) Update(ctx context.Context, employeeID string, req *dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	emp, err := s.empRepo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	emp.PhoneNum = req.PhoneNum
	emp.EmployeeType = req.EmployeeType
	emp.Address = req.Address
	emp.WorkPlaceName = req.WorkPlaceName

	if req.EmployeePwd != "" {
		hash, err := auth.HashPassword(req.EmployeePwd)
		if err != nil {
			return nil, err
		}
		emp.EmployeePwd = hash
	}

	if err := s.empRepo.Save(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

// Delete удаляет сотрудника; явки и заявки удаляются каскадно в транзакции
func (s *employeeService) Delete(ctx context.Context, employeeID string) error {
	emp, err := s.empRepo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return err
	}
	return s.empRepo.Delete(ctx, emp.Key())
}

func (s *employeeService) Count(ctx context.Context) (int64, error) {
	return s.empRepo.Count(ctx)
}
