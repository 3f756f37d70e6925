package repository

import (
	"context"
	"errors"

	"github.com/workforce-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Save(ctx context.Context, emp *domain.Employee) error
	FindByKey(ctx context.Context, key domain.EmployeeKey) (*domain.Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error)
	FindAll(ctx context.Context) ([]domain.Employee, error)
	Delete(ctx context.Context, key domain.EmployeeKey) error
	Count(ctx context.Context) (int64, error)
	ExistsByKey(ctx context.Context, key domain.EmployeeKey) (bool, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// Save выполняет upsert по полному составному ключу
func (r *employeeRepository) Save(ctx context.Context, emp *domain.Employee) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(emp).Error
}

func (r *employeeRepository) FindByKey(ctx context.Context, key domain.EmployeeKey) (*domain.Employee, error) {
	if key.EmployeeID == "" || key.EmployeeName == "" {
		return nil, domain.ErrInvalidKey
	}
	var emp domain.Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND employee_name = ?", key.EmployeeID, key.EmployeeName).
		First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// FindByEmployeeID возвращает первую запись с данным employeeId.
// Схема допускает несколько записей с одним employeeId и разными именами;
// порядок employee_name ASC делает выбор детерминированным.
func (r *employeeRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	if employeeID == "" {
		return nil, domain.ErrInvalidKey
	}
	var employees []domain.Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("employee_name ASC").
		Limit(1).
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, domain.ErrEmployeeNotFound
	}
	return &employees[0], nil
}

func (r *employeeRepository) FindAll(ctx context.Context) ([]domain.Employee, error) {
	employees := []domain.Employee{}
	err := r.db.WithContext(ctx).Find(&employees).Error
	return employees, err
}

// Delete удаляет сотрудника вместе с его явками и заявками в одной транзакции
func (r *employeeRepository) Delete(ctx context.Context, key domain.EmployeeKey) error {
	if key.EmployeeID == "" || key.EmployeeName == "" {
		return domain.ErrInvalidKey
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("employee_id = ? AND employee_name = ?", key.EmployeeID, key.EmployeeName).
			Delete(&domain.Commute{}).Error; err != nil {
			return err
		}
		if err := tx.
			Where("employee_id = ? AND employee_name = ?", key.EmployeeID, key.EmployeeName).
			Delete(&domain.Ordering{}).Error; err != nil {
			return err
		}
		result := tx.
			Where("employee_id = ? AND employee_name = ?", key.EmployeeID, key.EmployeeName).
			Delete(&domain.Employee{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrEmployeeNotFound
		}
		return nil
	})
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).Count(&count).Error
	return count, err
}

func (r *employeeRepository) ExistsByKey(ctx context.Context, key domain.EmployeeKey) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).
		Where("employee_id = ? AND employee_name = ?", key.EmployeeID, key.EmployeeName).
		Count(&count).Error
	return count > 0, err
}
