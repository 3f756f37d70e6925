package repository

import (
	"context"

	"github.com/workforce-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderingRepository определяет интерфейс для работы с заявками
type OrderingRepository interface {
	Save(ctx context.Context, order *domain.Ordering) error
	FindByEmployeeID(ctx context.Context, employeeID string) ([]domain.Ordering, error)
	FindByEmployeeIDOrderByDayDesc(ctx context.Context, employeeID string) ([]domain.Ordering, error)
	FindByEmployeeIDAndDay(ctx context.Context, employeeID string, day domain.Date) ([]domain.Ordering, error)
	DeleteByEmployeeIDAndDay(ctx context.Context, employeeID string, day domain.Date) error
}

type orderingRepository struct {
	db *gorm.DB
}

// NewOrderingRepository создаёт новый экземпляр репозитория
func NewOrderingRepository(db *gorm.DB) OrderingRepository {
	return &orderingRepository{db: db}
}

// Save выполняет upsert: повторная заявка на тот же штрихкод в тот же день
// перезаписывает существующую
func (r *orderingRepository) Save(ctx context.Context, order *domain.Ordering) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(order).Error
}

func (r *orderingRepository) FindByEmployeeID(ctx context.Context, employeeID string) ([]domain.Ordering, error) {
	orders := []domain.Ordering{}
	if employeeID == "" {
		return orders, nil
	}
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Find(&orders).Error
	return orders, err
}

func (r *orderingRepository) FindByEmployeeIDOrderByDayDesc(ctx context.Context, employeeID string) ([]domain.Ordering, error) {
	orders := []domain.Ordering{}
	if employeeID == "" {
		return orders, nil
	}
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("ordering_day DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderingRepository) FindByEmployeeIDAndDay(ctx context.Context, employeeID string, day domain.Date) ([]domain.Ordering, error) {
	orders := []domain.Ordering{}
	if employeeID == "" || day.IsZero() {
		return orders, nil
	}
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND ordering_day = ?", employeeID, day).
		Find(&orders).Error
	return orders, err
}

// DeleteByEmployeeIDAndDay атомарно удаляет все заявки сотрудника за день;
// отсутствие совпадений не является ошибкой
func (r *orderingRepository) DeleteByEmployeeIDAndDay(ctx context.Context, employeeID string, day domain.Date) error {
	if employeeID == "" || day.IsZero() {
		return domain.ErrInvalidKey
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.
			Where("employee_id = ? AND ordering_day = ?", employeeID, day).
			Delete(&domain.Ordering{}).Error
	})
}
