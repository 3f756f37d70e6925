package repository

import (
	"context"

	"github.com/workforce-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommuteRepository определяет интерфейс для работы с явками
type CommuteRepository interface {
	Save(ctx context.Context, commute *domain.Commute) error
	FindByEmployeeIDAndDay(ctx context.Context, employeeID string, day domain.Date) ([]domain.Commute, error)
	FindByEmployeeIDAndDayRange(ctx context.Context, employeeID string, start, end domain.Date) ([]domain.Commute, error)
	FindMostRecent(ctx context.Context, employeeID, employeeName string) (*domain.Commute, error)
}

type commuteRepository struct {
	db *gorm.DB
}

// NewCommuteRepository создаёт новый экземпляр репозитория
func NewCommuteRepository(db *gorm.DB) CommuteRepository {
	return &commuteRepository{db: db}
}

// Save выполняет upsert: повторная отметка за тот же день перезаписывает запись
func (r *commuteRepository) Save(ctx context.Context, commute *domain.Commute) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(commute).Error
}

func (r *commuteRepository) FindByEmployeeIDAndDay(ctx context.Context, employeeID string, day domain.Date) ([]domain.Commute, error) {
	commutes := []domain.Commute{}
	if employeeID == "" || day.IsZero() {
		return commutes, nil
	}
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND commute_day = ?", employeeID, day).
		Find(&commutes).Error
	return commutes, err
}

// FindByEmployeeIDAndDayRange возвращает явки за период, границы включительно
func (r *commuteRepository) FindByEmployeeIDAndDayRange(ctx context.Context, employeeID string, start, end domain.Date) ([]domain.Commute, error) {
	commutes := []domain.Commute{}
	if employeeID == "" {
		return commutes, nil
	}
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND commute_day BETWEEN ? AND ?", employeeID, start, end).
		Find(&commutes).Error
	return commutes, err
}

// FindMostRecent возвращает последнюю явку: по дню, затем по времени прихода
func (r *commuteRepository) FindMostRecent(ctx context.Context, employeeID, employeeName string) (*domain.Commute, error) {
	if employeeID == "" || employeeName == "" {
		return nil, domain.ErrInvalidKey
	}
	var commutes []domain.Commute
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND employee_name = ?", employeeID, employeeName).
		Order("commute_day DESC, start_time DESC").
		Limit(1).
		Find(&commutes).Error
	if err != nil {
		return nil, err
	}
	if len(commutes) == 0 {
		return nil, domain.ErrCommuteNotFound
	}
	return &commutes[0], nil
}
