package repository

import (
	"context"
	"errors"

	"github.com/workforce-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WorkPlaceRepository определяет интерфейс для работы с рабочими точками
type WorkPlaceRepository interface {
	Save(ctx context.Context, workPlace *domain.WorkPlace) error
	FindByName(ctx context.Context, name string) (*domain.WorkPlace, error)
	FindAll(ctx context.Context) ([]domain.WorkPlace, error)
	Count(ctx context.Context) (int64, error)
}

type workPlaceRepository struct {
	db *gorm.DB
}

// NewWorkPlaceRepository создаёт новый экземпляр репозитория
func NewWorkPlaceRepository(db *gorm.DB) WorkPlaceRepository {
	return &workPlaceRepository{db: db}
}

// Save выполняет upsert по имени: существующая точка получает новые координаты
func (r *workPlaceRepository) Save(ctx context.Context, workPlace *domain.WorkPlace) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(workPlace).Error
}

func (r *workPlaceRepository) FindByName(ctx context.Context, name string) (*domain.WorkPlace, error) {
	if name == "" {
		return nil, domain.ErrInvalidKey
	}
	var workPlace domain.WorkPlace
	err := r.db.WithContext(ctx).
		Where("work_place_name = ?", name).
		First(&workPlace).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWorkPlaceNotFound
		}
		return nil, err
	}
	return &workPlace, nil
}

func (r *workPlaceRepository) FindAll(ctx context.Context) ([]domain.WorkPlace, error) {
	workPlaces := []domain.WorkPlace{}
	err := r.db.WithContext(ctx).Find(&workPlaces).Error
	return workPlaces, err
}

func (r *workPlaceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.WorkPlace{}).Count(&count).Error
	return count, err
}
