package repository

import (
	"context"

	"github.com/workforce-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GoodsRepository определяет интерфейс для работы с каталогом товаров
type GoodsRepository interface {
	Save(ctx context.Context, goods *domain.Goods) error
	FindAll(ctx context.Context) ([]domain.Goods, error)
	FindByBarcode(ctx context.Context, barcode string) ([]domain.Goods, error)
	Delete(ctx context.Context, key domain.GoodsKey) error
	Replace(ctx context.Context, oldKey domain.GoodsKey, goods *domain.Goods) error
	Count(ctx context.Context) (int64, error)
	ExistsByKey(ctx context.Context, key domain.GoodsKey) (bool, error)
}

type goodsRepository struct {
	db *gorm.DB
}

// NewGoodsRepository создаёт новый экземпляр репозитория
func NewGoodsRepository(db *gorm.DB) GoodsRepository {
	return &goodsRepository{db: db}
}

// Save создаёт запись; все колонки входят в ключ, поэтому при коллизии
// обновлять нечего - конфликт молча игнорируется
func (r *goodsRepository) Save(ctx context.Context, goods *domain.Goods) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(goods).Error
}

func (r *goodsRepository) FindAll(ctx context.Context) ([]domain.Goods, error) {
	goods := []domain.Goods{}
	err := r.db.WithContext(ctx).Find(&goods).Error
	return goods, err
}

// FindByBarcode возвращает все записи со штрихкодом в порядке goods_name ASC:
// штрихкод сам по себе не ключ, совпадений может быть несколько
func (r *goodsRepository) FindByBarcode(ctx context.Context, barcode string) ([]domain.Goods, error) {
	goods := []domain.Goods{}
	if barcode == "" {
		return goods, nil
	}
	err := r.db.WithContext(ctx).
		Where("barcode = ?", barcode).
		Order("goods_name ASC").
		Find(&goods).Error
	return goods, err
}

func (r *goodsRepository) Delete(ctx context.Context, key domain.GoodsKey) error {
	if key.Barcode == "" || key.GoodsName == "" {
		return domain.ErrInvalidKey
	}
	result := r.db.WithContext(ctx).
		Where("barcode = ? AND goods_name = ?", key.Barcode, key.GoodsName).
		Delete(&domain.Goods{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrGoodsNotFound
	}
	return nil
}

// Replace заменяет запись новой в одной транзакции: имя товара входит в
// составной ключ, обновление на месте изменило бы идентичность записи
func (r *goodsRepository) Replace(ctx context.Context, oldKey domain.GoodsKey, goods *domain.Goods) error {
	if oldKey.Barcode == "" || oldKey.GoodsName == "" {
		return domain.ErrInvalidKey
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("barcode = ? AND goods_name = ?", oldKey.Barcode, oldKey.GoodsName).
			Delete(&domain.Goods{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrGoodsNotFound
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(goods).Error
	})
}

func (r *goodsRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Goods{}).Count(&count).Error
	return count, err
}

func (r *goodsRepository) ExistsByKey(ctx context.Context, key domain.GoodsKey) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Goods{}).
		Where("barcode = ? AND goods_name = ?", key.Barcode, key.GoodsName).
		Count(&count).Error
	return count > 0, err
}
