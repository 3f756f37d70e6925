package service

import (
	"context"

	"github.com/workforce-api/internal/domain"
	"github.com/workforce-api/internal/dto"
	"github.com/workforce-api/internal/repository"
)

// GoodsService определяет интерфейс бизнес-логики каталога товаров
type GoodsService interface {
	Create(ctx context.Context, req *dto.CreateGoodsRequest) (*domain.Goods, error)
	GetAll(ctx context.Context) ([]domain.Goods, error)
	UpdateByBarcode(ctx context.Context, barcode string, req *dto.UpdateGoodsRequest) (*domain.Goods, error)
	DeleteByBarcode(ctx context.Context, barcode string) error
	Count(ctx context.Context) (int64, error)
}

type goodsService struct {
	goodsRepo repository.GoodsRepository
}

// NewGoodsService создаёт новый экземпляр сервиса
func NewGoodsService(goodsRepo repository.GoodsRepository) GoodsService {
	return &goodsService{goodsRepo: goodsRepo}
}

func (s *goodsService) Create(ctx context.Context, req *dto.CreateGoodsRequest) (*domain.Goods, error) {
	goods := &domain.Goods{
		Barcode:   req.Barcode,
		GoodsName: req.GoodsName,
	}
	if err := s.goodsRepo.Save(ctx, goods); err != nil {
		return nil, err
	}
	return goods, nil
}

func (s *goodsService) GetAll(ctx context.Context) ([]domain.Goods, error) {
	return s.goodsRepo.FindAll(ctx)
}

// UpdateByBarcode переименовывает первый товар с данным штрихкодом.
// Штрихкод не уникален, политика выбора - первая запись в порядке goods_name.
func (s *goodsService) UpdateByBarcode(ctx context.Context, barcode string, req *dto.UpdateGoodsRequest) (*domain.Goods, error) {
	if barcode == "" {
		return nil, domain.ErrInvalidKey
	}
	matches, err := s.goodsRepo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, domain.ErrGoodsNotFound
	}

	updated := &domain.Goods{
		Barcode:   barcode,
		GoodsName: req.GoodsName,
	}
	if err := s.goodsRepo.Replace(ctx, matches[0].Key(), updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteByBarcode удаляет первый товар с данным штрихкодом, политика та же
func (s *goodsService) DeleteByBarcode(ctx context.Context, barcode string) error {
	if barcode == "" {
		return domain.ErrInvalidKey
	}
	matches, err := s.goodsRepo.FindByBarcode(ctx, barcode)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return domain.ErrGoodsNotFound
	}
	return s.goodsRepo.Delete(ctx, matches[0].Key())
}

func (s *goodsService) Count(ctx context.Context) (int64, error) {
	return s.goodsRepo.Count(ctx)
}
