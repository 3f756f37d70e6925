package service

import (
	"context"

	"github.com/workforce-api/internal/domain"
	"github.com/workforce-api/internal/dto"
	"github.com/workforce-api/internal/repository"
)

// WorkPlaceService определяет интерфейс бизнес-логики рабочих точек
type WorkPlaceService interface {
	Save(ctx context.Context, req *dto.SaveWorkPlaceRequest) (*domain.WorkPlace, error)
	GetAll(ctx context.Context) ([]domain.WorkPlace, error)
	GetByName(ctx context.Context, name string) (*domain.WorkPlace, error)
}

type workPlaceService struct {
	workPlaceRepo repository.WorkPlaceRepository
}

// NewWorkPlaceService создаёт новый экземпляр сервиса
func NewWorkPlaceService(workPlaceRepo repository.WorkPlaceRepository) WorkPlaceService {
	return &workPlaceService{workPlaceRepo: workPlaceRepo}
}

// Save создаёт точку либо перезаписывает координаты существующей
func (s *workPlaceService) Save(ctx context.Context, req *dto.SaveWorkPlaceRequest) (*domain.WorkPlace, error) {
	workPlace := &domain.WorkPlace{
		WorkPlaceName: req.WorkPlaceName,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	}
	if err := s.workPlaceRepo.Save(ctx, workPlace); err != nil {
		return nil, err
	}
	return workPlace, nil
}

func (s *workPlaceService) GetAll(ctx context.Context) ([]domain.WorkPlace, error) {
	return s.workPlaceRepo.FindAll(ctx)
}

func (s *workPlaceService) GetByName(ctx context.Context, name string) (*domain.WorkPlace, error) {
	return s.workPlaceRepo.FindByName(ctx, name)
}
