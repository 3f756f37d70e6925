package service

import (
	"context"
	"fmt"
	"time"

	"github.com/workforce-api/internal/domain"
	"github.com/workforce-api/internal/dto"
	"github.com/workforce-api/internal/repository"
)

// CommuteService определяет интерфейс бизнес-логики учёта явок
type CommuteService interface {
	ClockIn(ctx context.Context, req *dto.ClockInRequest) (*domain.Commute, error)
	ClockOut(ctx context.Context, req *dto.ClockOutRequest) (*domain.Commute, error)
	Today(ctx context.Context, employeeID string) (*domain.Commute, error)
	Monthly(ctx context.Context, employeeID string, year, month int) ([]domain.Commute, error)
	Recent(ctx context.Context, employeeID, employeeName string) (*domain.Commute, error)
}

type commuteService struct {
	commuteRepo repository.CommuteRepository
}

// NewCommuteService создаёт новый экземпляр сервиса
func NewCommuteService(commuteRepo repository.CommuteRepository) CommuteService {
	return &commuteService{commuteRepo: commuteRepo}
}

// ClockIn создаёт явку с временем прихода; повторная отметка за тот же день
// перезаписывает существующую запись по коллизии ключа
func (s *commuteService) ClockIn(ctx context.Context, req *dto.ClockInRequest) (*domain.Commute, error) {
	day, err := domain.ParseDate(req.CommuteDay)
	if err != nil {
		return nil, fmt.Errorf("%w: commuteDay %q", domain.ErrInvalidKey, req.CommuteDay)
	}
	startTime, err := domain.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime %q", domain.ErrInvalidKey, req.StartTime)
	}

	commute := &domain.Commute{
		CommuteDay:    day,
		EmployeeID:    req.EmployeeID,
		EmployeeName:  req.EmployeeName,
		StartTime:     &startTime,
		WorkPlaceName: req.WorkPlaceName,
	}

	if err := s.commuteRepo.Save(ctx, commute); err != nil {
		return nil, err
	}

	return commute, nil
}

// ClockOut закрывает сегодняшнюю явку; день берётся из текущей даты сервера,
// без открытой явки за сегодня запись не создаётся
func (s *commuteService) ClockOut(ctx context.Context, req *dto.ClockOutRequest) (*domain.Commute, error) {
	endTime, err := domain.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime %q", domain.ErrInvalidKey, req.EndTime)
	}

	commutes, err := s.commuteRepo.FindByEmployeeIDAndDay(ctx, req.EmployeeID, domain.Today())
	if err != nil {
		return nil, err
	}
	if len(commutes) == 0 {
		return nil, domain.ErrCommuteNotFound
	}

	commute := commutes[0]
	commute.EndTime = &endTime

	if err := s.commuteRepo.Save(ctx, &commute); err != nil {
		return nil, err
	}

	return &commute, nil
}

func (s *commuteService) Today(ctx context.Context, employeeID string) (*domain.Commute, error) {
	if employeeID == "" {
		return nil, domain.ErrInvalidKey
	}
	commutes, err := s.commuteRepo.FindByEmployeeIDAndDay(ctx, employeeID, domain.Today())
	if err != nil {
		return nil, err
	}
	if len(commutes) == 0 {
		return nil, domain.ErrCommuteNotFound
	}
	return &commutes[0], nil
}

// Monthly возвращает явки за календарный месяц, границы включительно
func (s *commuteService) Monthly(ctx context.Context, employeeID string, year, month int) ([]domain.Commute, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d", domain.ErrInvalidKey, month)
	}
	start := domain.NewDate(year, time.Month(month), 1)
	end := domain.NewDate(year, time.Month(month)+1, 1).AddDays(-1)
	return s.commuteRepo.FindByEmployeeIDAndDayRange(ctx, employeeID, start, end)
}

func (s *commuteService) Recent(ctx context.Context, employeeID, employeeName string) (*domain.Commute, error) {
	return s.commuteRepo.FindMostRecent(ctx, employeeID, employeeName)
}
