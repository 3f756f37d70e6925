package service

import (
	"context"
	"fmt"

	"github.com/workforce-api/internal/domain"
	"github.com/workforce-api/internal/dto"
	"github.com/workforce-api/internal/repository"
)

// OrderingService определяет интерфейс бизнес-логики заявок на товары
type OrderingService interface {
	Create(ctx context.Context, req *dto.CreateOrderRequest) (*domain.Ordering, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]domain.Ordering, error)
	GetByEmployeeIDAndDate(ctx context.Context, employeeID, date string) ([]domain.Ordering, error)
	DeleteToday(ctx context.Context, employeeID string) error
}

type orderingService struct {
	orderRepo repository.OrderingRepository
}

// NewOrderingService создаёт новый экземпляр сервиса
func NewOrderingService(orderRepo repository.OrderingRepository) OrderingService {
	return &orderingService{orderRepo: orderRepo}
}

// Create сохраняет заявку. День заявки назначается на границе: всегда текущая
// дата сервера, клиентской дате доверия нет и в запросе её попросту нет.
func (s *orderingService) Create(ctx context.Context, req *dto.CreateOrderRequest) (*domain.Ordering, error) {
	order := &domain.Ordering{
		OrderingDay:  domain.Today(),
		EmployeeID:   req.EmployeeID,
		Barcode:      req.Barcode,
		EmployeeName: req.EmployeeName,
		BoxNum:       req.BoxNum,
		GoodsName:    req.GoodsName,
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// GetByEmployeeID возвращает заявки сотрудника от новых к старым
func (s *orderingService) GetByEmployeeID(ctx context.Context, employeeID string) ([]domain.Ordering, error) {
	return s.orderRepo.FindByEmployeeIDOrderByDayDesc(ctx, employeeID)
}

func (s *orderingService) GetByEmployeeIDAndDate(ctx context.Context, employeeID, date string) ([]domain.Ordering, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q", domain.ErrInvalidKey, date)
	}
	return s.orderRepo.FindByEmployeeIDAndDay(ctx, employeeID, day)
}

// DeleteToday удаляет заявки сотрудника за текущую дату сервера;
// дата от клиента игнорируется точно так же, как при создании
func (s *orderingService) DeleteToday(ctx context.Context, employeeID string) error {
	if employeeID == "" {
		return domain.ErrInvalidKey
	}
	return s.orderRepo.DeleteByEmployeeIDAndDay(ctx, employeeID, domain.Today())
}
