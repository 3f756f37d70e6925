package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/workforce-api/internal/dto"
	"github.com/workforce-api/internal/service"
)

type OrderingHandler struct {
	orderService service.OrderingService
	validator    *validator.Validate
	logger       *slog.Logger
}

func NewOrderingHandler(orderService service.OrderingService, logger *slog.Logger) *OrderingHandler {
	return &OrderingHandler{
		orderService: orderService,
		validator:    validator.New(),
		logger:       logger,
	}
}

// Create сохраняет заявку; дата заявки всегда текущая дата сервера,
// поле даты в теле запроса не читается
func (h *OrderingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	order, err := h.orderService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, order)
}

func (h *OrderingHandler) GetByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		respondError(h.logger, w, http.StatusBadRequest, "employeeId is required", "")
		return
	}

	orders, err := h.orderService.GetByEmployeeID(r.Context(), employeeID)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, orders)
}

func (h *OrderingHandler) Details(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	date := r.URL.Query().Get("date")
	if employeeID == "" || date == "" {
		respondError(h.logger, w, http.StatusBadRequest, "employeeId and date are required", "")
		return
	}

	orders, err := h.orderService.GetByEmployeeIDAndDate(r.Context(), employeeID, date)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, orders)
}

// Delete удаляет заявки сотрудника за текущую дату сервера; параметр date
// принимается, но игнорируется - удалить прошлые дни нельзя
func (h *OrderingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		respondError(h.logger, w, http.StatusBadRequest, "employeeId is required", "")
		return
	}

	if err := h.orderService.DeleteToday(r.Context(), employeeID); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
