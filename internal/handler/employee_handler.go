package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/workforce-api/internal/domain"
	"github.com/workforce-api/internal/dto"
	"github.com/workforce-api/internal/service"
)

type EmployeeHandler struct {
	empService service.EmployeeService
	validator  *validator.Validate
	logger     *slog.Logger
}

func NewEmployeeHandler(empService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		empService: empService,
		validator:  validator.New(),
		logger:     logger,
	}
}

// Login сверяет пароль; тела ответов 401/404 - литеральные строки,
// сохранённые ради совместимости с клиентами
func (h *EmployeeHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	emp, err := h.empService.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmployeeNotFound):
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("User not found"))
		case errors.Is(err, domain.ErrPasswordMismatch):
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Password mismatch"))
		default:
			handleServiceError(h.logger, w, err)
		}
		return
	}

	respondJSON(h.logger, w, http.StatusOK, emp)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, emp)
}

func (h *EmployeeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.GetAll(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, employees)
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request, employeeID string) {
	emp, err := h.empService.GetByEmployeeID(r.Context(), employeeID)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, emp)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request, employeeID string) {
	var req dto.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	emp, err := h.empService.Update(r.Context(), employeeID, &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, emp)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request, employeeID string) {
	if err := h.empService.Delete(r.Context(), employeeID); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *EmployeeHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.empService.Count(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, count)
}
