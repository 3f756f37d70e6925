package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/workforce-api/internal/dto"
	"github.com/workforce-api/internal/service"
)

type CommuteHandler struct {
	commuteService service.CommuteService
	validator      *validator.Validate
	logger         *slog.Logger
}

func NewCommuteHandler(commuteService service.CommuteService, logger *slog.Logger) *CommuteHandler {
	return &CommuteHandler{
		commuteService: commuteService,
		validator:      validator.New(),
		logger:         logger,
	}
}

func (h *CommuteHandler) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req dto.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	commute, err := h.commuteService.ClockIn(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, commute)
}

func (h *CommuteHandler) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req dto.ClockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	commute, err := h.commuteService.ClockOut(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, commute)
}

func (h *CommuteHandler) Today(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		respondError(h.logger, w, http.StatusBadRequest, "employeeId is required", "")
		return
	}

	commute, err := h.commuteService.Today(r.Context(), employeeID)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, commute)
}

func (h *CommuteHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	if employeeID == "" || errYear != nil || errMonth != nil {
		respondError(h.logger, w, http.StatusBadRequest, "employeeId, year and month are required", "")
		return
	}

	commutes, err := h.commuteService.Monthly(r.Context(), employeeID, year, month)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, commutes)
}

func (h *CommuteHandler) Recent(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	employeeName := r.URL.Query().Get("employeeName")
	if employeeID == "" || employeeName == "" {
		respondError(h.logger, w, http.StatusBadRequest, "employeeId and employeeName are required", "")
		return
	}

	commute, err := h.commuteService.Recent(r.Context(), employeeID, employeeName)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, commute)
}
