package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/workforce-api/internal/dto"
	"github.com/workforce-api/internal/service"
)

type WorkPlaceHandler struct {
	workPlaceService service.WorkPlaceService
	validator        *validator.Validate
	logger           *slog.Logger
}

func NewWorkPlaceHandler(workPlaceService service.WorkPlaceService, logger *slog.Logger) *WorkPlaceHandler {
	return &WorkPlaceHandler{
		workPlaceService: workPlaceService,
		validator:        validator.New(),
		logger:           logger,
	}
}

func (h *WorkPlaceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	workPlaces, err := h.workPlaceService.GetAll(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, workPlaces)
}

// Create выполняет upsert по имени точки
func (h *WorkPlaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveWorkPlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	workPlace, err := h.workPlaceService.Save(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, workPlace)
}

func (h *WorkPlaceHandler) GetByName(w http.ResponseWriter, r *http.Request, name string) {
	workPlace, err := h.workPlaceService.GetByName(r.Context(), name)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, workPlace)
}
