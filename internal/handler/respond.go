package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/workforce-api/internal/domain"
	"github.com/workforce-api/internal/dto"
)

func respondJSON(logger *slog.Logger, w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func respondError(logger *slog.Logger, w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

// handleServiceError отображает ошибки сервисов на статус-коды;
// отсутствие записи отдаётся как 404 без тела
func handleServiceError(logger *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrWorkPlaceNotFound),
		errors.Is(err, domain.ErrGoodsNotFound),
		errors.Is(err, domain.ErrCommuteNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidKey):
		respondError(logger, w, http.StatusBadRequest, "invalid request", err.Error())
	default:
		logger.Error("internal error", slog.Any("error", err))
		respondError(logger, w, http.StatusInternalServerError, "internal server error", "")
	}
}
