package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/workforce-api/internal/dto"
	"github.com/workforce-api/internal/service"
)

type GoodsHandler struct {
	goodsService service.GoodsService
	validator    *validator.Validate
	logger       *slog.Logger
}

func NewGoodsHandler(goodsService service.GoodsService, logger *slog.Logger) *GoodsHandler {
	return &GoodsHandler{
		goodsService: goodsService,
		validator:    validator.New(),
		logger:       logger,
	}
}

func (h *GoodsHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	goods, err := h.goodsService.GetAll(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, goods)
}

func (h *GoodsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGoodsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	goods, err := h.goodsService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, goods)
}

func (h *GoodsHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.goodsService.Count(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, count)
}

// Update переименовывает первый товар с данным штрихкодом
func (h *GoodsHandler) Update(w http.ResponseWriter, r *http.Request, barcode string) {
	var req dto.UpdateGoodsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	goods, err := h.goodsService.UpdateByBarcode(r.Context(), barcode, &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, goods)
}

// Delete удаляет первый товар с данным штрихкодом
func (h *GoodsHandler) Delete(w http.ResponseWriter, r *http.Request, barcode string) {
	if err := h.goodsService.DeleteByBarcode(r.Context(), barcode); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
