package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"stellarforge/internal/shared/errors"
	"stellarforge/internal/shared/response"
	"stellarforge/internal/system"
)

type SystemHandler struct {
	service *system.Service
	logger  *slog.Logger
}

func NewSystemHandler(service *system.Service, logger *slog.Logger) *SystemHandler {
	return &SystemHandler{service: service, logger: logger}
}

// generateRequest lets a caller pin the seed for a reproducible run; an
// absent Seed draws one from the wall clock instead, while an explicit 0
// is used as the seed.
type generateRequest struct {
	Seed *uint64 `json:"seed,omitempty"`
}

func (h *SystemHandler) Generate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "system", "operation", "generate", "remote_addr", r.RemoteAddr)

	var req generateRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
			return
		}
	}

	result, err := h.service.Generate(r.Context(), req.Seed)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, result)
}

func (h *SystemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "system", "operation", "get_by_id", "remote_addr", r.RemoteAddr)

	id, err := parseIDPathValue(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, result)
}

func (h *SystemHandler) GetPlanets(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "system", "operation", "get_planets", "remote_addr", r.RemoteAddr)

	id, err := parseIDPathValue(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	planets, err := h.service.GetPlanets(r.Context(), id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, planets)
}

func (h *SystemHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "system", "operation", "get_stats", "remote_addr", r.RemoteAddr)

	id, err := parseIDPathValue(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	stats, err := h.service.GetStats(r.Context(), id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, stats)
}

func (h *SystemHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "system", "operation", "regenerate", "remote_addr", r.RemoteAddr)

	id, err := parseIDPathValue(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	result, err := h.service.Regenerate(r.Context(), id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, result)
}

func (h *SystemHandler) GetStatsAggregate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "system", "operation", "get_stats_aggregate", "remote_addr", r.RemoteAddr)

	aggregate, err := h.service.GetStatsAggregate(r.Context())
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, aggregate)
}

func parseIDPathValue(r *http.Request) (int, error) {
	idStr := r.PathValue("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.WrapValidation("invalid system id", err)
	}
	return id, nil
}
