package handlers

import (
	"net/http"

	"github.com/devkyoshi/easy-bites-sub000/internal/logx"
)

// StatsHandler serves courier statistics endpoints.
type StatsHandler struct {
	uc     statsUsecase
	logger logx.Logger
}

// NewStatsHandler wires a statsUsecase into HTTP handlers.
func NewStatsHandler(uc statsUsecase, logger logx.Logger) *StatsHandler {
	return &StatsHandler{uc: uc, logger: logger}
}

// Weekly handles GET /couriers/{id}/stats/weekly.
func (h *StatsHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id", "")
		return
	}

	s, err := h.uc.Weekly(r.Context(), id)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, weeklyToResponse(s))
}

// Ratings handles GET /couriers/{id}/stats/ratings. A courier without rated
// deliveries gets 204.
func (h *StatsHandler) Ratings(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id", "")
		return
	}

	s, err := h.uc.Ratings(r.Context(), id)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, ratingsToResponse(s))
}

// AverageRating handles GET /couriers/{id}/stats/average-rating. No ratings
// at all is 204, never an average of zero.
func (h *StatsHandler) AverageRating(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id", "")
		return
	}

	avg, err := h.uc.AverageRating(r.Context(), id)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, averageRatingDTO{CourierID: id, Average: avg})
}
