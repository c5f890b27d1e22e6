package handlers

import (
	"context"
	"net/http"

	"github.com/devkyoshi/easy-bites-sub000/internal/domain"
	"github.com/devkyoshi/easy-bites-sub000/internal/logx"
)

// DeliveryHandler serves delivery fulfillment endpoints.
type DeliveryHandler struct {
	uc     fulfillmentUsecase
	logger logx.Logger
}

// NewDeliveryHandler wires a fulfillmentUsecase into HTTP handlers.
func NewDeliveryHandler(uc fulfillmentUsecase, logger logx.Logger) *DeliveryHandler {
	return &DeliveryHandler{uc: uc, logger: logger}
}

// GetByID handles GET /deliveries/{id}.
func (h *DeliveryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id", "")
		return
	}

	d, err := h.uc.Get(r.Context(), id)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveryToResponse(*d))
}

// List handles GET /deliveries.
func (h *DeliveryHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.ListAll(r.Context())
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveriesToResponse(list))
}

// Active handles GET /couriers/{id}/deliveries/active. An empty result set
// yields 204.
func (h *DeliveryHandler) Active(w http.ResponseWriter, r *http.Request) {
	h.listForCourier(w, r, h.uc.Active)
}

// History handles GET /couriers/{id}/deliveries/history. An empty result set
// yields 204.
func (h *DeliveryHandler) History(w http.ResponseWriter, r *http.Request) {
	h.listForCourier(w, r, h.uc.History)
}

func (h *DeliveryHandler) listForCourier(
	w http.ResponseWriter,
	r *http.Request,
	fetch func(ctx context.Context, courierID int64) ([]domain.Delivery, error),
) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id", "")
		return
	}

	list, err := fetch(r.Context(), id)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveriesToResponse(list))
}

// Complete handles POST /deliveries/{id}/complete and moves a delivery into
// its terminal state.
func (h *DeliveryHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id", "")
		return
	}
	var req completeDeliveryRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	d, err := h.uc.Complete(r.Context(), id, req.Success, req.Notes, req.ProofImage)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveryToResponse(*d))
}

// Rate handles POST /deliveries/{id}/rating.
func (h *DeliveryHandler) Rate(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id", "")
		return
	}
	var req rateDeliveryRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	d, err := h.uc.Rate(r.Context(), id, req.Rating, req.Comment)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveryToResponse(*d))
}
