package handlers

import (
	"net/http"
	"strconv"

	"github.com/devkyoshi/easy-bites-sub000/internal/logx"
)

// DispatchHandler serves order discovery, announcement and acceptance
// endpoints.
type DispatchHandler struct {
	uc     dispatchUsecase
	logger logx.Logger
}

// NewDispatchHandler wires a dispatchUsecase into HTTP handlers.
func NewDispatchHandler(uc dispatchUsecase, logger logx.Logger) *DispatchHandler {
	return &DispatchHandler{uc: uc, logger: logger}
}

// NearbyOrders handles GET /couriers/{id}/nearby-orders?lat=&lng=. The
// reported coordinates become the courier's stored location before matching.
func (h *DispatchHandler) NearbyOrders(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id", "")
		return
	}
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid lat", "")
		return
	}
	lng, err := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid lng", "")
		return
	}

	list, err := h.uc.NearbyOrders(r.Context(), id, lat, lng)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, nearbyToResponse(list))
}

// Notify handles POST /dispatch/notify and announces a dispatchable order to
// couriers. Re-announcing the same order is a no-op success.
func (h *DispatchHandler) Notify(w http.ResponseWriter, r *http.Request) {
	var req notifyOrderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.uc.NotifyNewOrder(r.Context(), req.OrderID)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, notifyOrderResponse{
		NotifiedCouriers: res.NotifiedCouriers,
		AlreadyNotified:  res.AlreadyNotified,
	})
}

// Accept handles POST /dispatch/accept. Losers of an acceptance race get 409.
func (h *DispatchHandler) Accept(w http.ResponseWriter, r *http.Request) {
	var req acceptOrderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	d, err := h.uc.Accept(r.Context(), req.CourierID, req.OrderID)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, deliveryToResponse(*d))
}
