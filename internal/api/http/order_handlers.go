package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"restaurant-pos/internal/domain"
	"restaurant-pos/internal/service"

	"github.com/gorilla/mux"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	userID := 0
	if payload := h.userFromRequest(r); payload != nil {
		userID = payload.Sub
	}

	order, err := h.Orders.Create(r.Context(), &req, userID, true)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrMissingContact):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondData(w, http.StatusCreated, order)
}

// createPOSOrder is the cashier intake: same math, looser validation.
// Contact fields stay optional for walk-in orders.
func (h *Handler) createPOSOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	order, err := h.Orders.Create(r.Context(), &req, 0, false)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(w, http.StatusCreated, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("type") == "today" {
		summary, err := h.Analytics.Today()
		if err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondData(w, http.StatusOK, summary)
		return
	}

	status := r.URL.Query().Get("status")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	orders, err := h.Orders.List(status, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondList(w, orders, len(orders))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "Order not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusOK, order)
}

func (h *Handler) getOrderFeed(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	orders, err := h.Orders.Feed(status, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondList(w, orders, len(orders))
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	order, err := h.Orders.UpdateStatus(r.Context(), orderID, body.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(w, http.StatusNotFound, "Order not found")
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Order " + strconv.Itoa(orderID) + " updated to " + body.Status,
		Data:    order,
	})
}

func (h *Handler) trackOrder(w http.ResponseWriter, r *http.Request) {
	ref := r.URL.Query().Get("orderId")
	if ref == "" {
		respondError(w, http.StatusBadRequest, "orderId parameter required")
		return
	}

	snap, err := h.Orders.Track(r.Context(), ref)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "Order not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusOK, snap)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	qr, err := h.Orders.QRCode(orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "Order not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(qr) == 0 {
		respondError(w, http.StatusNotFound, "QR code not found")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}
