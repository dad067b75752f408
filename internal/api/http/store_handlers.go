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

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.List()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	respondData(w, http.StatusOK, products)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	if err := h.Products.Create(&product); err != nil {
		if errors.Is(err, service.ErrInvalidProduct) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}
	respondData(w, http.StatusCreated, product)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	product.ID = id

	if err := h.Products.Update(&product); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update product")
		return
	}
	respondData(w, http.StatusOK, product)
}

func (h *Handler) seedProducts(w http.ResponseWriter, r *http.Request) {
	inserted, err := h.Products.Seed()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to seed products")
		return
	}
	respondMessage(w, "Seeded "+strconv.Itoa(inserted)+" products")
}

func (h *Handler) getInventory(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("type") != "low-stock" {
		respondError(w, http.StatusBadRequest, "Invalid query parameter")
		return
	}

	items, err := h.Inventory.LowStock()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch inventory")
		return
	}
	respondData(w, http.StatusOK, items)
}

func (h *Handler) updateInventory(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID      int  `json:"product_id"`
		QuantityChange *int `json:"quantity_change"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if body.ProductID == 0 || body.QuantityChange == nil {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	item, err := h.Inventory.Adjust(body.ProductID, *body.QuantityChange)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrProductNotFound):
			respondError(w, http.StatusNotFound, "Product not found")
		default:
			respondError(w, http.StatusInternalServerError, "Failed to update inventory")
		}
		return
	}
	respondData(w, http.StatusOK, item)
}

func (h *Handler) getNotifications(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(r.URL.Query().Get("orderId"))
	if err != nil || orderID <= 0 {
		respondError(w, http.StatusBadRequest, "orderId parameter required")
		return
	}

	notifications, err := h.Notifications.History(orderID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}
	respondData(w, http.StatusOK, notifications)
}

func (h *Handler) sendNotification(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OrderID          int    `json:"orderId"`
		NotificationType string `json:"notificationType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if body.OrderID == 0 || body.NotificationType == "" {
		respondError(w, http.StatusBadRequest, "Missing orderId or notificationType")
		return
	}

	if err := h.Notifications.Send(body.OrderID, body.NotificationType); err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownNotification):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(w, http.StatusNotFound, "Order not found")
		default:
			respondError(w, http.StatusInternalServerError, "Failed to send notifications")
		}
		return
	}
	respondMessage(w, "Notifications sent")
}

func (h *Handler) processPayment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OrderID int     `json:"order_id"`
		Amount  float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	order, err := h.Payments.Process(body.OrderID, body.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			respondError(w, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(w, http.StatusNotFound, "Order not found")
		default:
			respondError(w, http.StatusInternalServerError, "Failed to process payment")
		}
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Payment processed successfully",
		Data:    order,
	})
}

func (h *Handler) getTodaySales(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Analytics.Today()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch sales summary")
		return
	}
	respondData(w, http.StatusOK, summary)
}

func (h *Handler) getOrderTypes(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Analytics.OrderTypes()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch order type stats")
		return
	}
	respondData(w, http.StatusOK, stats)
}

func (h *Handler) getTopProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	products, err := h.Analytics.TopProducts(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch top products")
		return
	}
	respondData(w, http.StatusOK, products)
}
