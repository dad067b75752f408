package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"restaurant-pos/internal/auth"
	"restaurant-pos/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Orders        service.OrderServiceInterface
	Products      service.ProductServiceInterface
	Inventory     service.InventoryServiceInterface
	Users         service.UserServiceInterface
	Notifications service.NotificationServiceInterface
	Payments      service.PaymentServiceInterface
	Analytics     service.AnalyticsServiceInterface
	Tokens        *auth.TokenCodec
}

func NewHandler(
	orders service.OrderServiceInterface,
	products service.ProductServiceInterface,
	inventory service.InventoryServiceInterface,
	users service.UserServiceInterface,
	notifications service.NotificationServiceInterface,
	payments service.PaymentServiceInterface,
	analytics service.AnalyticsServiceInterface,
	tokens *auth.TokenCodec,
) *Handler {
	return &Handler{
		Orders:        orders,
		Products:      products,
		Inventory:     inventory,
		Users:         users,
		Notifications: notifications,
		Payments:      payments,
		Analytics:     analytics,
		Tokens:        tokens,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	// Fixed paths before the {id} route.
	r.HandleFunc("/api/orders/feed", h.getOrderFeed).Methods("GET")
	r.HandleFunc("/api/orders/status-updates", h.trackOrder).Methods("GET")
	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/pos/orders", h.createPOSOrder).Methods("POST")

	r.HandleFunc("/api/products", h.getProducts).Methods("GET")
	r.HandleFunc("/api/products", h.createProduct).Methods("POST")
	r.HandleFunc("/api/products/seed", h.seedProducts).Methods("POST")
	r.HandleFunc("/api/products/{id}", h.updateProduct).Methods("PUT")

	r.HandleFunc("/api/inventory", h.getInventory).Methods("GET")
	r.HandleFunc("/api/inventory/update", h.updateInventory).Methods("POST")

	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/logout", h.logout).Methods("POST")

	r.HandleFunc("/api/customer/profile", h.getProfile).Methods("GET")
	r.HandleFunc("/api/customer/profile", h.updateProfile).Methods("PUT")
	r.HandleFunc("/api/customer/orders", h.getCustomerOrders).Methods("GET")
	r.HandleFunc("/api/customer/orders/{id}", h.getCustomerOrder).Methods("GET")

	r.HandleFunc("/api/notifications", h.getNotifications).Methods("GET")
	r.HandleFunc("/api/notifications/send", h.sendNotification).Methods("POST")

	r.HandleFunc("/api/payments/process", h.processPayment).Methods("POST")

	r.HandleFunc("/api/analytics/today", h.getTodaySales).Methods("GET")
	r.HandleFunc("/api/analytics/order-types", h.getOrderTypes).Methods("GET")
	r.HandleFunc("/api/analytics/top-products", h.getTopProducts).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "restaurant-pos",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// userFromRequest returns the verified session payload, or nil when the
// auth cookie is missing or invalid.
func (h *Handler) userFromRequest(r *http.Request) *auth.Payload {
	cookie, err := r.Cookie(auth.CookieName)
	if err != nil {
		return nil
	}
	return h.Tokens.Verify(cookie.Value)
}
