package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"restaurant-pos/internal/auth"
	"restaurant-pos/internal/service"

	"github.com/gorilla/mux"
)

const sessionMaxAge = 7 * 24 * 60 * 60 // seconds

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	err := h.Users.Register(body.Name, body.Email, body.Phone, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingSignup), errors.Is(err, service.ErrPasswordTooShort):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrEmailTaken):
			respondError(w, http.StatusConflict, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	user, token, err := h.Users.Login(body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			respondError(w, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respondData(w, http.StatusOK, user)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

// requireCustomer rejects requests without a valid customer session.
func (h *Handler) requireCustomer(w http.ResponseWriter, r *http.Request) *auth.Payload {
	payload := h.userFromRequest(r)
	if payload == nil || payload.Role != "customer" {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}
	return payload
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	payload := h.requireCustomer(w, r)
	if payload == nil {
		return
	}

	user, err := h.Users.Profile(payload.Sub)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusOK, user)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	payload := h.requireCustomer(w, r)
	if payload == nil {
		return
	}

	var body struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	user, err := h.Users.UpdateProfile(payload.Sub, body.Name, body.Phone)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusOK, user)
}

func (h *Handler) getCustomerOrders(w http.ResponseWriter, r *http.Request) {
	payload := h.requireCustomer(w, r)
	if payload == nil {
		return
	}

	orders, err := h.Orders.ForUser(payload.Sub)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	respondData(w, http.StatusOK, orders)
}

func (h *Handler) getCustomerOrder(w http.ResponseWriter, r *http.Request) {
	payload := h.requireCustomer(w, r)
	if payload == nil {
		return
	}

	orderID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.Orders.UserOrder(payload.Sub, orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "Order not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to fetch order")
		return
	}
	respondData(w, http.StatusOK, order)
}
