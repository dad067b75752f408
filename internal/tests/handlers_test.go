package tests

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "restaurant-pos/internal/api/http"
	"restaurant-pos/internal/auth"
	"restaurant-pos/internal/domain"
	"restaurant-pos/internal/mocks"
	"restaurant-pos/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type responseEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func serve(handler *httpapi.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) responseEnvelope {
	t.Helper()
	var env responseEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestCreateOrderHandler(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		body      string
		wantCode  int
		wantSaved bool
	}{
		{
			name: "online order with contact",
			path: "/api/orders",
			body: `{"order_type":"online","customer_name":"Jane","customer_phone":"555-0101",
				"delivery_address":"12 Main St","items":[{"product_id":1,"quantity":2,"unit_price":50000}]}`,
			wantCode:  http.StatusCreated,
			wantSaved: true,
		},
		{
			name:     "online order missing contact",
			path:     "/api/orders",
			body:     `{"order_type":"online","items":[{"product_id":1,"quantity":2,"unit_price":50000}]}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "pos order without contact",
			path:      "/api/pos/orders",
			body:      `{"order_type":"dine-in","items":[{"product_id":1,"quantity":1,"unit_price":45000}]}`,
			wantCode:  http.StatusCreated,
			wantSaved: true,
		},
		{
			name:     "pos order without items",
			path:     "/api/pos/orders",
			body:     `{"order_type":"dine-in","items":[]}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid json",
			path:     "/api/orders",
			body:     `{broken`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.OrderRepository)
			orderSvc := service.NewOrderService(mockRepo, nil, nil, nil)
			handler := httpapi.NewHandler(orderSvc, nil, nil, nil, nil, nil, nil, auth.NewTokenCodec("test-secret"))

			if testCase.wantSaved {
				mockRepo.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil).Once()
			}

			req := httptest.NewRequest("POST", testCase.path, bytes.NewBufferString(testCase.body))
			req.Header.Set("Content-Type", "application/json")
			w := serve(handler, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			env := decodeEnvelope(t, w)
			assert.Equal(t, testCase.wantCode < 400, env.Success)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.OrderRepository)
		wantCode  int
	}{
		{
			name: "valid status",
			body: `{"status":"preparing"}`,
			setupMock: func(m *mocks.OrderRepository) {
				order := &domain.Order{ID: 7, OrderNumber: "ORD-7", Status: "preparing"}
				m.On("UpdateStatus", 7, "preparing").Return(order, nil).Once()
				m.On("LogStatusChange", 7, "preparing").Return(nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "invalid status",
			body:      `{"status":"frozen"}`,
			setupMock: func(m *mocks.OrderRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "order not found",
			body: `{"status":"ready"}`,
			setupMock: func(m *mocks.OrderRepository) {
				m.On("UpdateStatus", 7, "ready").Return(nil, sql.ErrNoRows).Once()
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.OrderRepository)
			testCase.setupMock(mockRepo)
			orderSvc := service.NewOrderService(mockRepo, nil, nil, nil)
			handler := httpapi.NewHandler(orderSvc, nil, nil, nil, nil, nil, nil, auth.NewTokenCodec("test-secret"))

			req := httptest.NewRequest("PUT", "/api/orders/7/status", bytes.NewBufferString(testCase.body))
			w := serve(handler, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderFeedHandler(t *testing.T) {
	mockRepo := new(mocks.OrderRepository)
	orderSvc := service.NewOrderService(mockRepo, nil, nil, nil)
	handler := httpapi.NewHandler(orderSvc, nil, nil, nil, nil, nil, nil, auth.NewTokenCodec("test-secret"))

	feed := []domain.Order{
		{ID: 2, Status: "ready"},
		{ID: 1, Status: "preparing"},
	}
	mockRepo.On("Feed", []string{"pending", "preparing", "ready"}, 50).Return(feed, nil).Once()

	w := serve(handler, httptest.NewRequest("GET", "/api/orders/feed", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)
	mockRepo.AssertExpectations(t)
}

func TestTrackOrderHandler(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		setupMock func(*mocks.OrderRepository)
		wantCode  int
	}{
		{
			name:  "found",
			query: "?orderId=ORD-3",
			setupMock: func(m *mocks.OrderRepository) {
				snap := &domain.StatusSnapshot{ID: 3, OrderNumber: "ORD-3", Status: "ready"}
				m.On("StatusSnapshot", 0, "ORD-3").Return(snap, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "missing parameter",
			query:     "",
			setupMock: func(m *mocks.OrderRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:  "unknown order",
			query: "?orderId=999",
			setupMock: func(m *mocks.OrderRepository) {
				m.On("StatusSnapshot", 999, "999").Return(nil, sql.ErrNoRows).Once()
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.OrderRepository)
			testCase.setupMock(mockRepo)
			orderSvc := service.NewOrderService(mockRepo, nil, nil, nil)
			handler := httpapi.NewHandler(orderSvc, nil, nil, nil, nil, nil, nil, auth.NewTokenCodec("test-secret"))

			req := httptest.NewRequest("GET", "/api/orders/status-updates"+testCase.query, nil)
			w := serve(handler, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestInventoryHandlers(t *testing.T) {
	t.Run("low stock report", func(t *testing.T) {
		mockRepo := new(mocks.InventoryRepository)
		inventorySvc := service.NewInventoryService(mockRepo)
		handler := httpapi.NewHandler(nil, nil, inventorySvc, nil, nil, nil, nil, auth.NewTokenCodec("test-secret"))

		items := []domain.InventoryItem{{ProductID: 5, QuantityOnHand: 2, MinimumStock: 10}}
		mockRepo.On("LowStock").Return(items, nil).Once()

		w := serve(handler, httptest.NewRequest("GET", "/api/inventory?type=low-stock", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unsupported report type", func(t *testing.T) {
		handler := httpapi.NewHandler(nil, nil, service.NewInventoryService(new(mocks.InventoryRepository)),
			nil, nil, nil, nil, auth.NewTokenCodec("test-secret"))

		w := serve(handler, httptest.NewRequest("GET", "/api/inventory?type=everything", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("adjustment with missing quantity", func(t *testing.T) {
		handler := httpapi.NewHandler(nil, nil, service.NewInventoryService(new(mocks.InventoryRepository)),
			nil, nil, nil, nil, auth.NewTokenCodec("test-secret"))

		body := bytes.NewBufferString(`{"product_id":5}`)
		w := serve(handler, httptest.NewRequest("POST", "/api/inventory/update", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative adjustment accepted", func(t *testing.T) {
		mockRepo := new(mocks.InventoryRepository)
		inventorySvc := service.NewInventoryService(mockRepo)
		handler := httpapi.NewHandler(nil, nil, inventorySvc, nil, nil, nil, nil, auth.NewTokenCodec("test-secret"))

		item := &domain.InventoryItem{ProductID: 5, QuantityOnHand: -3}
		mockRepo.On("AdjustStock", 5, -10).Return(item, nil).Once()

		body := bytes.NewBufferString(`{"product_id":5,"quantity_change":-10}`)
		w := serve(handler, httptest.NewRequest("POST", "/api/inventory/update", body))

		assert.Equal(t, http.StatusOK, w.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.UserRepository)
		wantCode  int
	}{
		{
			name: "valid signup",
			body: `{"name":"Jane","email":"jane@example.com","password":"secret123"}`,
			setupMock: func(m *mocks.UserRepository) {
				m.On("EmailExists", "jane@example.com").Return(false, nil).Once()
				m.On("CreateUser", mock.AnythingOfType("*domain.User")).Return(nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "short password",
			body:      `{"name":"Jane","email":"jane@example.com","password":"abc"}`,
			setupMock: func(m *mocks.UserRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "email taken",
			body: `{"name":"Jane","email":"jane@example.com","password":"secret123"}`,
			setupMock: func(m *mocks.UserRepository) {
				m.On("EmailExists", "jane@example.com").Return(true, nil).Once()
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.UserRepository)
			testCase.setupMock(mockRepo)
			userSvc := service.NewUserService(mockRepo, auth.NewTokenCodec("test-secret"))
			handler := httpapi.NewHandler(nil, nil, nil, userSvc, nil, nil, nil, auth.NewTokenCodec("test-secret"))

			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(testCase.body))
			w := serve(handler, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestLoginHandlerSetsCookie(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	assert.NoError(t, err)

	mockRepo := new(mocks.UserRepository)
	codec := auth.NewTokenCodec("test-secret")
	userSvc := service.NewUserService(mockRepo, codec)
	handler := httpapi.NewHandler(nil, nil, nil, userSvc, nil, nil, nil, codec)

	user := &domain.User{ID: 9, Email: "jane@example.com", Role: "customer", IsActive: true, PasswordHash: hash}
	mockRepo.On("UserByEmail", "jane@example.com").Return(user, nil).Once()

	body := bytes.NewBufferString(`{"email":"jane@example.com","password":"secret123"}`)
	w := serve(handler, httptest.NewRequest("POST", "/api/auth/login", body))

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, auth.CookieName, cookies[0].Name)
	assert.NotNil(t, codec.Verify(cookies[0].Value))
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginHandlerRejectsBadCredentials(t *testing.T) {
	mockRepo := new(mocks.UserRepository)
	codec := auth.NewTokenCodec("test-secret")
	userSvc := service.NewUserService(mockRepo, codec)
	handler := httpapi.NewHandler(nil, nil, nil, userSvc, nil, nil, nil, codec)

	mockRepo.On("UserByEmail", "jane@example.com").Return(nil, sql.ErrNoRows).Once()

	body := bytes.NewBufferString(`{"email":"jane@example.com","password":"secret123"}`)
	w := serve(handler, httptest.NewRequest("POST", "/api/auth/login", body))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestCustomerProfileRequiresSession(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret")

	t.Run("no cookie", func(t *testing.T) {
		handler := httpapi.NewHandler(nil, nil, nil, nil, nil, nil, nil, codec)
		w := serve(handler, httptest.NewRequest("GET", "/api/customer/profile", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("tampered cookie", func(t *testing.T) {
		handler := httpapi.NewHandler(nil, nil, nil, nil, nil, nil, nil, codec)
		req := httptest.NewRequest("GET", "/api/customer/profile", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "bad.token"})
		w := serve(handler, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid session", func(t *testing.T) {
		mockRepo := new(mocks.UserRepository)
		userSvc := service.NewUserService(mockRepo, codec)
		handler := httpapi.NewHandler(nil, nil, nil, userSvc, nil, nil, nil, codec)

		user := &domain.User{ID: 9, Email: "jane@example.com", Role: "customer", IsActive: true}
		mockRepo.On("UserByID", 9).Return(user, nil).Once()

		token := codec.Sign(auth.Payload{Sub: 9, Email: "jane@example.com", Role: "customer"})
		req := httptest.NewRequest("GET", "/api/customer/profile", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
		w := serve(handler, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestHealthCheck(t *testing.T) {
	handler := httpapi.NewHandler(nil, nil, nil, nil, nil, nil, nil, auth.NewTokenCodec("test-secret"))
	w := serve(handler, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
