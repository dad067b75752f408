package tests

import (
	"database/sql"
	"testing"

	"restaurant-pos/internal/auth"
	"restaurant-pos/internal/domain"
	"restaurant-pos/internal/mocks"
	"restaurant-pos/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		taken    bool
		wantErr  error
	}{
		{name: "valid signup", userName: "Jane", email: "jane@example.com", password: "secret123"},
		{name: "missing name", email: "jane@example.com", password: "secret123", wantErr: service.ErrMissingSignup},
		{name: "missing email", userName: "Jane", password: "secret123", wantErr: service.ErrMissingSignup},
		{name: "short password", userName: "Jane", email: "jane@example.com", password: "abc", wantErr: service.ErrPasswordTooShort},
		{name: "email already registered", userName: "Jane", email: "jane@example.com", password: "secret123", taken: true, wantErr: service.ErrEmailTaken},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.UserRepository)
			svc := service.NewUserService(mockRepo, auth.NewTokenCodec("test-secret"))

			if testCase.userName != "" && testCase.email != "" && len(testCase.password) >= 6 {
				mockRepo.On("EmailExists", testCase.email).Return(testCase.taken, nil).Once()
				if !testCase.taken {
					mockRepo.On("CreateUser", mock.AnythingOfType("*domain.User")).Return(nil).Once()
				}
			}

			err := svc.Register(testCase.userName, testCase.email, "", testCase.password)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_RegisterHashesPassword(t *testing.T) {
	mockRepo := new(mocks.UserRepository)
	svc := service.NewUserService(mockRepo, auth.NewTokenCodec("test-secret"))

	var created *domain.User
	mockRepo.On("EmailExists", "jane@example.com").Return(false, nil).Once()
	mockRepo.On("CreateUser", mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) { created = args.Get(0).(*domain.User) }).
		Return(nil).Once()

	err := svc.Register("Jane", "jane@example.com", "555-0101", "secret123")

	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.True(t, auth.CheckPassword(created.PasswordHash, "secret123"))
}

func TestUserService_Login(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	assert.NoError(t, err)

	customer := &domain.User{ID: 9, Email: "jane@example.com", Role: "customer", IsActive: true, PasswordHash: hash}

	tests := []struct {
		name     string
		email    string
		password string
		mockUser *domain.User
		mockErr  error
		wantErr  error
	}{
		{name: "valid login", email: "jane@example.com", password: "secret123", mockUser: customer},
		{name: "missing password", email: "jane@example.com", wantErr: service.ErrMissingCredentials},
		{name: "unknown email", email: "no@example.com", password: "secret123", mockErr: sql.ErrNoRows, wantErr: service.ErrInvalidCredentials},
		{name: "wrong password", email: "jane@example.com", password: "wrong", mockUser: customer, wantErr: service.ErrInvalidCredentials},
		{
			name: "staff account rejected", email: "admin@example.com", password: "secret123",
			mockUser: &domain.User{ID: 1, Email: "admin@example.com", Role: "admin", IsActive: true, PasswordHash: hash},
			wantErr:  service.ErrInvalidCredentials,
		},
		{
			name: "deactivated account rejected", email: "jane@example.com", password: "secret123",
			mockUser: &domain.User{ID: 9, Email: "jane@example.com", Role: "customer", PasswordHash: hash},
			wantErr:  service.ErrInvalidCredentials,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.UserRepository)
			codec := auth.NewTokenCodec("test-secret")
			svc := service.NewUserService(mockRepo, codec)

			if testCase.email != "" && testCase.password != "" {
				mockRepo.On("UserByEmail", testCase.email).Return(testCase.mockUser, testCase.mockErr).Once()
			}

			user, token, err := svc.Login(testCase.email, testCase.password)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testCase.mockUser, user)
				payload := codec.Verify(token)
				assert.NotNil(t, payload)
				assert.Equal(t, testCase.mockUser.ID, payload.Sub)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPaymentService_Process(t *testing.T) {
	tests := []struct {
		name    string
		orderID int
		amount  float64
		mockErr error
		wantErr error
	}{
		{name: "valid payment", orderID: 4, amount: 126500},
		{name: "missing order id", amount: 126500, wantErr: service.ErrMissingFields},
		{name: "zero amount", orderID: 4, wantErr: service.ErrMissingFields},
		{name: "unknown order", orderID: 99, amount: 1000, mockErr: sql.ErrNoRows, wantErr: service.ErrOrderNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.PaymentRepository)
			svc := service.NewPaymentService(mockRepo)

			if testCase.orderID > 0 && testCase.amount > 0 {
				if testCase.mockErr != nil {
					mockRepo.On("MarkPaid", testCase.orderID).Return(nil, testCase.mockErr).Once()
				} else {
					paid := &domain.Order{ID: testCase.orderID, PaymentStatus: "completed"}
					mockRepo.On("MarkPaid", testCase.orderID).Return(paid, nil).Once()
					mockRepo.On("InsertTransaction", mock.MatchedBy(func(tr *domain.Transaction) bool {
						return tr.OrderID == testCase.orderID && tr.Amount == testCase.amount &&
							tr.PaymentMethod == "pos_payment" && tr.Status == "completed"
					})).Return(nil).Once()
				}
			}

			order, err := svc.Process(testCase.orderID, testCase.amount)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "completed", order.PaymentStatus)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestNotificationTypeForStatus(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{status: domain.StatusPending, want: "order_confirmed"},
		{status: domain.StatusPreparing, want: "order_preparing"},
		{status: domain.StatusReady, want: "order_ready"},
		{status: domain.StatusDelivering, want: "order_delivering"},
		{status: domain.StatusCompleted, want: "order_completed"},
		{status: domain.StatusCancelled, want: "order_cancelled"},
		{status: "frozen", want: ""},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.want, service.NotificationTypeForStatus(testCase.status))
	}
}

func TestRenderNotification(t *testing.T) {
	message, ok := service.RenderNotification("order_ready", "ORD-123")
	assert.True(t, ok)
	assert.Contains(t, message, "ORD-123")
	assert.Contains(t, message, "ready")

	_, ok = service.RenderNotification("order_teleported", "ORD-123")
	assert.False(t, ok)
}

func TestNotificationService_Send(t *testing.T) {
	tests := []struct {
		name             string
		notificationType string
		contact          *domain.OrderContact
		contactErr       error
		wantChannels     []string
		wantErr          error
	}{
		{
			name:             "email and sms",
			notificationType: "order_ready",
			contact:          &domain.OrderContact{OrderID: 4, OrderNumber: "ORD-4", Email: "jane@example.com", Phone: "555-0101"},
			wantChannels:     []string{"email", "sms"},
		},
		{
			name:             "email only",
			notificationType: "order_confirmed",
			contact:          &domain.OrderContact{OrderID: 4, OrderNumber: "ORD-4", Email: "jane@example.com"},
			wantChannels:     []string{"email"},
		},
		{
			name:             "no contact channels",
			notificationType: "order_confirmed",
			contact:          &domain.OrderContact{OrderID: 4, OrderNumber: "ORD-4"},
		},
		{
			name:             "unknown type",
			notificationType: "order_teleported",
			wantErr:          service.ErrUnknownNotification,
		},
		{
			name:             "unknown order",
			notificationType: "order_ready",
			contactErr:       sql.ErrNoRows,
			wantErr:          service.ErrOrderNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.NotificationRepository)
			svc := service.NewNotificationService(mockRepo)

			if testCase.wantErr != service.ErrUnknownNotification {
				mockRepo.On("OrderContact", 4).Return(testCase.contact, testCase.contactErr).Once()
			}
			for _, channel := range testCase.wantChannels {
				channel := channel
				mockRepo.On("InsertNotification", mock.MatchedBy(func(n *domain.Notification) bool {
					return n.Channel == channel && n.OrderID == 4
				})).Return(nil).Once()
			}

			err := svc.Send(4, testCase.notificationType)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
