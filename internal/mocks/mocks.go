package mocks

import (
	"context"

	"restaurant-pos/internal/domain"

	"github.com/stretchr/testify/mock"
)

type OrderRepository struct{ mock.Mock }

func (m *OrderRepository) CreateOrder(order *domain.Order) error {
	return m.Called(order).Error(0)
}

func (m *OrderRepository) GetOrder(id int, orderNumber string) (*domain.Order, error) {
	args := m.Called(id, orderNumber)
	if order, ok := args.Get(0).(*domain.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderRepository) ListOrders(status string, limit int) ([]domain.Order, error) {
	args := m.Called(status, limit)
	if orders, ok := args.Get(0).([]domain.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderRepository) Feed(statuses []string, limit int) ([]domain.Order, error) {
	args := m.Called(statuses, limit)
	if orders, ok := args.Get(0).([]domain.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderRepository) UpdateStatus(orderID int, status string) (*domain.Order, error) {
	args := m.Called(orderID, status)
	if order, ok := args.Get(0).(*domain.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderRepository) SetCompletedAt(orderID int) error {
	return m.Called(orderID).Error(0)
}

func (m *OrderRepository) LogStatusChange(orderID int, status string) error {
	return m.Called(orderID, status).Error(0)
}

func (m *OrderRepository) StatusSnapshot(id int, orderNumber string) (*domain.StatusSnapshot, error) {
	args := m.Called(id, orderNumber)
	if snap, ok := args.Get(0).(*domain.StatusSnapshot); ok {
		return snap, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderRepository) OrdersForUser(userID, limit int) ([]domain.Order, error) {
	args := m.Called(userID, limit)
	if orders, ok := args.Get(0).([]domain.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderRepository) UserOrder(userID, orderID int) (*domain.Order, error) {
	args := m.Called(userID, orderID)
	if order, ok := args.Get(0).(*domain.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderRepository) SaveQRCode(orderID int, qr []byte) error {
	return m.Called(orderID, qr).Error(0)
}

func (m *OrderRepository) GetQRCode(orderID int) ([]byte, string, error) {
	args := m.Called(orderID)
	qr, _ := args.Get(0).([]byte)
	return qr, args.String(1), args.Error(2)
}

type ProductRepository struct{ mock.Mock }

func (m *ProductRepository) CreateProduct(p *domain.Product) error {
	return m.Called(p).Error(0)
}

func (m *ProductRepository) ListProducts() ([]domain.Product, error) {
	args := m.Called()
	if products, ok := args.Get(0).([]domain.Product); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductRepository) GetProduct(id int) (*domain.Product, error) {
	args := m.Called(id)
	if product, ok := args.Get(0).(*domain.Product); ok {
		return product, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductRepository) UpdateProduct(p *domain.Product) error {
	return m.Called(p).Error(0)
}

func (m *ProductRepository) CountProducts() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

type InventoryRepository struct{ mock.Mock }

func (m *InventoryRepository) AdjustStock(productID, delta int) (*domain.InventoryItem, error) {
	args := m.Called(productID, delta)
	if item, ok := args.Get(0).(*domain.InventoryItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *InventoryRepository) LowStock() ([]domain.InventoryItem, error) {
	args := m.Called()
	if items, ok := args.Get(0).([]domain.InventoryItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

type UserRepository struct{ mock.Mock }

func (m *UserRepository) CreateUser(u *domain.User) error {
	return m.Called(u).Error(0)
}

func (m *UserRepository) UserByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) UserByID(id int) (*domain.User, error) {
	args := m.Called(id)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) UpdateProfile(u *domain.User) error {
	return m.Called(u).Error(0)
}

type NotificationRepository struct{ mock.Mock }

func (m *NotificationRepository) InsertNotification(n *domain.Notification) error {
	return m.Called(n).Error(0)
}

func (m *NotificationRepository) NotificationsForOrder(orderID, limit int) ([]domain.Notification, error) {
	args := m.Called(orderID, limit)
	if notifications, ok := args.Get(0).([]domain.Notification); ok {
		return notifications, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NotificationRepository) OrderContact(orderID int) (*domain.OrderContact, error) {
	args := m.Called(orderID)
	if contact, ok := args.Get(0).(*domain.OrderContact); ok {
		return contact, args.Error(1)
	}
	return nil, args.Error(1)
}

type PaymentRepository struct{ mock.Mock }

func (m *PaymentRepository) MarkPaid(orderID int) (*domain.Order, error) {
	args := m.Called(orderID)
	if order, ok := args.Get(0).(*domain.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PaymentRepository) InsertTransaction(t *domain.Transaction) error {
	return m.Called(t).Error(0)
}

type AnalyticsRepository struct{ mock.Mock }

func (m *AnalyticsRepository) TodaySales() (*domain.SalesSummary, error) {
	args := m.Called()
	if summary, ok := args.Get(0).(*domain.SalesSummary); ok {
		return summary, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AnalyticsRepository) OrderTypeCounts() (map[string]int, error) {
	args := m.Called()
	if counts, ok := args.Get(0).(map[string]int); ok {
		return counts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AnalyticsRepository) TopProducts(limit int) ([]domain.TopProduct, error) {
	args := m.Called(limit)
	if products, ok := args.Get(0).([]domain.TopProduct); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AnalyticsRepository) TopProductStat(productID int) (string, float64, error) {
	args := m.Called(productID)
	return args.String(0), args.Get(1).(float64), args.Error(2)
}

type StatusCache struct{ mock.Mock }

func (m *StatusCache) GetSnapshot(ctx context.Context, ref string) (*domain.StatusSnapshot, error) {
	args := m.Called(ctx, ref)
	if snap, ok := args.Get(0).(*domain.StatusSnapshot); ok {
		return snap, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StatusCache) SetSnapshot(ctx context.Context, snap *domain.StatusSnapshot) error {
	return m.Called(ctx, snap).Error(0)
}

func (m *StatusCache) InvalidateSnapshot(ctx context.Context, id int, orderNumber string) error {
	return m.Called(ctx, id, orderNumber).Error(0)
}

type SalesCache struct{ mock.Mock }

func (m *SalesCache) BumpProductSales(ctx context.Context, day string, productID, quantity int) error {
	return m.Called(ctx, day, productID, quantity).Error(0)
}

func (m *SalesCache) AddRevenue(ctx context.Context, day string, amount float64) error {
	return m.Called(ctx, day, amount).Error(0)
}

func (m *SalesCache) TopProductSales(ctx context.Context, day string, limit int) (map[int]int, error) {
	args := m.Called(ctx, day, limit)
	if sales, ok := args.Get(0).(map[int]int); ok {
		return sales, args.Error(1)
	}
	return nil, args.Error(1)
}

type EventPublisher struct{ mock.Mock }

func (m *EventPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

type QRGenerator struct{ mock.Mock }

func (m *QRGenerator) Generate(orderNumber string) ([]byte, error) {
	args := m.Called(orderNumber)
	qr, _ := args.Get(0).([]byte)
	return qr, args.Error(1)
}

type NotificationService struct{ mock.Mock }

func (m *NotificationService) Send(orderID int, notificationType string) error {
	return m.Called(orderID, notificationType).Error(0)
}

func (m *NotificationService) History(orderID int) ([]domain.Notification, error) {
	args := m.Called(orderID)
	if notifications, ok := args.Get(0).([]domain.Notification); ok {
		return notifications, args.Error(1)
	}
	return nil, args.Error(1)
}
