package service

import (
	"context"

	"restaurant-pos/internal/domain"
)

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(id int, orderNumber string) (*domain.Order, error)
	ListOrders(status string, limit int) ([]domain.Order, error)
	Feed(statuses []string, limit int) ([]domain.Order, error)
	UpdateStatus(orderID int, status string) (*domain.Order, error)
	SetCompletedAt(orderID int) error
	LogStatusChange(orderID int, status string) error
	StatusSnapshot(id int, orderNumber string) (*domain.StatusSnapshot, error)
	OrdersForUser(userID, limit int) ([]domain.Order, error)
	UserOrder(userID, orderID int) (*domain.Order, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, string, error)
}

type ProductRepository interface {
	CreateProduct(p *domain.Product) error
	ListProducts() ([]domain.Product, error)
	GetProduct(id int) (*domain.Product, error)
	UpdateProduct(p *domain.Product) error
	CountProducts() (int, error)
}

type InventoryRepository interface {
	AdjustStock(productID, delta int) (*domain.InventoryItem, error)
	LowStock() ([]domain.InventoryItem, error)
}

type UserRepository interface {
	CreateUser(u *domain.User) error
	UserByEmail(email string) (*domain.User, error)
	UserByID(id int) (*domain.User, error)
	EmailExists(email string) (bool, error)
	UpdateProfile(u *domain.User) error
}

type NotificationRepository interface {
	InsertNotification(n *domain.Notification) error
	NotificationsForOrder(orderID, limit int) ([]domain.Notification, error)
	OrderContact(orderID int) (*domain.OrderContact, error)
}

type PaymentRepository interface {
	MarkPaid(orderID int) (*domain.Order, error)
	InsertTransaction(t *domain.Transaction) error
}

type AnalyticsRepository interface {
	TodaySales() (*domain.SalesSummary, error)
	OrderTypeCounts() (map[string]int, error)
	TopProducts(limit int) ([]domain.TopProduct, error)
	TopProductStat(productID int) (string, float64, error)
}

type StatusCache interface {
	GetSnapshot(ctx context.Context, ref string) (*domain.StatusSnapshot, error)
	SetSnapshot(ctx context.Context, snap *domain.StatusSnapshot) error
	InvalidateSnapshot(ctx context.Context, id int, orderNumber string) error
}

type SalesCache interface {
	BumpProductSales(ctx context.Context, day string, productID, quantity int) error
	AddRevenue(ctx context.Context, day string, amount float64) error
	TopProductSales(ctx context.Context, day string, limit int) (map[int]int, error)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderNumber string) ([]byte, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, req *domain.CreateOrderRequest, userID int, strict bool) (*domain.Order, error)
	Get(ref string) (*domain.Order, error)
	List(status string, limit int) ([]domain.Order, error)
	Feed(statusCSV string, limit int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int, status string) (*domain.Order, error)
	Track(ctx context.Context, ref string) (*domain.StatusSnapshot, error)
	QRCode(orderID int) ([]byte, error)
	ForUser(userID int) ([]domain.Order, error)
	UserOrder(userID, orderID int) (*domain.Order, error)
}

type ProductServiceInterface interface {
	List() ([]domain.Product, error)
	Create(p *domain.Product) error
	Update(p *domain.Product) error
	Seed() (int, error)
}

type InventoryServiceInterface interface {
	Adjust(productID, delta int) (*domain.InventoryItem, error)
	LowStock() ([]domain.InventoryItem, error)
}

type UserServiceInterface interface {
	Register(name, email, phone, password string) error
	Login(email, password string) (*domain.User, string, error)
	Profile(userID int) (*domain.User, error)
	UpdateProfile(userID int, name, phone string) (*domain.User, error)
}

type NotificationServiceInterface interface {
	Send(orderID int, notificationType string) error
	History(orderID int) ([]domain.Notification, error)
}

type PaymentServiceInterface interface {
	Process(orderID int, amount float64) (*domain.Order, error)
}

type AnalyticsServiceInterface interface {
	Today() (*domain.SalesSummary, error)
	OrderTypes() ([]domain.OrderTypeStat, error)
	TopProducts(ctx context.Context, limit int) ([]domain.TopProduct, error)
}
