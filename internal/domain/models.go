package domain

import "time"

// Order statuses, in kitchen display priority order.
const (
	StatusPending    = "pending"
	StatusPreparing  = "preparing"
	StatusReady      = "ready"
	StatusDelivering = "delivering"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

var OrderStatuses = []string{
	StatusPending, StatusPreparing, StatusReady,
	StatusDelivering, StatusCompleted, StatusCancelled,
}

func ValidStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

var OrderTypes = []string{"dine-in", "takeout", "delivery", "online"}

type Order struct {
	ID              int         `json:"id"`
	OrderNumber     string      `json:"order_number"`
	OrderType       string      `json:"order_type"`
	Status          string      `json:"status"`
	Subtotal        float64     `json:"subtotal"`
	Tax             float64     `json:"tax"`
	Discount        float64     `json:"discount"`
	Total           float64     `json:"total"`
	PaymentStatus   string      `json:"payment_status"`
	PaymentMethod   string      `json:"payment_method,omitempty"`
	CustomerName    string      `json:"customer_name,omitempty"`
	CustomerPhone   string      `json:"customer_phone,omitempty"`
	DeliveryAddress string      `json:"delivery_address,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	UserID          int         `json:"user_id,omitempty"`
	ItemCount       int         `json:"item_count"`
	ItemNames       string      `json:"item_names,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`
	Items           []OrderItem `json:"items"`
}

type OrderItem struct {
	ID                  int     `json:"id,omitempty"`
	OrderID             int     `json:"order_id,omitempty"`
	ProductID           int     `json:"product_id"`
	ProductName         string  `json:"product_name,omitempty"`
	ProductCategory     string  `json:"product_category,omitempty"`
	Quantity            int     `json:"quantity"`
	UnitPrice           float64 `json:"unit_price"`
	TotalPrice          float64 `json:"total_price"`
	ImageURL            string  `json:"image_url,omitempty"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
}

// CreateOrderRequest is the intake payload shared by the online checkout
// and POS endpoints. The two endpoints enforce different required fields.
type CreateOrderRequest struct {
	OrderType       string      `json:"order_type"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	DeliveryAddress string      `json:"delivery_address"`
	PaymentMethod   string      `json:"payment_method"`
	Notes           string      `json:"notes"`
	Items           []OrderItem `json:"items"`
}

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type InventoryItem struct {
	ID               int       `json:"id"`
	ProductID        int       `json:"product_id"`
	ProductName      string    `json:"product_name,omitempty"`
	Category         string    `json:"category,omitempty"`
	QuantityOnHand   int       `json:"quantity_on_hand"`
	QuantityReserved int       `json:"quantity_reserved"`
	MinimumStock     int       `json:"minimum_stock"`
	ReorderPoint     int       `json:"reorder_point"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Notification struct {
	ID         int       `json:"id"`
	OrderID    int       `json:"order_id"`
	CustomerID int       `json:"customer_id,omitempty"`
	Type       string    `json:"type"`
	Channel    string    `json:"channel"`
	Recipient  string    `json:"recipient,omitempty"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderContact is the customer contact data used when notifying about an
// order. Account fields win over the snapshot taken at order time.
type OrderContact struct {
	OrderID     int
	OrderNumber string
	CustomerID  int
	Name        string
	Email       string
	Phone       string
}

type Transaction struct {
	ID            int       `json:"id"`
	OrderID       int       `json:"order_id"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// StatusSnapshot is the small payload the customer tracking page polls for.
type StatusSnapshot struct {
	ID            int       `json:"id"`
	OrderNumber   string    `json:"order_number"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type SalesSummary struct {
	TotalOrders       int     `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
	CompletedOrders   int     `json:"completed_orders"`
}

type OrderTypeStat struct {
	OrderType  string  `json:"order_type"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type TopProduct struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Sales     int     `json:"sales"`
	Revenue   float64 `json:"revenue"`
}
