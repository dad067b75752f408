package domain

import "time"

// Kafka event types on the order-events topic.
const (
	EventOrderCreated  = "order_created"
	EventStatusChanged = "status_changed"
)

type OrderEvent struct {
	Type        string      `json:"type"`
	OrderID     int         `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	OrderType   string      `json:"order_type"`
	Status      string      `json:"status"`
	Total       float64     `json:"total"`
	Items       []OrderItem `json:"items,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
}
