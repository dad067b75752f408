package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"restaurant-pos/internal/domain"
)

var (
	ErrMissingFields  = errors.New("missing required fields")
	ErrMissingContact = errors.New("customer name, phone and delivery address are required")
	ErrInvalidStatus  = errors.New("invalid status. Must be one of: " + strings.Join(domain.OrderStatuses, ", "))
	ErrOrderNotFound  = errors.New("order not found")
)

const taxRate = 0.10

var defaultFeedStatuses = []string{domain.StatusPending, domain.StatusPreparing, domain.StatusReady}

type OrderService struct {
	repo      OrderRepository
	cache     StatusCache
	publisher EventPublisher
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, cache StatusCache, publisher EventPublisher, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, cache: cache, publisher: publisher, qrEncoder: qr}
}

// newOrderNumber builds ORD-<epoch-ms>-<4 hex>. The random suffix keeps
// numbers unique when two orders land in the same millisecond.
func newOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%04x", time.Now().UnixMilli(), rand.Intn(0x10000))
}

// Create validates the intake payload, computes totals and persists the
// order with its items in one transaction. The strict flag enforces the
// online checkout's contact requirements; the POS endpoint passes false.
func (s *OrderService) Create(ctx context.Context, req *domain.CreateOrderRequest, userID int, strict bool) (*domain.Order, error) {
	if req.OrderType == "" || len(req.Items) == 0 {
		return nil, ErrMissingFields
	}
	if strict && (req.CustomerName == "" || req.CustomerPhone == "" || req.DeliveryAddress == "") {
		return nil, ErrMissingContact
	}

	var subtotal float64
	items := make([]domain.OrderItem, len(req.Items))
	for i, item := range req.Items {
		item.TotalPrice = float64(item.Quantity) * item.UnitPrice
		subtotal += item.TotalPrice
		items[i] = item
	}
	tax := subtotal * taxRate

	order := &domain.Order{
		OrderNumber:     newOrderNumber(),
		OrderType:       req.OrderType,
		Status:          domain.StatusPending,
		Subtotal:        subtotal,
		Tax:             tax,
		Discount:        0,
		Total:           subtotal + tax,
		PaymentStatus:   "pending",
		PaymentMethod:   req.PaymentMethod,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		UserID:          userID,
		Items:           items,
	}

	if err := s.repo.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.OrderNumber); err == nil {
			_ = s.repo.SaveQRCode(order.ID, qr)
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
			Type:        domain.EventOrderCreated,
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			OrderType:   order.OrderType,
			Status:      order.Status,
			Total:       order.Total,
			Items:       order.Items,
			Timestamp:   time.Now(),
		}); err != nil {
			log.Printf("[orders] failed to publish order_created for %s: %v", order.OrderNumber, err)
		}
	}

	return order, nil
}

// Get accepts a numeric id or an order number.
func (s *OrderService) Get(ref string) (*domain.Order, error) {
	id, _ := strconv.Atoi(ref)
	order, err := s.repo.GetOrder(id, ref)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) List(status string, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.ListOrders(status, limit)
}

// Feed returns the kitchen display queue filtered to the given
// comma-separated status set, defaulting to the active statuses.
func (s *OrderService) Feed(statusCSV string, limit int) ([]domain.Order, error) {
	statuses := parseStatusFilter(statusCSV)
	if limit <= 0 {
		limit = 50
	}
	return s.repo.Feed(statuses, limit)
}

func parseStatusFilter(csv string) []string {
	if csv == "" {
		return defaultFeedStatuses
	}
	var statuses []string
	for _, s := range strings.Split(csv, ",") {
		if s = strings.TrimSpace(s); s != "" {
			statuses = append(statuses, s)
		}
	}
	if len(statuses) == 0 {
		return defaultFeedStatuses
	}
	return statuses
}

// UpdateStatus assigns the new status after validating it against the enum.
// There is no prior-state guard: any valid status may replace any other.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, status string) (*domain.Order, error) {
	if !domain.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.repo.UpdateStatus(orderID, status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	if status == domain.StatusCompleted {
		if err := s.repo.SetCompletedAt(orderID); err != nil {
			log.Printf("[orders] could not set completed_at for order %d: %v", orderID, err)
		} else {
			now := time.Now()
			order.CompletedAt = &now
		}
	}

	// Best-effort audit trail; a failed log never fails the update.
	if err := s.repo.LogStatusChange(orderID, status); err != nil {
		log.Printf("[orders] could not log status change for order %d: %v", orderID, err)
	}

	if s.cache != nil {
		_ = s.cache.InvalidateSnapshot(ctx, order.ID, order.OrderNumber)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
			Type:        domain.EventStatusChanged,
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			OrderType:   order.OrderType,
			Status:      status,
			Total:       order.Total,
			Timestamp:   time.Now(),
		}); err != nil {
			log.Printf("[orders] failed to publish status_changed for %s: %v", order.OrderNumber, err)
		}
	}

	return order, nil
}

// Track serves the customer tracking poll, answering from the redis
// snapshot when warm and falling back to the database.
func (s *OrderService) Track(ctx context.Context, ref string) (*domain.StatusSnapshot, error) {
	if s.cache != nil {
		if snap, err := s.cache.GetSnapshot(ctx, ref); err == nil && snap != nil {
			return snap, nil
		}
	}

	id, _ := strconv.Atoi(ref)
	snap, err := s.repo.StatusSnapshot(id, ref)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetSnapshot(ctx, snap)
	}
	return snap, nil
}

func (s *OrderService) QRCode(orderID int) ([]byte, error) {
	qr, orderNumber, err := s.repo.GetQRCode(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		regenerated, err := s.qrEncoder.Generate(orderNumber)
		if err != nil {
			return nil, err
		}
		if err := s.repo.SaveQRCode(orderID, regenerated); err != nil {
			log.Printf("[orders] could not cache regenerated QR for order %d: %v", orderID, err)
		}
		return regenerated, nil
	}
	return qr, nil
}

func (s *OrderService) ForUser(userID int) ([]domain.Order, error) {
	return s.repo.OrdersForUser(userID, 100)
}

func (s *OrderService) UserOrder(userID, orderID int) (*domain.Order, error) {
	order, err := s.repo.UserOrder(userID, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
