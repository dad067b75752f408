package service

import (
	"database/sql"
	"errors"
	"log"

	"restaurant-pos/internal/domain"
)

type PaymentService struct {
	repo PaymentRepository
}

func NewPaymentService(repo PaymentRepository) *PaymentService {
	return &PaymentService{repo: repo}
}

// Process marks the order paid and records the transaction. Payment capture
// itself is a stub; no gateway is involved.
func (s *PaymentService) Process(orderID int, amount float64) (*domain.Order, error) {
	if orderID <= 0 || amount <= 0 {
		return nil, ErrMissingFields
	}

	log.Printf("[payments] processing payment: order_id=%d amount=%.2f", orderID, amount)

	order, err := s.repo.MarkPaid(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.repo.InsertTransaction(&domain.Transaction{
		OrderID:       orderID,
		Amount:        amount,
		PaymentMethod: "pos_payment",
		Status:        "completed",
	}); err != nil {
		log.Printf("[payments] failed to record transaction for order %d: %v", orderID, err)
	}

	return order, nil
}

var _ PaymentServiceInterface = (*PaymentService)(nil)
