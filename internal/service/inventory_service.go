package service

import (
	"database/sql"
	"errors"

	"restaurant-pos/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

type InventoryService struct {
	repo InventoryRepository
}

func NewInventoryService(repo InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

// Adjust applies the signed delta as-is. Stock is allowed to go negative;
// the dashboard surfaces it through the low-stock report instead.
func (s *InventoryService) Adjust(productID, delta int) (*domain.InventoryItem, error) {
	if productID <= 0 {
		return nil, ErrMissingFields
	}
	item, err := s.repo.AdjustStock(productID, delta)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) LowStock() ([]domain.InventoryItem, error) {
	return s.repo.LowStock()
}

var _ InventoryServiceInterface = (*InventoryService)(nil)
