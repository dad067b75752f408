package service

import (
	"errors"

	"restaurant-pos/internal/domain"
)

var ErrInvalidProduct = errors.New("product name and a positive price are required")

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) List() ([]domain.Product, error) {
	return s.repo.ListProducts()
}

func (s *ProductService) Create(p *domain.Product) error {
	if p.Name == "" || p.Price <= 0 {
		return ErrInvalidProduct
	}
	return s.repo.CreateProduct(p)
}

func (s *ProductService) Update(p *domain.Product) error {
	return s.repo.UpdateProduct(p)
}

// starterCatalog is the fried chicken menu seeded into an empty database.
var starterCatalog = []domain.Product{
	{Name: "Crispy Chicken Wings", Description: "Golden fried chicken wings", Category: "Wings", Price: 45000},
	{Name: "Spicy Wings", Description: "Spicy fried chicken wings", Category: "Wings", Price: 48000},
	{Name: "Chicken Legs", Description: "Tender fried chicken legs", Category: "Legs", Price: 55000},
	{Name: "Chicken Breast", Description: "Crispy fried chicken breast", Category: "Breast", Price: 60000},
	{Name: "Whole Chicken", Description: "Whole fried chicken", Category: "Whole", Price: 150000},
	{Name: "Chicken Combo", Description: "Mixed chicken combo pack", Category: "Combos", Price: 120000},
	{Name: "Fries", Description: "Golden crispy fries", Category: "Sides", Price: 25000},
	{Name: "Coleslaw", Description: "Fresh coleslaw side", Category: "Sides", Price: 20000},
}

// Seed inserts the starter catalog when the products table is empty and
// returns the number of products inserted.
func (s *ProductService) Seed() (int, error) {
	count, err := s.repo.CountProducts()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for i := range starterCatalog {
		p := starterCatalog[i]
		if err := s.repo.CreateProduct(&p); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

var _ ProductServiceInterface = (*ProductService)(nil)
