package service

import (
	"context"
	"math"
	"sort"
	"time"

	"restaurant-pos/internal/domain"
)

type AnalyticsService struct {
	repo  AnalyticsRepository
	cache SalesCache
}

func NewAnalyticsService(repo AnalyticsRepository, cache SalesCache) *AnalyticsService {
	return &AnalyticsService{repo: repo, cache: cache}
}

func (s *AnalyticsService) Today() (*domain.SalesSummary, error) {
	return s.repo.TodaySales()
}

// OrderTypes returns a stat per channel, always covering all four known
// types even when a channel has no orders yet.
func (s *AnalyticsService) OrderTypes() ([]domain.OrderTypeStat, error) {
	counts, err := s.repo.OrderTypeCounts()
	if err != nil {
		return nil, err
	}

	total := 0
	for _, count := range counts {
		total += count
	}

	stats := make([]domain.OrderTypeStat, 0, len(domain.OrderTypes))
	for _, orderType := range domain.OrderTypes {
		count := counts[orderType]
		var pct float64
		if total > 0 {
			pct = math.Round(float64(count) / float64(total) * 100)
		}
		stats = append(stats, domain.OrderTypeStat{
			OrderType:  orderType,
			Count:      count,
			Percentage: pct,
		})
	}
	return stats, nil
}

// TopProducts prefers today's redis ranking maintained by the event
// consumer, and falls back to a full SQL aggregation when the ranking
// is cold.
func (s *AnalyticsService) TopProducts(ctx context.Context, limit int) ([]domain.TopProduct, error) {
	if limit <= 0 {
		limit = 5
	}

	if s.cache != nil {
		day := time.Now().Format("2006-01-02")
		if sales, err := s.cache.TopProductSales(ctx, day, limit); err == nil && len(sales) > 0 {
			var products []domain.TopProduct
			for productID, sold := range sales {
				name, revenue, err := s.repo.TopProductStat(productID)
				if err != nil {
					continue
				}
				products = append(products, domain.TopProduct{
					ProductID: productID,
					Name:      name,
					Sales:     sold,
					Revenue:   revenue,
				})
			}
			if len(products) > 0 {
				sort.Slice(products, func(i, j int) bool { return products[i].Sales > products[j].Sales })
				return products, nil
			}
		}
	}

	return s.repo.TopProducts(limit)
}

var _ AnalyticsServiceInterface = (*AnalyticsService)(nil)
