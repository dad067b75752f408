package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"restaurant-pos/internal/domain"

	"github.com/segmentio/kafka-go"
)

// Consumer aggregates order events into redis rankings and fires the
// customer notification for status changes.
type Consumer struct {
	Reader        *kafka.Reader
	Orders        OrderRepository
	Cache         StatusCache
	Sales         SalesCache
	Notifications NotificationServiceInterface
}

func NewConsumer(reader *kafka.Reader, orders OrderRepository, cache StatusCache, sales SalesCache, notifications NotificationServiceInterface) *Consumer {
	return &Consumer{
		Reader:        reader,
		Orders:        orders,
		Cache:         cache,
		Sales:         sales,
		Notifications: notifications,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting order event consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.Process(ctx, event)
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.OrderEvent) {
	switch event.Type {
	case domain.EventOrderCreated:
		c.processOrderCreated(ctx, event)
	case domain.EventStatusChanged:
		c.processStatusChanged(ctx, event)
	default:
		log.Printf("Skipping unknown event type %q", event.Type)
	}
}

func (c *Consumer) processOrderCreated(ctx context.Context, event domain.OrderEvent) {
	log.Printf("Processing order_created: order=%s total=%.2f", event.OrderNumber, event.Total)

	day := event.Timestamp.Format("2006-01-02")
	if day == "0001-01-01" {
		day = time.Now().Format("2006-01-02")
	}

	for _, item := range event.Items {
		if err := c.Sales.BumpProductSales(ctx, day, item.ProductID, item.Quantity); err != nil {
			log.Printf("Error updating product sales ranking: %v", err)
		}
	}
	if err := c.Sales.AddRevenue(ctx, day, event.Total); err != nil {
		log.Printf("Error updating revenue counter: %v", err)
	}
}

func (c *Consumer) processStatusChanged(ctx context.Context, event domain.OrderEvent) {
	log.Printf("Processing status_changed: order=%s status=%s", event.OrderNumber, event.Status)

	snap, err := c.Orders.StatusSnapshot(event.OrderID, event.OrderNumber)
	if err != nil {
		log.Printf("Error refreshing status snapshot for order %d: %v", event.OrderID, err)
	} else if err := c.Cache.SetSnapshot(ctx, snap); err != nil {
		log.Printf("Error caching status snapshot for order %d: %v", event.OrderID, err)
	}

	notificationType := NotificationTypeForStatus(event.Status)
	if notificationType == "" {
		return
	}
	if err := c.Notifications.Send(event.OrderID, notificationType); err != nil {
		log.Printf("Error sending notification for order %d: %v", event.OrderID, err)
	}
}
