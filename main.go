package main

import (
	"context"
	"time"

	"restaurant-pos/config"
	httpapi "restaurant-pos/internal/api/http"
	"restaurant-pos/internal/auth"
	"restaurant-pos/internal/service"
	"restaurant-pos/internal/storage"
)

const orderEventsTopic = "order-events"

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(orderEventsTopic)
	defer kafkaWriter.Close()

	kafkaReader := config.NewKafkaReader(orderEventsTopic, "pos-aggregator")
	defer kafkaReader.Close()

	repo := storage.NewPostgresRepository(db)
	cache := storage.NewRedisCache(rdb, 30*time.Second)
	publisher := storage.NewKafkaPublisher(kafkaWriter)
	tokens := auth.NewTokenCodec(config.AuthSecret())
	qr := service.DefaultQRGenerator{BaseURL: config.PublicBaseURL()}

	orderSvc := service.NewOrderService(repo, cache, publisher, qr)
	productSvc := service.NewProductService(repo)
	inventorySvc := service.NewInventoryService(repo)
	userSvc := service.NewUserService(repo, tokens)
	notificationSvc := service.NewNotificationService(repo)
	paymentSvc := service.NewPaymentService(repo)
	analyticsSvc := service.NewAnalyticsService(repo, cache)

	consumer := service.NewConsumer(kafkaReader, repo, cache, cache, notificationSvc)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go consumer.Start(ctx)

	handler := httpapi.NewHandler(orderSvc, productSvc, inventorySvc, userSvc,
		notificationSvc, paymentSvc, analyticsSvc, tokens)

	httpapi.StartServer(config.ServerAddr(), httpapi.NewRouter(handler))
}
