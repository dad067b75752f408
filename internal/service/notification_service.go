package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"restaurant-pos/internal/domain"
)

var ErrUnknownNotification = errors.New("unknown notification type")

// Notification templates per order lifecycle stage.
var notificationMessages = map[string]string{
	"order_confirmed":  "Your order %s has been confirmed. We're starting to prepare it!",
	"order_preparing":  "We're now preparing your order %s. You'll get an update soon!",
	"order_ready":      "Great news! Your order %s is ready for pickup/delivery.",
	"order_delivering": "Your order %s is on the way to you! Check tracking for updates.",
	"order_completed":  "Your order %s has been delivered. Thank you for your order!",
	"order_cancelled":  "Your order %s has been cancelled. Please contact us for details.",
}

// NotificationTypeForStatus maps a new order status to the notification
// that announces it.
func NotificationTypeForStatus(status string) string {
	switch status {
	case domain.StatusPending:
		return "order_confirmed"
	case domain.StatusPreparing:
		return "order_preparing"
	case domain.StatusReady:
		return "order_ready"
	case domain.StatusDelivering:
		return "order_delivering"
	case domain.StatusCompleted:
		return "order_completed"
	case domain.StatusCancelled:
		return "order_cancelled"
	default:
		return ""
	}
}

func RenderNotification(notificationType, orderNumber string) (string, bool) {
	template, ok := notificationMessages[notificationType]
	if !ok {
		return "", false
	}
	return fmt.Sprintf(template, orderNumber), true
}

type NotificationService struct {
	repo NotificationRepository
}

func NewNotificationService(repo NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// Send writes a notification row per available contact channel. Actual
// delivery is a stub: the message is logged, not transmitted.
func (s *NotificationService) Send(orderID int, notificationType string) error {
	message, ok := RenderNotification(notificationType, "")
	if !ok {
		return ErrUnknownNotification
	}

	contact, err := s.repo.OrderContact(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	message, _ = RenderNotification(notificationType, contact.OrderNumber)

	sent := 0
	if contact.Email != "" {
		if err := s.record(contact, notificationType, "email", contact.Email, message); err == nil {
			sent++
		}
	}
	if contact.Phone != "" {
		if err := s.record(contact, notificationType, "sms", contact.Phone, message); err == nil {
			sent++
		}
	}
	if sent == 0 {
		log.Printf("[notifications] no contact channel for order %d, nothing sent", orderID)
	}
	return nil
}

func (s *NotificationService) record(contact *domain.OrderContact, notificationType, channel, recipient, message string) error {
	n := &domain.Notification{
		OrderID:    contact.OrderID,
		CustomerID: contact.CustomerID,
		Type:       notificationType,
		Channel:    channel,
		Recipient:  recipient,
		Message:    message,
	}
	if err := s.repo.InsertNotification(n); err != nil {
		log.Printf("[notifications] failed to record %s notification for order %d: %v",
			channel, contact.OrderID, err)
		return err
	}
	log.Printf("[notifications] %s queued to %s: %s", channel, recipient, message)
	return nil
}

func (s *NotificationService) History(orderID int) ([]domain.Notification, error) {
	return s.repo.NotificationsForOrder(orderID, 20)
}

var _ NotificationServiceInterface = (*NotificationService)(nil)
