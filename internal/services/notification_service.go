package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"loyalty/internal/metrics"
	"loyalty/internal/repositories"
	"loyalty/pkg/utils"
)

type NotificationServiceInterface interface {
	// Notify is the fire-and-forget side channel used by the scan path. It
	// returns immediately; provider failures are logged, never surfaced.
	Notify(token, title, body string)

	SendToCustomer(ctx context.Context, customerID uuid.UUID) error
	Broadcast(ctx context.Context, message string) (sent int, failed int, err error)
	SendTemplate(ctx context.Context, businessID uuid.UUID, templateID int) (sent int, failed int, err error)
}

type NotificationService struct {
	provider     PushProvider
	customerRepo repositories.CustomerRepository
}

func NewNotificationService(provider PushProvider, customerRepo repositories.CustomerRepository) NotificationServiceInterface {
	return &NotificationService{
		provider:     provider,
		customerRepo: customerRepo,
	}
}

var broadcastTemplates = map[int]struct{ Title, Body string }{
	1: {"🍕 Happy Hour!", "Buy 1 Get 1 Free Pizza – Today Only!"},
	2: {"🎉 Holiday Deal", "50% off everything this weekend!"},
	3: {"⏰ New Hours", "We are now open till 11 PM!"},
	4: {"🔥 Limited Offer", "Free drink with every meal – today only!"},
}

func (n *NotificationService) Notify(token, title, body string) {
	go func() {
		// Detached from the request: the provider bounds its own deadline.
		if err := n.provider.Send(context.Background(), token, title, body); err != nil {
			metrics.DispatchFailures.WithLabelValues("push").Inc()
			log.Printf("FCM error: %v", err)
		}
	}()
}

func (n *NotificationService) SendToCustomer(ctx context.Context, customerID uuid.UUID) error {
	customer, err := n.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if customer == nil || customer.FCMToken == nil {
		return utils.ErrCustomerNotFound
	}

	return n.provider.Send(ctx, *customer.FCMToken, "🎁 Loyalty Reward!", "You just earned points!")
}

func (n *NotificationService) Broadcast(ctx context.Context, message string) (int, int, error) {
	customers, err := n.customerRepo.ListWithTokens(ctx, nil)
	if err != nil {
		return 0, 0, utils.ErrDatabaseError
	}

	sent, failed := 0, 0
	for _, customer := range customers {
		if err := n.provider.Send(ctx, *customer.FCMToken, "📣 Announcement!", message); err != nil {
			log.Printf("Broadcast push failed for %s: %v", customer.ID, err)
			failed++
			continue
		}
		sent++
	}
	return sent, failed, nil
}

func (n *NotificationService) SendTemplate(ctx context.Context, businessID uuid.UUID, templateID int) (int, int, error) {
	template, ok := broadcastTemplates[templateID]
	if !ok {
		return 0, 0, utils.ErrValidationFailed
	}

	customers, err := n.customerRepo.ListWithTokens(ctx, &businessID)
	if err != nil {
		return 0, 0, utils.ErrDatabaseError
	}

	sent, failed := 0, 0
	for _, customer := range customers {
		if err := n.provider.Send(ctx, *customer.FCMToken, template.Title, template.Body); err != nil {
			log.Printf("Template push failed for %s: %v", customer.ID, err)
			failed++
			continue
		}
		sent++
	}
	return sent, failed, nil
}
