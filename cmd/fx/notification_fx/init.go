package notification_fx

import (
	"log"

	"go.uber.org/fx"

	"loyalty/internal/config"
	"loyalty/internal/repositories"
	"loyalty/internal/services"
)

var Module = fx.Provide(
	providePushProvider, provideNotificationService)

func providePushProvider(cfg *config.Config) services.PushProvider {
	provider, err := services.NewFCMPushProvider(cfg.FCM)
	if err != nil {
		log.Fatalf("Failed to initialize FCM push provider: %v", err)
	}
	return provider
}

func provideNotificationService(provider services.PushProvider, customerRepo repositories.CustomerRepository) services.NotificationServiceInterface {
	return services.NewNotificationService(provider, customerRepo)
}
