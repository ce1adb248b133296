package mailing_fx

import (
	"go.uber.org/fx"

	"loyalty/internal/config"
	"loyalty/internal/services"
)

var Module = fx.Provide(provideMailingListService)

func provideMailingListService(cfg *config.Config) services.MailingListServiceInterface {
	return services.NewMailchimpService(cfg.Mailing)
}
