package controllers_fx

import (
	"go.uber.org/fx"

	"loyalty/internal/api/controllers"
	"loyalty/internal/config"
	"loyalty/internal/services"
)

var Module = fx.Provide(
	controllers.NewScanController,
	controllers.NewCustomerController,
	controllers.NewAuthController,
	controllers.NewNotificationController,
	controllers.NewAdminController,
	provideWalletController,
)

func provideWalletController(walletService services.WalletServiceInterface, cfg *config.Config) *controllers.WalletController {
	return controllers.NewWalletController(walletService, cfg.Server.PublicOrigin)
}
