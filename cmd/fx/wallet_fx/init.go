package wallet_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"loyalty/internal/repositories"
	"loyalty/internal/services"
)

var Module = fx.Provide(
	provideWalletRepo, provideWalletService)

func provideWalletRepo(db *gorm.DB) repositories.WalletRepository {
	return repositories.NewWalletRepository(db)
}

func provideWalletService(
	customerRepo repositories.CustomerRepository,
	businessRepo repositories.BusinessRepository,
	walletRepo repositories.WalletRepository,
) services.WalletServiceInterface {
	return services.NewWalletService(customerRepo, businessRepo, walletRepo)
}
