package scan_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"loyalty/internal/config"
	"loyalty/internal/models/db_models"
	"loyalty/internal/repositories"
	"loyalty/internal/services"
)

var Module = fx.Provide(
	provideScanRepo, provideRewardPolicy, provideScanService)

func provideScanRepo(db *gorm.DB) repositories.ScanRepository {
	return repositories.NewScanRepository(db)
}

func provideRewardPolicy(cfg *config.Config) services.RewardPolicy {
	return services.RewardPolicy{
		StampThreshold: cfg.Reward.StampThreshold,
		AccrueUntyped:  cfg.Reward.AccrueUntyped,
	}
}

func provideScanService(
	scanRepo repositories.ScanRepository,
	businessRepo repositories.BusinessRepository,
	notifications services.NotificationServiceInterface,
	mailing services.MailingListServiceInterface,
	policy services.RewardPolicy,
	cfg *config.Config,
) services.ScanServiceInterface {
	return services.NewScanService(
		scanRepo,
		businessRepo,
		notifications,
		mailing,
		policy,
		db_models.RewardType(cfg.Reward.DefaultWalletRewardType),
	)
}
