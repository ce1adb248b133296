package sweep_fx

import (
	"go.uber.org/fx"

	"loyalty/internal/config"
	"loyalty/internal/repositories"
	"loyalty/internal/services"
)

var Module = fx.Provide(provideSweepService)

func provideSweepService(customerRepo repositories.CustomerRepository, provider services.PushProvider, cfg *config.Config) services.SweepServiceInterface {
	return services.NewSweepService(customerRepo, provider, cfg.Sweep)
}
