package config_fx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"loyalty/internal/config"
)

var Module = fx.Provide(provideConfig)

func provideConfig() *config.Config {
	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}
