package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"loyalty/internal/config"
	"loyalty/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
