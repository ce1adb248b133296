package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"loyalty/internal/config"
	"loyalty/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {

	// TranslateError lets callers detect unique-constraint races through
	// gorm.ErrDuplicatedKey instead of driver-specific codes.
	connectionPool, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		TranslateError: true,
	})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(
		&db_models.Plan{},
		&db_models.Business{},
		&db_models.Customer{},
		&db_models.Visit{},
		&db_models.RewardHistoryItem{},
		&db_models.Wallet{},
	); err != nil {
		log.Printf("Error migrating schema: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
