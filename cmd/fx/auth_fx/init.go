package auth_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"loyalty/internal/repositories"
	"loyalty/internal/services"
)

var Module = fx.Provide(
	provideBusinessRepo, provideBusinessService)

func provideBusinessRepo(db *gorm.DB) repositories.BusinessRepository {
	return repositories.NewBusinessRepository(db)
}

func provideBusinessService(businessRepo repositories.BusinessRepository) services.BusinessServiceInterface {
	return services.NewBusinessService(businessRepo)
}
