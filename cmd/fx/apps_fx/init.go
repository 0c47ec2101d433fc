package apps_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"botic/internal/repositories"
	"botic/internal/services"
)

var Module = fx.Provide(
	provideAppService, provideAppRepo)

func provideAppRepo(db *gorm.DB) repositories.IAppRepository {
	return repositories.NewAppRepository(db)
}

func provideAppService(
	appRepo repositories.IAppRepository,
	subRepo repositories.ISubscriptionRepository,
) services.AppServiceInterface {
	return services.NewAppService(appRepo, subRepo)
}
