package subscriptions_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"botic/internal/repositories"
	"botic/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionService, provideSubscriptionRepo)

func provideSubscriptionRepo(db *gorm.DB) repositories.ISubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(
	subRepo repositories.ISubscriptionRepository,
	planRepo repositories.IPlanRepository,
	appRepo repositories.IAppRepository,
) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subRepo, planRepo, appRepo)
}
