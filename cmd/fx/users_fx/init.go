package users_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"botic/internal/repositories"
	"botic/internal/services"
	mem "botic/pkg/memcache"
)

var Module = fx.Provide(
	provideUserService, provideUserRepo)

func provideUserRepo(db *gorm.DB) repositories.IUserRepository {
	return repositories.NewUserRepository(db)
}

func provideUserService(
	userRepo repositories.IUserRepository,
	appRepo repositories.IAppRepository,
	mailService services.IMailService,
	memcache mem.ResetTokenStore,
) services.UserServiceInterface {
	return services.NewUserService(userRepo, appRepo, mailService, memcache)
}
