package controllers_fx

import (
	"go.uber.org/fx"

	"botic/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewAppController),
	fx.Provide(controllers.NewSubscriptionController))
