package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"botic/cmd/fx/apps_fx"
	"botic/cmd/fx/controllers_fx"
	"botic/cmd/fx/db_fx"
	"botic/cmd/fx/mail_fx"
	"botic/cmd/fx/memcache_fx"
	"botic/cmd/fx/plans_fx"
	"botic/cmd/fx/subscriptions_fx"
	"botic/cmd/fx/users_fx"
	"botic/internal/api/controllers"
	"botic/internal/infra"
	"botic/pkg/middleware"
	"botic/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		users_fx.Module,
		plans_fx.Module,
		apps_fx.Module,
		subscriptions_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(PrepareDatabase),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func PrepareDatabase(db *gorm.DB) {
	if err := infra.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := infra.SeedDefaultPlans(db); err != nil {
		log.Fatalf("Failed to seed default plans: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on :%s", os.Getenv("PORT"))
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	userController *controllers.UserController,
	planController *controllers.PlanController,
	appController *controllers.AppController,
	subscriptionController *controllers.SubscriptionController) *gin.Engine {

	utils.UseJSONFieldNames()

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, userController, planController, appController, subscriptionController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	userController *controllers.UserController,
	planController *controllers.PlanController,
	appController *controllers.AppController,
	subscriptionController *controllers.SubscriptionController) {

	v1 := r.Group("/api/v1")

	v1.POST("/signup", userController.Signup)
	v1.POST("/login", userController.Login)
	v1.POST("/logout", userController.Logout)
	v1.POST("/password-reset", userController.RequestPasswordReset)
	v1.POST("/password-reset/confirm", userController.ConfirmPasswordReset)

	users := v1.Group("/users", middleware.JWTAuthMiddleware())
	users.GET("/me", userController.Me)
	users.DELETE("/me", userController.DeleteMe)

	// Plans carry no ownership and no auth gate.
	plans := v1.Group("/plan")
	plans.GET("", planController.List)
	plans.POST("", planController.Create)
	plans.GET("/:id", planController.Get)
	plans.PUT("/:id", planController.Update)
	plans.PATCH("/:id", planController.Patch)
	plans.DELETE("/:id", planController.Delete)

	apps := v1.Group("/app", middleware.JWTAuthMiddleware())
	apps.GET("", appController.List)
	apps.POST("", appController.Create)
	apps.GET("/:id", appController.Get)
	apps.PUT("/:id", appController.Update)
	apps.PATCH("/:id", appController.Patch)
	apps.DELETE("/:id", appController.Delete)

	subs := v1.Group("/subscription", middleware.JWTAuthMiddleware())
	subs.GET("", subscriptionController.List)
	subs.POST("", subscriptionController.Create)
	subs.GET("/:id", subscriptionController.Get)
	subs.PUT("/:id", subscriptionController.Update)
	subs.PATCH("/:id", subscriptionController.Patch)
	subs.DELETE("/:id", subscriptionController.Delete)
}
