package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "tahfizhku_backend/internals/features/users/auth/controller"
	"tahfizhku_backend/internals/middlewares"
	authMiddleware "tahfizhku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	api := app.Group("/api/auth")

	// publik (dengan rate limit khusus)
	api.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	api.Post("/refresh-token", ctrl.Refresh)

	// butuh token valid
	protected := api.Group("/", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", ctrl.Logout)
	protected.Get("/me", ctrl.GetMe)
	protected.Post("/change-password", ctrl.ChangePassword)
}
