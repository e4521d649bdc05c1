package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reviewController "tahfizhku_backend/internals/features/reviews/controller"
	helperAuth "tahfizhku_backend/internals/helpers/auth"
	authMiddleware "tahfizhku_backend/internals/middlewares/auth"
)

func ReviewRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := reviewController.NewReviewController(db)

	// publik
	reviews := app.Group("/api/reviews")
	reviews.Get("/", ctrl.ListPublicReviews)
	reviews.Post("/", ctrl.CreateReview)

	// admin: moderasi
	admin := app.Group("/api/admin/reviews",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("❌ Hanya admin yang boleh memoderasi review", helperAuth.RoleAdmin),
	)
	admin.Get("/", ctrl.ListAllReviews)
	admin.Get("/:id", ctrl.GetReview)
	admin.Patch("/:id", ctrl.ModerateReview)
	admin.Delete("/:id", ctrl.DeleteReview)
}
