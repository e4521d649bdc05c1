package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactController "tahfizhku_backend/internals/features/contact/controller"
	helperAuth "tahfizhku_backend/internals/helpers/auth"
	authMiddleware "tahfizhku_backend/internals/middlewares/auth"
)

func ContactRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := contactController.NewContactInfoController(db)

	// publik
	app.Get("/api/contact", ctrl.GetContactInfo)

	// admin
	app.Put("/api/admin/contact",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("❌ Hanya admin yang boleh mengubah info kontak", helperAuth.RoleAdmin),
		ctrl.UpdateContactInfo)
}
