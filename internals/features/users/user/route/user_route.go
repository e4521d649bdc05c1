package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "tahfizhku_backend/internals/features/users/user/controller"
	helperAuth "tahfizhku_backend/internals/helpers/auth"
	authMiddleware "tahfizhku_backend/internals/middlewares/auth"
)

// UserRoutes: profil milik sendiri (semua role login)
func UserRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	user := app.Group("/api/user", authMiddleware.AuthMiddleware(db))
	user.Get("/profile", ctrl.GetProfile)
	user.Patch("/profile", ctrl.UpdateProfile)
	user.Delete("/profile", ctrl.DeleteProfile)
	user.Get("/credits", ctrl.GetMyCredits)

	// admin: grant kredit siswa
	memberCtrl := userController.NewMemberController(db)
	user.Patch("/credits",
		authMiddleware.OnlyRoles("❌ Hanya admin yang boleh mengubah kredit", helperAuth.RoleAdmin),
		memberCtrl.UpdateCredits)
}

// AdminMemberRoutes: manajemen siswa oleh admin
func AdminMemberRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := userController.NewMemberController(db)

	admin := app.Group("/api/admin",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("❌ Hanya admin yang boleh mengelola member", helperAuth.RoleAdmin),
	)

	admin.Get("/members", ctrl.ListMembers)
	admin.Post("/members", ctrl.CreateMember)
	admin.Get("/members/:id", ctrl.GetMember)
	admin.Patch("/members/:id", ctrl.UpdateMember)
	admin.Delete("/members/:id", ctrl.DeleteMember)
	admin.Patch("/members/:id/verify", ctrl.VerifyMember)
}
