package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupController "tahfizhku_backend/internals/features/lessons/groups/controller"
	helperAuth "tahfizhku_backend/internals/helpers/auth"
	authMiddleware "tahfizhku_backend/internals/middlewares/auth"
)

func LessonGroupRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := groupController.NewLessonGroupController(db)

	group := app.Group("/api/group", authMiddleware.AuthMiddleware(db))

	// semua role login boleh lihat
	group.Get("/", ctrl.ListGroups)
	group.Get("/:id", ctrl.GetGroup)

	// mutasi grup: admin & pengajar
	manage := group.Group("/",
		authMiddleware.OnlyRoles("❌ Hanya admin atau pengajar yang boleh mengelola grup",
			helperAuth.RoleAdmin, helperAuth.RoleTeacher),
	)
	manage.Post("/", ctrl.CreateGroup)
	manage.Patch("/:id", ctrl.UpdateGroup)
	manage.Delete("/:id", ctrl.DeleteGroup)
	manage.Post("/:id/members", ctrl.AddMember)
	manage.Delete("/:id/members/:memberId", ctrl.RemoveMember)
}
