package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "tahfizhku_backend/internals/features/courses/controller"
	helperAuth "tahfizhku_backend/internals/helpers/auth"
	authMiddleware "tahfizhku_backend/internals/middlewares/auth"
)

func CourseRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)

	// publik: katalog + pendaftaran
	// pendaftaran memakai optional auth supaya user login tertaut otomatis
	course := app.Group("/api/course")
	course.Get("/active", ctrl.ListActiveCourses)
	course.Get("/:id", ctrl.GetCourse)
	course.Post("/:id/register", authMiddleware.OptionalAuthMiddleware(), ctrl.RegisterCourse)

	// admin
	admin := app.Group("/api/admin/courses",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("❌ Hanya admin yang boleh mengelola kursus", helperAuth.RoleAdmin),
	)
	admin.Get("/", ctrl.ListCourses)
	admin.Post("/", ctrl.CreateCourse)
	admin.Patch("/:id", ctrl.UpdateCourse)
	admin.Delete("/:id", ctrl.DeleteCourse)
	admin.Get("/:id/registrations", ctrl.ListRegistrations)
}
