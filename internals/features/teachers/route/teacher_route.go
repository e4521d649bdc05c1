package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherController "tahfizhku_backend/internals/features/teachers/controller"
	helperAuth "tahfizhku_backend/internals/helpers/auth"
	authMiddleware "tahfizhku_backend/internals/middlewares/auth"
)

func TeacherRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := teacherController.NewTeacherController(db)

	// semua role login boleh lihat daftar pengajar
	teacher := app.Group("/api/teacher", authMiddleware.AuthMiddleware(db))
	teacher.Get("/", ctrl.ListTeachers)

	// pengajar yang login: data miliknya sendiri
	// (middleware dipasang per-route supaya GET /:id tetap terbuka untuk semua role)
	onlyTeacher := authMiddleware.OnlyRoles("❌ Khusus pengajar", helperAuth.RoleTeacher, helperAuth.RoleAdmin)
	teacher.Get("/me", onlyTeacher, ctrl.GetMyTeacherProfile)
	teacher.Get("/my-lessons", onlyTeacher, ctrl.GetMyLessons)
	teacher.Get("/my-students", onlyTeacher, ctrl.GetMyStudents)

	teacher.Get("/:id", ctrl.GetTeacher)

	// admin: CRUD pengajar
	admin := app.Group("/api/admin/teachers",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("❌ Hanya admin yang boleh mengelola pengajar", helperAuth.RoleAdmin),
	)
	admin.Get("/", ctrl.ListTeachers)
	admin.Post("/", ctrl.CreateTeacher)
	admin.Get("/:id", ctrl.GetTeacher)
	admin.Patch("/:id", ctrl.UpdateTeacher)
	admin.Delete("/:id", ctrl.DeleteTeacher)
	admin.Patch("/:id/credits", ctrl.GrantLessonCredits)
}
