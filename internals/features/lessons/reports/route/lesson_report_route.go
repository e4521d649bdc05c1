package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "tahfizhku_backend/internals/features/lessons/reports/controller"
	helperAuth "tahfizhku_backend/internals/helpers/auth"
	authMiddleware "tahfizhku_backend/internals/middlewares/auth"
)

func LessonReportRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := reportController.NewLessonReportController(db)

	report := app.Group("/api/report", authMiddleware.AuthMiddleware(db))

	// siswa: laporan & homework miliknya sendiri
	report.Get("/my", ctrl.ListMine)
	report.Patch("/homework-done", ctrl.MarkHomeworkDone)

	// guru & admin: tulis + baca semua
	manage := report.Group("/",
		authMiddleware.OnlyRoles("❌ Hanya admin atau pengajar yang boleh mengelola laporan",
			helperAuth.RoleAdmin, helperAuth.RoleTeacher),
	)
	manage.Put("/", ctrl.UpsertReport)
	manage.Get("/",
		authMiddleware.OnlyRoles("❌ Hanya admin yang boleh melihat semua laporan", helperAuth.RoleAdmin),
		ctrl.ListAll)
	manage.Get("/lesson/:lessonId", ctrl.ListByLesson)
	manage.Get("/student/:studentId", ctrl.ListByStudent)
	manage.Get("/:id", ctrl.GetReport)
}
