package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lessonController "tahfizhku_backend/internals/features/lessons/lessons/controller"
	helperAuth "tahfizhku_backend/internals/helpers/auth"
	authMiddleware "tahfizhku_backend/internals/middlewares/auth"
)

func LessonRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := lessonController.NewLessonController(db)

	lesson := app.Group("/api/lesson", authMiddleware.AuthMiddleware(db))

	// baca: semua role login
	lesson.Get("/group/:groupId", ctrl.ListByGroup)
	lesson.Get("/:id", ctrl.GetLesson)
	lesson.Get("/:id/homework", ctrl.GetHomework)

	// mutasi & settlement: admin & pengajar
	manage := lesson.Group("/",
		authMiddleware.OnlyRoles("❌ Hanya admin atau pengajar yang boleh mengelola lesson",
			helperAuth.RoleAdmin, helperAuth.RoleTeacher),
	)
	manage.Post("/", ctrl.CreateLesson)
	manage.Patch("/:id", ctrl.UpdateLesson)
	manage.Delete("/:id", ctrl.DeleteLesson)
	manage.Patch("/:id/status", ctrl.UpdateStatus)
	manage.Post("/:id/complete", ctrl.CompleteLesson)
	manage.Put("/:id/homework", ctrl.SetHomework)
}
