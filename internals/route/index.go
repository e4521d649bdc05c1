// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactRoute "tahfizhku_backend/internals/features/contact/route"
	courseRoute "tahfizhku_backend/internals/features/courses/route"
	groupRoute "tahfizhku_backend/internals/features/lessons/groups/route"
	lessonRoute "tahfizhku_backend/internals/features/lessons/lessons/route"
	reportRoute "tahfizhku_backend/internals/features/lessons/reports/route"
	reviewRoute "tahfizhku_backend/internals/features/reviews/route"
	teacherRoute "tahfizhku_backend/internals/features/teachers/route"
	authRoute "tahfizhku_backend/internals/features/users/auth/route"
	userRoute "tahfizhku_backend/internals/features/users/user/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH / USER =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(app, db)
	userRoute.AdminMemberRoutes(app, db)

	// ===================== TEACHERS =====================
	log.Println("[INFO] Setting up TeacherRoutes...")
	teacherRoute.TeacherRoutes(app, db)

	// ===================== LESSONS =====================
	log.Println("[INFO] Setting up LessonGroupRoutes...")
	groupRoute.LessonGroupRoutes(app, db)

	log.Println("[INFO] Setting up LessonRoutes...")
	lessonRoute.LessonRoutes(app, db)

	log.Println("[INFO] Setting up LessonReportRoutes...")
	reportRoute.LessonReportRoutes(app, db)

	// ===================== COURSES & REVIEWS =====================
	log.Println("[INFO] Setting up CourseRoutes...")
	courseRoute.CourseRoutes(app, db)

	log.Println("[INFO] Setting up ReviewRoutes...")
	reviewRoute.ReviewRoutes(app, db)

	log.Println("[INFO] Setting up ContactRoutes...")
	contactRoute.ContactRoutes(app, db)

	log.Println("✅ Semua route berhasil didaftarkan")
}
