package database

import (
	"log"

	contactModel "tahfizhku_backend/internals/features/contact/model"
	courseModel "tahfizhku_backend/internals/features/courses/model"
	groupModel "tahfizhku_backend/internals/features/lessons/groups/model"
	lessonModel "tahfizhku_backend/internals/features/lessons/lessons/model"
	reportModel "tahfizhku_backend/internals/features/lessons/reports/model"
	reviewModel "tahfizhku_backend/internals/features/reviews/model"
	teacherModel "tahfizhku_backend/internals/features/teachers/model"
	authModel "tahfizhku_backend/internals/features/users/auth/model"
	userModel "tahfizhku_backend/internals/features/users/user/model"
)

// RunMigrations menjalankan AutoMigrate kalau DB_AUTO_MIGRATE=true.
// Produksi pakai DDL terkelola, AutoMigrate hanya untuk dev/staging.
func RunMigrations() {
	if !AutoMigrateEnabled() {
		log.Println("⏭  AutoMigrate dilewati (DB_AUTO_MIGRATE tidak aktif)")
		return
	}

	log.Println("🛠  Menjalankan AutoMigrate...")
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&authModel.RefreshToken{},
		&teacherModel.TeacherModel{},
		&groupModel.LessonGroupModel{},
		&groupModel.LessonGroupMemberModel{},
		&lessonModel.LessonModel{},
		&reportModel.LessonReportModel{},
		&courseModel.CourseModel{},
		&courseModel.CourseRegistrationModel{},
		&reviewModel.ReviewModel{},
		&contactModel.ContactInfoModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai")
}
