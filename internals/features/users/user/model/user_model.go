package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users di database.
// Saldo kredit (private/public) tidak boleh negatif — dijaga CHECK constraint
// dan decrement bersyarat di service kredit.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:100;not null" json:"user_name"`
	Email    string    `gorm:"size:255;unique;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Phone    string    `gorm:"size:30;not null" json:"phone"`
	Role     string    `gorm:"type:varchar(20);not null;default:'student'" json:"role"`

	Age               *int   `gorm:"check:age >= 0" json:"age,omitempty"`
	Country           string `gorm:"size:100" json:"country"`
	City              string `gorm:"size:100" json:"city"`
	QuranMemorized    string `gorm:"type:text;default:''" json:"quran_memorized"`
	NumOfPartsOfQuran int    `gorm:"not null;default:0" json:"num_of_parts_of_quran"`

	IsVerified     bool `gorm:"not null;default:false" json:"is_verified"`
	FreeLessonUsed bool `gorm:"not null;default:false" json:"free_lesson_used"`

	// Saldo kredit pelajaran per tipe grup
	PrivateCredits int `gorm:"column:private_credits;not null;default:0;check:chk_users_private_credits,private_credits >= 0" json:"private_credits"`
	PublicCredits  int `gorm:"column:public_credits;not null;default:0;check:chk_users_public_credits,public_credits >= 0" json:"public_credits"`

	GoogleID *string `gorm:"size:255;unique" json:"google_id,omitempty"`
	IsActive bool    `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// SetDefaultValues memastikan nilai default sebelum simpan
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = RoleStudent
	}
}
