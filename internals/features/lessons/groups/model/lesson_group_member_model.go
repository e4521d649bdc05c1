package model

import (
	"time"

	"github.com/google/uuid"
)

// LessonGroupMemberModel: keanggotaan siswa pada grup.
// Unik per (group, user) supaya tidak double join.
type LessonGroupMemberModel struct {
	LessonGroupMemberID      uuid.UUID `gorm:"column:lesson_group_member_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lesson_group_member_id"`
	LessonGroupMemberGroupID uuid.UUID `gorm:"column:lesson_group_member_group_id;type:uuid;not null;uniqueIndex:uq_group_member" json:"lesson_group_member_group_id"`
	LessonGroupMemberUserID  uuid.UUID `gorm:"column:lesson_group_member_user_id;type:uuid;not null;uniqueIndex:uq_group_member" json:"lesson_group_member_user_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (LessonGroupMemberModel) TableName() string {
	return "lesson_group_members"
}
