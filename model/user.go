package model

import "time"

// User is keyed by the identity provider's subject, so ID is not generated here.
type User struct {
	ID             string     `json:"id" gorm:"primaryKey;type:text"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null"`
	Name           string     `json:"name"`
	AvatarURL      string     `json:"avatar_url"`
	NativeLanguage string     `json:"native_language"`
	XP             int        `json:"xp" gorm:"default:0;not null"`
	Streak         int        `json:"streak" gorm:"default:0;not null"`
	Level          UserLevel  `json:"level" gorm:"type:varchar(20);default:BEGINNER;not null"`
	LastActiveAt   *time.Time `json:"last_active_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
