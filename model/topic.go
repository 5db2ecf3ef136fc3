package model

import "time"

// Topic is a practice scenario. The lifecycle manager only reads topics.
type Topic struct {
	ID           string    `json:"id" gorm:"primaryKey;type:text"`
	Slug         string    `json:"slug" gorm:"uniqueIndex;not null"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"type:text"`
	Emoji        string    `json:"emoji"`
	Category     string    `json:"category" gorm:"index"`
	Difficulty   UserLevel `json:"difficulty" gorm:"type:varchar(20);not null;index"`
	SystemPrompt string    `json:"system_prompt" gorm:"type:text;not null"`
	IsActive     bool      `json:"is_active" gorm:"default:true;not null"`
	SortOrder    int       `json:"sort_order" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
