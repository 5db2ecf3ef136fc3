package model

import (
	"time"

	"gorm.io/datatypes"
)

// Conversation holds a practice session. Score, XPEarned and Duration are
// written together by the ACTIVE -> COMPLETED transition and never before.
type Conversation struct {
	ID        string             `json:"id" gorm:"primaryKey;type:text"`
	UserID    string             `json:"user_id" gorm:"not null;index"`
	TopicID   string             `json:"topic_id" gorm:"not null;index"`
	Status    ConversationStatus `json:"status" gorm:"type:varchar(20);default:ACTIVE;not null;index"`
	Score     *int               `json:"score"`
	XPEarned  *int               `json:"xp_earned"`
	Duration  *int               `json:"duration"`
	CreatedAt time.Time          `json:"created_at" gorm:"index"`
	UpdatedAt time.Time          `json:"updated_at"`

	Topic    Topic                 `json:"topic" gorm:"foreignKey:TopicID"`
	Messages []Message             `json:"messages" gorm:"foreignKey:ConversationID"`
	Feedback *ConversationFeedback `json:"feedback,omitempty" gorm:"foreignKey:ConversationID"`
}

type Message struct {
	ID             string      `json:"id" gorm:"primaryKey;type:text"`
	ConversationID string      `json:"conversation_id" gorm:"not null;index"`
	Role           MessageRole `json:"role" gorm:"type:varchar(20);not null"`
	Content        string      `json:"content" gorm:"type:text;not null"`
	AudioURL       *string     `json:"audio_url"`
	Duration       *int        `json:"duration"`
	CreatedAt      time.Time   `json:"created_at" gorm:"index"`
}

// ConversationFeedback is the persisted analysis of a completed conversation.
type ConversationFeedback struct {
	ID                   string         `json:"id" gorm:"primaryKey;type:text"`
	ConversationID       string         `json:"conversation_id" gorm:"uniqueIndex;not null"`
	GrammarScore         int            `json:"grammar_score"`
	VocabularyScore      int            `json:"vocabulary_score"`
	FluencyScore         int            `json:"fluency_score"`
	OverallScore         int            `json:"overall_score"`
	GrammarErrors        datatypes.JSON `json:"grammar_errors"`
	VocabularyHighlights datatypes.JSON `json:"vocabulary_highlights"`
	FluencyNotes         string         `json:"fluency_notes" gorm:"type:text"`
	PronunciationIssues  datatypes.JSON `json:"pronunciation_issues"`
	Suggestions          datatypes.JSON `json:"suggestions"`
	Strengths            datatypes.JSON `json:"strengths"`
	FocusAreas           datatypes.JSON `json:"focus_areas"`
	IsFallback           bool           `json:"is_fallback" gorm:"default:false"`
	CreatedAt            time.Time      `json:"created_at"`
}
