package dto

import (
	"time"

	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/Kevin-Guilherme/fluentify/services/gamification"
)

// ==================== CONVERSATION REQUEST DTOs ====================

type CreateConversationRequest struct {
	TopicID string `json:"topic_id" validate:"required" example:"0190f1c2-7d7a-7b8e-9c1a-2f3e4d5c6b7a"`
}

func (r CreateConversationRequest) Validate() error {
	return GetValidator().Struct(r)
}

type SendMessageRequest struct {
	Content  string  `json:"content" validate:"required,max=4000" example:"I would like a latte, please."`
	AudioURL *string `json:"audio_url,omitempty" validate:"omitempty,url"`
	Duration *int    `json:"duration,omitempty" validate:"omitempty,min=0"`
}

func (r SendMessageRequest) Validate() error {
	return GetValidator().Struct(r)
}

// ==================== CONVERSATION RESPONSE DTOs ====================

type MessageResponse struct {
	ID        string            `json:"id"`
	Role      model.MessageRole `json:"role"`
	Content   string            `json:"content"`
	AudioURL  *string           `json:"audio_url,omitempty"`
	Duration  *int              `json:"duration,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

type ConversationResponse struct {
	ID         string                   `json:"id"`
	UserID     string                   `json:"user_id"`
	TopicID    string                   `json:"topic_id"`
	TopicTitle string                   `json:"topic_title"`
	TopicEmoji string                   `json:"topic_emoji"`
	Status     model.ConversationStatus `json:"status"`
	Score      *int                     `json:"score"`
	XPEarned   *int                     `json:"xp_earned"`
	Duration   *int                     `json:"duration"`
	Messages   []MessageResponse        `json:"messages"`
	CreatedAt  time.Time                `json:"created_at"`
	UpdatedAt  time.Time                `json:"updated_at"`
}

type ConversationSummary struct {
	ID           string                   `json:"id"`
	TopicTitle   string                   `json:"topic_title"`
	TopicEmoji   string                   `json:"topic_emoji"`
	Status       model.ConversationStatus `json:"status"`
	MessageCount int                      `json:"message_count"`
	Score        *int                     `json:"score"`
	XPEarned     *int                     `json:"xp_earned"`
	Duration     *int                     `json:"duration"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

type CompleteConversationResponse struct {
	ConversationID string                    `json:"conversation_id"`
	Status         model.ConversationStatus  `json:"status"`
	Score          int                       `json:"score"`
	XPEarned       int                       `json:"xp_earned"`
	Duration       int                       `json:"duration"`
	Feedback       FeedbackAnalysis          `json:"feedback"`
	Streak         gamification.StreakResult `json:"streak"`
	Level          gamification.LevelInfo    `json:"level"`
	Tier           model.UserLevel           `json:"tier"`
	TierChanged    bool                      `json:"tier_changed"`
}

type ReplyResponse struct {
	Message MessageResponse `json:"message"`
}

type VoiceMessageResponse struct {
	UserMessage      MessageResponse `json:"user_message"`
	AssistantMessage MessageResponse `json:"assistant_message"`
	Transcription    string          `json:"transcription"`
}

func NewMessageResponse(m model.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Role:      m.Role,
		Content:   m.Content,
		AudioURL:  m.AudioURL,
		Duration:  m.Duration,
		CreatedAt: m.CreatedAt,
	}
}

func NewConversationResponse(c model.Conversation) ConversationResponse {
	messages := make([]MessageResponse, 0, len(c.Messages))
	for _, m := range c.Messages {
		messages = append(messages, NewMessageResponse(m))
	}

	return ConversationResponse{
		ID:         c.ID,
		UserID:     c.UserID,
		TopicID:    c.TopicID,
		TopicTitle: c.Topic.Title,
		TopicEmoji: c.Topic.Emoji,
		Status:     c.Status,
		Score:      c.Score,
		XPEarned:   c.XPEarned,
		Duration:   c.Duration,
		Messages:   messages,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
