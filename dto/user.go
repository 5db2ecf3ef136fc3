package dto

import (
	"time"

	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/Kevin-Guilherme/fluentify/services/gamification"
)

// ==================== USER REQUEST DTOs ====================

type SyncUserRequest struct {
	Name      string `json:"name" validate:"required,max=100" example:"Maria Silva"`
	Email     string `json:"email" validate:"required,email" example:"maria@example.com"`
	AvatarURL string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

func (r SyncUserRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateUserRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=1,max=100" example:"Maria"`
	AvatarURL      *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	NativeLanguage *string `json:"native_language,omitempty" validate:"omitempty,max=50" example:"pt-BR"`
}

func (r UpdateUserRequest) Validate() error {
	return GetValidator().Struct(r)
}

type HistoryQuery struct {
	Page     int `query:"page" validate:"omitempty,min=1"`
	PageSize int `query:"page_size" validate:"omitempty,min=1,max=50"`
}

func (q HistoryQuery) Validate() error {
	return GetValidator().Struct(q)
}

// ==================== USER RESPONSE DTOs ====================

type UserResponse struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	AvatarURL      string          `json:"avatar_url,omitempty"`
	NativeLanguage string          `json:"native_language,omitempty"`
	XP             int             `json:"xp"`
	Streak         int             `json:"streak"`
	Level          model.UserLevel `json:"level"`
	LastActiveAt   *time.Time      `json:"last_active_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		AvatarURL:      u.AvatarURL,
		NativeLanguage: u.NativeLanguage,
		XP:             u.XP,
		Streak:         u.Streak,
		Level:          u.Level,
		LastActiveAt:   u.LastActiveAt,
		CreatedAt:      u.CreatedAt,
	}
}

type UserStatsResponse struct {
	XP                     int             `json:"xp"`
	Streak                 int             `json:"streak"`
	Level                  model.UserLevel `json:"level"`
	TotalConversations     int64           `json:"total_conversations"`
	CompletedConversations int64           `json:"completed_conversations"`
	TotalXPEarned          int64           `json:"total_xp_earned"`
	AverageScore           *float64        `json:"average_score"`
}

type ConversationHistoryResponse struct {
	Items    []ConversationSummary `json:"items"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
	HasMore  bool                  `json:"has_more"`
}

type UserProgressResponse struct {
	CurrentXP          int                    `json:"current_xp"`
	CurrentLevel       model.UserLevel        `json:"current_level"`
	NextLevel          *model.UserLevel       `json:"next_level"`
	NextLevelXP        *int                   `json:"next_level_xp"`
	ProgressPercentage int                    `json:"progress_percentage"`
	XPToNextLevel      *int                   `json:"xp_to_next_level"`
	Band               gamification.LevelInfo `json:"band"`
}
