package handlers

import (
	"context"

	"github.com/Kevin-Guilherme/fluentify/dto"
	"github.com/Kevin-Guilherme/fluentify/model"
)

type ConversationServiceInterface interface {
	CreateConversation(ctx context.Context, userID string, req dto.CreateConversationRequest) (*dto.ConversationResponse, error)
	GetConversation(ctx context.Context, conversationID, userID string) (*dto.ConversationResponse, error)
	SendMessage(ctx context.Context, conversationID, userID string, req dto.SendMessageRequest) (*dto.MessageResponse, error)
	CompleteConversation(ctx context.Context, conversationID, userID string) (*dto.CompleteConversationResponse, error)
	GetFeedback(ctx context.Context, conversationID, userID string) (*dto.FeedbackAnalysis, error)
	ListConversations(ctx context.Context, userID string) ([]dto.ConversationSummary, error)
	AbandonConversation(ctx context.Context, conversationID, userID string) error
}

type TutorServiceInterface interface {
	Reply(ctx context.Context, conversationID, userID string) (*dto.ReplyResponse, error)
}

type SpeechServiceInterface interface {
	SendVoiceMessage(ctx context.Context, conversationID, userID, fileName string, audio []byte) (*dto.VoiceMessageResponse, error)
}

type UserServiceInterface interface {
	SyncUser(ctx context.Context, userID string, req dto.SyncUserRequest) (*dto.UserResponse, error)
	GetMe(ctx context.Context, userID string) (*dto.UserResponse, error)
	UpdateMe(ctx context.Context, userID string, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	GetStats(ctx context.Context, userID string) (*dto.UserStatsResponse, error)
	GetHistory(ctx context.Context, userID string, query dto.HistoryQuery) (*dto.ConversationHistoryResponse, error)
	GetProgress(ctx context.Context, userID string) (*dto.UserProgressResponse, error)
}

type TopicServiceInterface interface {
	ListTopics(ctx context.Context, difficulty model.UserLevel) ([]dto.TopicResponse, error)
	GetTopic(ctx context.Context, id string) (*dto.TopicResponse, error)
	RandomTopic(ctx context.Context) (*dto.TopicResponse, error)
}

type StorageServiceInterface interface {
	PresignedURL(ctx context.Context, userID, key string) (*dto.PresignedURLResponse, error)
	DeleteAudio(ctx context.Context, userID, key string) error
}
