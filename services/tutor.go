package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Kevin-Guilherme/fluentify/dto"
	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/Kevin-Guilherme/fluentify/services/llm"
	"github.com/Kevin-Guilherme/fluentify/services/prompts"
	"github.com/Kevin-Guilherme/fluentify/services/repositories"
	"github.com/Kevin-Guilherme/fluentify/shared"
	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	tutorTemperature      = 0.7
	tutorMaxTokens        = 150
	tutorTopP             = 1
	tutorFrequencyPenalty = 0.2
	tutorPresencePenalty  = 0.1
)

// AssistantWriter stores the tutor's turn.
type AssistantWriter interface {
	SendAssistantMessage(ctx context.Context, conversationID, content string) (*dto.MessageResponse, error)
}

// TutorService produces the AI partner's next turn in a conversation.
type TutorService struct {
	appContext.DefaultService

	db       *gorm.DB
	provider llm.Provider
	writer   AssistantWriter
	timeout  time.Duration
}

const TUTOR_SVC = "tutor_svc"

func (svc TutorService) Id() string {
	return TUTOR_SVC
}

func (svc *TutorService) Start() error {
	db := svc.Service(DATABASE_SVC).(*DatabaseService).Db()
	groq := svc.Service(GROQ_SVC).(*GroqService)
	svc.wire(db, groq.ChatProvider(), svc.Service(CONVERSATION_SVC).(*ConversationService), groq.Timeout())
	return nil
}

func (svc *TutorService) wire(db *gorm.DB, provider llm.Provider, writer AssistantWriter, timeout time.Duration) {
	svc.db = db
	svc.provider = provider
	svc.writer = writer
	svc.timeout = timeout
	if svc.timeout <= 0 {
		svc.timeout = defaultAITimeout
	}
}

// GenerateResponse asks the chat model for the next tutor turn given the
// conversation so far. Every failure is reported as AI_SERVICE_ERROR.
func (svc *TutorService) GenerateResponse(ctx context.Context, history []llm.Message, level model.UserLevel, topic, userName string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, svc.timeout)
	defer cancel()

	resp, err := svc.provider.Generate(ctx, llm.Request{
		System:           prompts.BuildConversationPrompt(level, topic, userName),
		Messages:         history,
		Temperature:      tutorTemperature,
		MaxTokens:        tutorMaxTokens,
		TopP:             tutorTopP,
		FrequencyPenalty: tutorFrequencyPenalty,
		PresencePenalty:  tutorPresencePenalty,
	})
	if err != nil {
		log.WithFields(log.Fields{
			"topic": topic,
			"error": err.Error(),
		}).Error("Tutor response failed")
		return "", shared.NewAiServiceError(err)
	}

	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return "", shared.NewAiServiceError(&llm.ErrEmptyResponse{Model: resp.Model})
	}
	return content, nil
}

// Reply generates and stores the tutor's answer to the latest user turn.
func (svc *TutorService) Reply(ctx context.Context, conversationID, userID string) (*dto.ReplyResponse, error) {
	db := svc.db.WithContext(ctx)

	conversation, err := repositories.NewConversationRepository(db).GetOwned(conversationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewConversationNotFoundError()
		}
		return nil, err
	}
	if conversation.Status != model.ConversationActive {
		return nil, shared.NewConversationAlreadyCompletedError()
	}

	user, err := repositories.NewUserRepository(db).GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewUserNotFoundError()
		}
		return nil, err
	}

	content, err := svc.GenerateResponse(ctx, historyFromMessages(conversation.Messages), user.Level, conversation.Topic.Title, user.Name)
	if err != nil {
		return nil, err
	}

	msg, err := svc.writer.SendAssistantMessage(ctx, conversation.ID, content)
	if err != nil {
		return nil, err
	}
	return &dto.ReplyResponse{Message: *msg}, nil
}

func historyFromMessages(messages []model.Message) []llm.Message {
	history := make([]llm.Message, 0, len(messages))
	for _, m := range messages {
		var role llm.Role
		switch m.Role {
		case model.RoleSystem:
			role = llm.RoleSystem
		case model.RoleAssistant:
			role = llm.RoleAssistant
		default:
			role = llm.RoleUser
		}
		history = append(history, llm.Message{Role: role, Content: m.Content})
	}
	return history
}
