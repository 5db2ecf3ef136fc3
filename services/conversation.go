package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Kevin-Guilherme/fluentify/dto"
	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/Kevin-Guilherme/fluentify/services/gamification"
	"github.com/Kevin-Guilherme/fluentify/services/repositories"
	"github.com/Kevin-Guilherme/fluentify/shared"
	appContext "github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FeedbackAnalyzer scores a learner transcript.
type FeedbackAnalyzer interface {
	AnalyzeSpeaking(ctx context.Context, transcript, topicContext string, level model.UserLevel) (*dto.FeedbackAnalysis, error)
}

// StreakApplier updates a user's streak inside an open transaction.
type StreakApplier interface {
	ApplyStreak(tx *gorm.DB, user *model.User, now time.Time) (gamification.StreakResult, error)
}

// ConversationService owns the conversation lifecycle: creation, turns,
// completion with scoring, and abandonment.
type ConversationService struct {
	appContext.DefaultService

	db       *gorm.DB
	analyzer FeedbackAnalyzer
	streaks  StreakApplier
	metrics  *MonitoringService
	now      func() time.Time
}

const CONVERSATION_SVC = "conversation_svc"

func (svc ConversationService) Id() string {
	return CONVERSATION_SVC
}

func (svc *ConversationService) Start() error {
	db := svc.Service(DATABASE_SVC).(*DatabaseService).Db()
	metrics, _ := svc.Service(MONITORING_SVC).(*MonitoringService)
	svc.wire(db,
		svc.Service(FEEDBACK_SVC).(*FeedbackService),
		svc.Service(STREAK_SVC).(*StreakService),
		metrics,
	)
	return nil
}

func (svc *ConversationService) wire(db *gorm.DB, analyzer FeedbackAnalyzer, streaks StreakApplier, metrics *MonitoringService) {
	svc.db = db
	svc.analyzer = analyzer
	svc.streaks = streaks
	svc.metrics = metrics
	if svc.now == nil {
		svc.now = time.Now
	}
}

func (svc *ConversationService) conversations(ctx context.Context) *repositories.ConversationRepository {
	return repositories.NewConversationRepository(svc.db.WithContext(ctx))
}

// CreateConversation starts an ACTIVE conversation on an active topic,
// seeded with the topic's system prompt.
func (svc *ConversationService) CreateConversation(ctx context.Context, userID string, req dto.CreateConversationRequest) (*dto.ConversationResponse, error) {
	topic, err := repositories.NewTopicRepository(svc.db.WithContext(ctx)).GetActive(req.TopicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewTopicNotFoundError()
		}
		return nil, err
	}

	now := svc.now()
	conversation := &model.Conversation{
		ID:        newID(),
		UserID:    userID,
		TopicID:   topic.ID,
		Status:    model.ConversationActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	system := &model.Message{
		ID:        newID(),
		Role:      model.RoleSystem,
		Content:   topic.SystemPrompt,
		CreatedAt: now,
	}

	if err := svc.conversations(ctx).CreateWithSystemMessage(conversation, system); err != nil {
		return nil, err
	}

	conversation.Topic = *topic
	conversation.Messages = []model.Message{*system}

	log.WithFields(log.Fields{
		"conversation_id": conversation.ID,
		"user_id":         userID,
		"topic":           topic.Slug,
	}).Info("Conversation created")

	resp := dto.NewConversationResponse(*conversation)
	return &resp, nil
}

func (svc *ConversationService) GetConversation(ctx context.Context, conversationID, userID string) (*dto.ConversationResponse, error) {
	conversation, err := svc.getOwned(ctx, conversationID, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewConversationResponse(*conversation)
	return &resp, nil
}

func (svc *ConversationService) getOwned(ctx context.Context, conversationID, userID string) (*model.Conversation, error) {
	conversation, err := svc.conversations(ctx).GetOwned(conversationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewConversationNotFoundError()
		}
		return nil, err
	}
	return conversation, nil
}

// GetFeedback returns the stored analysis of a completed conversation.
func (svc *ConversationService) GetFeedback(ctx context.Context, conversationID, userID string) (*dto.FeedbackAnalysis, error) {
	if _, err := svc.getOwned(ctx, conversationID, userID); err != nil {
		return nil, err
	}

	record, err := repositories.NewFeedbackRepository(svc.db.WithContext(ctx)).GetByConversation(conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewFeedbackNotFoundError()
		}
		return nil, err
	}
	return feedbackFromRecord(record)
}

// SendMessage appends a USER turn. It never calls the model.
func (svc *ConversationService) SendMessage(ctx context.Context, conversationID, userID string, req dto.SendMessageRequest) (*dto.MessageResponse, error) {
	conversation, err := svc.getOwned(ctx, conversationID, userID)
	if err != nil {
		return nil, err
	}
	if conversation.Status != model.ConversationActive {
		return nil, shared.NewConversationAlreadyCompletedError()
	}

	msg := &model.Message{
		ID:             newID(),
		ConversationID: conversation.ID,
		Role:           model.RoleUser,
		Content:        req.Content,
		AudioURL:       req.AudioURL,
		Duration:       req.Duration,
		CreatedAt:      svc.now(),
	}

	appended, err := svc.conversations(ctx).AppendIfActive(msg)
	if err != nil {
		return nil, err
	}
	if !appended {
		return nil, shared.NewConversationAlreadyCompletedError()
	}

	resp := dto.NewMessageResponse(*msg)
	return &resp, nil
}

// SendAssistantMessage appends an ASSISTANT turn without a status check.
func (svc *ConversationService) SendAssistantMessage(ctx context.Context, conversationID, content string) (*dto.MessageResponse, error) {
	msg := &model.Message{
		ID:             newID(),
		ConversationID: conversationID,
		Role:           model.RoleAssistant,
		Content:        content,
		CreatedAt:      svc.now(),
	}

	if err := svc.conversations(ctx).AppendMessage(msg); err != nil {
		return nil, err
	}

	resp := dto.NewMessageResponse(*msg)
	return &resp, nil
}

// CompleteConversation scores the conversation and awards XP. The status
// transition, feedback row, XP increment, streak and tier are committed in
// one transaction, and only the caller that wins the ACTIVE -> COMPLETED
// update gets past it.
func (svc *ConversationService) CompleteConversation(ctx context.Context, conversationID, userID string) (*dto.CompleteConversationResponse, error) {
	conversation, err := svc.getOwned(ctx, conversationID, userID)
	if err != nil {
		return nil, err
	}
	if conversation.Status != model.ConversationActive {
		return nil, shared.NewConversationAlreadyCompletedError()
	}

	user, err := repositories.NewUserRepository(svc.db.WithContext(ctx)).GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewUserNotFoundError()
		}
		return nil, err
	}

	transcript := userTranscript(conversation.Messages)
	if transcript == "" {
		return nil, shared.NewConversationEmptyError()
	}
	duration := conversationDuration(conversation.Messages)

	feedback, err := svc.analyzer.AnalyzeSpeaking(ctx, transcript, conversation.Topic.Title, user.Level)
	if err != nil {
		if _, ok := shared.GetAppError(err); ok {
			return nil, err
		}
		return nil, shared.NewFeedbackServiceError(err)
	}

	xp := gamification.CalculateXP(feedback.Scores(), duration, user.Streak, user.Level)
	record, err := newFeedbackRecord(conversation.ID, feedback)
	if err != nil {
		return nil, err
	}

	now := svc.now()
	var (
		streak      gamification.StreakResult
		tier        model.UserLevel
		tierChanged bool
	)

	err = svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		completed, err := repositories.NewConversationRepository(tx).
			MarkCompleted(conversation.ID, userID, feedback.OverallScore, xp, duration, now)
		if err != nil {
			return err
		}
		if !completed {
			return shared.NewConversationAlreadyCompletedError()
		}

		if err := repositories.NewFeedbackRepository(tx).Create(record); err != nil {
			return err
		}

		users := repositories.NewUserRepository(tx)
		if err := users.IncrementXP(userID, xp); err != nil {
			return err
		}

		fresh, err := users.GetUser(userID)
		if err != nil {
			return err
		}

		streak, err = svc.streaks.ApplyStreak(tx, fresh, now)
		if err != nil {
			return err
		}

		tier = gamification.TierForXP(fresh.XP)
		if tier != fresh.Level {
			if err := users.UpdateLevel(userID, tier); err != nil {
				return err
			}
			tierChanged = true
		}

		user = fresh
		return nil
	})
	if err != nil {
		return nil, err
	}

	svc.metrics.RecordCompletion(xp)

	log.WithFields(log.Fields{
		"conversation_id": conversation.ID,
		"user_id":         userID,
		"score":           feedback.OverallScore,
		"xp":              xp,
		"duration":        duration,
		"fallback":        feedback.IsFallback,
	}).Info("Conversation completed")

	return &dto.CompleteConversationResponse{
		ConversationID: conversation.ID,
		Status:         model.ConversationCompleted,
		Score:          feedback.OverallScore,
		XPEarned:       xp,
		Duration:       duration,
		Feedback:       *feedback,
		Streak:         streak,
		Level:          gamification.GetLevel(user.XP),
		Tier:           tier,
		TierChanged:    tierChanged,
	}, nil
}

// ListConversations returns the user's conversations, newest first.
func (svc *ConversationService) ListConversations(ctx context.Context, userID string) ([]dto.ConversationSummary, error) {
	rows, err := svc.conversations(ctx).ListSummaries(userID, 0, 0)
	if err != nil {
		return nil, err
	}
	return summariesFromRows(rows), nil
}

// AbandonConversation moves an ACTIVE conversation to ABANDONED. Terminal
// conversations are left unchanged.
func (svc *ConversationService) AbandonConversation(ctx context.Context, conversationID, userID string) error {
	conversation, err := svc.getOwned(ctx, conversationID, userID)
	if err != nil {
		return err
	}
	if conversation.Status != model.ConversationActive {
		return nil
	}

	abandoned, err := svc.conversations(ctx).MarkAbandoned(conversation.ID, userID, svc.now())
	if err != nil {
		return err
	}
	if abandoned {
		log.WithField("conversation_id", conversation.ID).Info("Conversation abandoned")
	}
	return nil
}

func summariesFromRows(rows []repositories.ConversationSummaryRow) []dto.ConversationSummary {
	summaries := make([]dto.ConversationSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, dto.ConversationSummary{
			ID:           row.ID,
			TopicTitle:   row.TopicTitle,
			TopicEmoji:   row.TopicEmoji,
			Status:       row.Status,
			MessageCount: row.MessageCount,
			Score:        row.Score,
			XPEarned:     row.XPEarned,
			Duration:     row.Duration,
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		})
	}
	return summaries
}

// userTranscript joins the learner's turns with newlines.
func userTranscript(messages []model.Message) string {
	var turns []string
	for _, m := range messages {
		if m.Role == model.RoleUser {
			turns = append(turns, m.Content)
		}
	}
	return strings.Join(turns, "\n")
}

// conversationDuration is the whole seconds between the first and last
// message.
func conversationDuration(messages []model.Message) int {
	if len(messages) < 2 {
		return 0
	}
	elapsed := messages[len(messages)-1].CreatedAt.Sub(messages[0].CreatedAt)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / time.Second)
}

func newFeedbackRecord(conversationID string, f *dto.FeedbackAnalysis) (*model.ConversationFeedback, error) {
	record := &model.ConversationFeedback{
		ID:              newID(),
		ConversationID:  conversationID,
		GrammarScore:    f.GrammarScore(),
		VocabularyScore: f.VocabularyScore,
		FluencyScore:    f.FluencyScore,
		OverallScore:    f.OverallScore,
		FluencyNotes:    f.FluencyNotes,
		IsFallback:      f.IsFallback,
	}

	fields := []struct {
		dest  *datatypes.JSON
		value any
	}{
		{&record.GrammarErrors, f.GrammarErrors},
		{&record.VocabularyHighlights, f.VocabularyHighlights},
		{&record.PronunciationIssues, f.PronunciationIssues},
		{&record.Suggestions, f.Suggestions},
		{&record.Strengths, f.Strengths},
		{&record.FocusAreas, f.FocusAreas},
	}
	for _, field := range fields {
		data, err := shared.JSONAPI.Marshal(field.value)
		if err != nil {
			return nil, err
		}
		*field.dest = datatypes.JSON(data)
	}

	return record, nil
}

func feedbackFromRecord(record *model.ConversationFeedback) (*dto.FeedbackAnalysis, error) {
	feedback := &dto.FeedbackAnalysis{
		VocabularyScore: record.VocabularyScore,
		FluencyScore:    record.FluencyScore,
		FluencyNotes:    record.FluencyNotes,
		OverallScore:    record.OverallScore,
		IsFallback:      record.IsFallback,
	}

	fields := []struct {
		data datatypes.JSON
		dest any
	}{
		{record.GrammarErrors, &feedback.GrammarErrors},
		{record.VocabularyHighlights, &feedback.VocabularyHighlights},
		{record.PronunciationIssues, &feedback.PronunciationIssues},
		{record.Suggestions, &feedback.Suggestions},
		{record.Strengths, &feedback.Strengths},
		{record.FocusAreas, &feedback.FocusAreas},
	}
	for _, field := range fields {
		if len(field.data) == 0 {
			continue
		}
		if err := shared.JSONAPI.Unmarshal(field.data, field.dest); err != nil {
			return nil, err
		}
	}
	return feedback, nil
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
