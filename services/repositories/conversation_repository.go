package repositories

import (
	"time"

	"github.com/Kevin-Guilherme/fluentify/model"
	"gorm.io/gorm"
)

type ConversationRepository struct {
	BaseRepository
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// ConversationSummaryRow is one line of a conversation listing.
type ConversationSummaryRow struct {
	ID           string
	Status       model.ConversationStatus
	Score        *int
	XPEarned     *int
	Duration     *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	TopicTitle   string
	TopicEmoji   string
	MessageCount int
}

// CreateWithSystemMessage stores a new conversation and its seed message
// atomically.
func (ds *ConversationRepository) CreateWithSystemMessage(conversation *model.Conversation, system *model.Message) error {
	return ds.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Topic", "Messages", "Feedback").Create(conversation).Error; err != nil {
			return err
		}
		system.ConversationID = conversation.ID
		return tx.Create(system).Error
	})
}

// GetOwned loads a conversation only when it belongs to userID, with its
// topic and messages in creation order.
func (ds *ConversationRepository) GetOwned(id, userID string) (*model.Conversation, error) {
	var conversation model.Conversation
	err := ds.db.
		Preload("Topic").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC").Order("id ASC")
		}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&conversation).Error
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// AppendIfActive inserts msg only while its conversation is ACTIVE. The
// status row is touched first so a concurrent completion either waits for
// this insert or makes it fail the check. Returns false for terminal
// conversations.
func (ds *ConversationRepository) AppendIfActive(msg *model.Message) (bool, error) {
	appended := false
	err := ds.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Conversation{}).
			Where("id = ? AND status = ?", msg.ConversationID, model.ConversationActive).
			Update("updated_at", msg.CreatedAt)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		appended = true
		return nil
	})
	return appended, err
}

func (ds *ConversationRepository) AppendMessage(msg *model.Message) error {
	return ds.db.Create(msg).Error
}

// MarkCompleted performs the ACTIVE -> COMPLETED transition and writes the
// result columns. It reports false when the conversation was no longer
// ACTIVE, in which case nothing is written.
func (ds *ConversationRepository) MarkCompleted(id, userID string, score, xpEarned, duration int, now time.Time) (bool, error) {
	result := ds.db.Model(&model.Conversation{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, model.ConversationActive).
		Updates(map[string]interface{}{
			"status":     model.ConversationCompleted,
			"score":      score,
			"xp_earned":  xpEarned,
			"duration":   duration,
			"updated_at": now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (ds *ConversationRepository) MarkAbandoned(id, userID string, now time.Time) (bool, error) {
	result := ds.db.Model(&model.Conversation{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, model.ConversationActive).
		Updates(map[string]interface{}{
			"status":     model.ConversationAbandoned,
			"updated_at": now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// ListSummaries returns the user's conversations newest first with message
// counts computed in the same grouped query. limit <= 0 returns everything.
func (ds *ConversationRepository) ListSummaries(userID string, offset, limit int) ([]ConversationSummaryRow, error) {
	query := ds.db.Table("conversations AS c").
		Select(`c.id, c.status, c.score, c.xp_earned, c.duration, c.created_at, c.updated_at,
			t.title AS topic_title, t.emoji AS topic_emoji, COUNT(m.id) AS message_count`).
		Joins("JOIN topics AS t ON t.id = c.topic_id").
		Joins("LEFT JOIN messages AS m ON m.conversation_id = c.id").
		Where("c.user_id = ?", userID).
		Group("c.id, c.status, c.score, c.xp_earned, c.duration, c.created_at, c.updated_at, t.title, t.emoji").
		Order("c.created_at DESC").
		Order("c.id DESC")

	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []ConversationSummaryRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (ds *ConversationRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := ds.db.Model(&model.Conversation{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CompletedStats aggregates the user's completed conversations.
type CompletedStats struct {
	Count        int64
	TotalXP      int64
	AverageScore *float64
}

func (ds *ConversationRepository) CompletedStats(userID string) (*CompletedStats, error) {
	var stats CompletedStats
	err := ds.db.Model(&model.Conversation{}).
		Select("COUNT(*) AS count, COALESCE(SUM(xp_earned), 0) AS total_xp, AVG(score) AS average_score").
		Where("user_id = ? AND status = ?", userID, model.ConversationCompleted).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
