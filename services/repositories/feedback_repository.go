package repositories

import (
	"github.com/Kevin-Guilherme/fluentify/model"
	"gorm.io/gorm"
)

type FeedbackRepository struct {
	BaseRepository
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *FeedbackRepository) Create(feedback *model.ConversationFeedback) error {
	return ds.db.Create(feedback).Error
}

func (ds *FeedbackRepository) GetByConversation(conversationID string) (*model.ConversationFeedback, error) {
	var feedback model.ConversationFeedback
	if err := ds.db.Where("conversation_id = ?", conversationID).First(&feedback).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}
