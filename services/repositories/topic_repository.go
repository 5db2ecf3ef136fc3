package repositories

import (
	"github.com/Kevin-Guilherme/fluentify/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TopicRepository struct {
	BaseRepository
}

func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// ListActive returns active topics ordered for display. An empty difficulty
// means every level.
func (ds *TopicRepository) ListActive(difficulty model.UserLevel) ([]model.Topic, error) {
	query := ds.db.Where("is_active = ?", true)
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var topics []model.Topic
	if err := query.Order("sort_order ASC").Order("title ASC").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (ds *TopicRepository) GetActive(id string) (*model.Topic, error) {
	var topic model.Topic
	if err := ds.db.Where("id = ? AND is_active = ?", id, true).First(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (ds *TopicRepository) RandomActive() (*model.Topic, error) {
	var topic model.Topic
	if err := ds.db.Where("is_active = ?", true).Order("RANDOM()").Take(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

// UpsertBySlug inserts topic or overwrites the content columns of the topic
// with the same slug. The id of an existing row is kept.
func (ds *TopicRepository) UpsertBySlug(topic *model.Topic) error {
	return ds.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "description", "emoji", "category", "difficulty",
			"system_prompt", "is_active", "sort_order", "updated_at",
		}),
	}).Create(topic).Error
}
