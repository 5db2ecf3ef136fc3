package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kevin-Guilherme/fluentify/dto"
	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/Kevin-Guilherme/fluentify/services/repositories"
	"github.com/Kevin-Guilherme/fluentify/shared"
	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const topicCacheTTL = 10 * time.Minute

// TopicCache is the JSON cache in front of topic lookups.
type TopicCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

type TopicService struct {
	appContext.DefaultService

	db    *gorm.DB
	cache TopicCache
}

const TOPIC_SVC = "topic_svc"

func (svc TopicService) Id() string {
	return TOPIC_SVC
}

func (svc *TopicService) Start() error {
	var cache TopicCache
	if redisSvc, ok := svc.Service(REDIS_SVC).(*RedisService); ok {
		cache = redisSvc
	}
	svc.wire(svc.Service(DATABASE_SVC).(*DatabaseService).Db(), cache)
	return nil
}

func (svc *TopicService) wire(db *gorm.DB, cache TopicCache) {
	svc.db = db
	svc.cache = cache
}

func (svc *TopicService) topics(ctx context.Context) *repositories.TopicRepository {
	return repositories.NewTopicRepository(svc.db.WithContext(ctx))
}

// ListTopics returns active topics in display order, optionally filtered by
// difficulty.
func (svc *TopicService) ListTopics(ctx context.Context, difficulty model.UserLevel) ([]dto.TopicResponse, error) {
	topics, err := svc.topics(ctx).ListActive(difficulty)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.TopicResponse, 0, len(topics))
	for _, t := range topics {
		resp = append(resp, dto.NewTopicResponse(t))
	}
	return resp, nil
}

// GetTopic returns an active topic, reading through the cache.
func (svc *TopicService) GetTopic(ctx context.Context, id string) (*dto.TopicResponse, error) {
	key := fmt.Sprintf("topic:%s", id)

	if svc.cache != nil {
		var cached dto.TopicResponse
		found, err := svc.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			log.WithFields(log.Fields{"key": key, "error": err.Error()}).Warn("Topic cache read failed")
		} else if found {
			return &cached, nil
		}
	}

	topic, err := svc.topics(ctx).GetActive(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewTopicNotFoundError()
		}
		return nil, err
	}

	resp := dto.NewTopicResponse(*topic)
	if svc.cache != nil {
		if err := svc.cache.Set(ctx, key, resp, topicCacheTTL); err != nil {
			log.WithFields(log.Fields{"key": key, "error": err.Error()}).Warn("Topic cache write failed")
		}
	}
	return &resp, nil
}

func (svc *TopicService) RandomTopic(ctx context.Context) (*dto.TopicResponse, error) {
	topic, err := svc.topics(ctx).RandomActive()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewTopicNotFoundError()
		}
		return nil, err
	}
	resp := dto.NewTopicResponse(*topic)
	return &resp, nil
}
