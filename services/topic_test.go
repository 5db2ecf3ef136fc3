package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/Kevin-Guilherme/fluentify/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTopicCache struct {
	entries map[string][]byte
	ttls    map[string]time.Duration
	failGet bool
	failSet bool
	gets    int
}

func newFakeTopicCache() *fakeTopicCache {
	return &fakeTopicCache{
		entries: map[string][]byte{},
		ttls:    map[string]time.Duration{},
	}
}

func (c *fakeTopicCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.gets++
	if c.failGet {
		return false, errors.New("redis down")
	}
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, shared.JSONAPI.Unmarshal(data, dest)
}

func (c *fakeTopicCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if c.failSet {
		return errors.New("redis down")
	}
	data, err := shared.JSONAPI.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	c.ttls[key] = expiration
	return nil
}

func TestListTopics(t *testing.T) {
	db := newTestDB(t)
	createTestTopic(t, db, "coffee-shop", true)
	createTestTopic(t, db, "retired", false)
	advanced := createTestTopic(t, db, "business-meeting", true)
	require.NoError(t, db.Model(advanced).Updates(map[string]interface{}{"difficulty": model.LevelAdvanced, "sort_order": 7}).Error)

	svc := &TopicService{}
	svc.wire(db, nil)

	all, err := svc.ListTopics(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "coffee-shop", all[0].Slug)
	assert.Equal(t, "business-meeting", all[1].Slug)

	filtered, err := svc.ListTopics(context.Background(), model.LevelAdvanced)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, model.LevelAdvanced, filtered[0].Difficulty)
}

func TestGetTopic_ReadsThroughCache(t *testing.T) {
	db := newTestDB(t)
	topic := createTestTopic(t, db, "coffee-shop", true)
	cache := newFakeTopicCache()

	svc := &TopicService{}
	svc.wire(db, cache)

	want := topic.Title
	first, err := svc.GetTopic(context.Background(), topic.ID)
	require.NoError(t, err)
	assert.Equal(t, want, first.Title)
	assert.Equal(t, topicCacheTTL, cache.ttls["topic:"+topic.ID])

	// served from cache even after the row changes
	require.NoError(t, db.Model(&model.Topic{}).Where("id = ?", topic.ID).Update("title", "Renamed").Error)
	var stored model.Topic
	require.NoError(t, db.First(&stored, "id = ?", topic.ID).Error)
	require.Equal(t, "Renamed", stored.Title)

	second, err := svc.GetTopic(context.Background(), topic.ID)
	require.NoError(t, err)
	assert.Equal(t, want, second.Title)
}

func TestGetTopic_CacheFailuresAreBypassed(t *testing.T) {
	db := newTestDB(t)
	topic := createTestTopic(t, db, "coffee-shop", true)
	cache := newFakeTopicCache()
	cache.failGet = true
	cache.failSet = true

	svc := &TopicService{}
	svc.wire(db, cache)

	got, err := svc.GetTopic(context.Background(), topic.ID)
	require.NoError(t, err)
	assert.Equal(t, topic.ID, got.ID)
	assert.Equal(t, 1, cache.gets)
}

func TestGetTopic_NotFound(t *testing.T) {
	db := newTestDB(t)
	inactive := createTestTopic(t, db, "retired", false)

	svc := &TopicService{}
	svc.wire(db, newFakeTopicCache())

	for _, id := range []string{"missing", inactive.ID} {
		_, err := svc.GetTopic(context.Background(), id)
		assert.True(t, shared.HasCode(err, shared.CodeTopicNotFound))
	}
}

func TestRandomTopic(t *testing.T) {
	db := newTestDB(t)
	svc := &TopicService{}
	svc.wire(db, nil)

	_, err := svc.RandomTopic(context.Background())
	assert.True(t, shared.HasCode(err, shared.CodeTopicNotFound))

	topic := createTestTopic(t, db, "coffee-shop", true)
	createTestTopic(t, db, "retired", false)

	for i := 0; i < 5; i++ {
		got, err := svc.RandomTopic(context.Background())
		require.NoError(t, err)
		assert.Equal(t, topic.ID, got.ID)
	}
}

var _ TopicCache = (*RedisService)(nil)
