package services

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenDatabase(DriverSqlite, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(start time.Time) *testClock {
	return &testClock{now: start}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func createTestUser(t *testing.T, db *gorm.DB, id string, mutate ...func(*model.User)) *model.User {
	t.Helper()

	user := &model.User{
		ID:    id,
		Email: id + "@example.com",
		Name:  "Learner " + id,
		Level: model.LevelBeginner,
	}
	for _, m := range mutate {
		m(user)
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestTopic(t *testing.T, db *gorm.DB, slug string, active bool) *model.Topic {
	t.Helper()

	topic := &model.Topic{
		ID:           newID(),
		Slug:         slug,
		Title:        "Topic " + slug,
		Emoji:        "☕",
		Category:     "daily-life",
		Difficulty:   model.LevelBeginner,
		SystemPrompt: "You are a friendly barista.",
		IsActive:     true,
		SortOrder:    1,
	}
	require.NoError(t, db.Create(topic).Error)
	if !active {
		// the column default would override a false value on insert
		require.NoError(t, db.Model(topic).Update("is_active", false).Error)
		topic.IsActive = false
	}
	return topic
}

const validFeedbackJSON = `{
	"grammarErrors": [{"error": "I goed", "correction": "I went", "explanation": "irregular past"}],
	"vocabularyScore": 80,
	"vocabularyHighlights": [{"word": "latte", "context": "I want a latte", "alternative": "flat white"}],
	"fluencyScore": 70,
	"fluencyNotes": "Steady pace",
	"pronunciationIssues": [],
	"overallScore": 78,
	"suggestions": ["Use past tense consistently"],
	"strengths": ["Polite requests"],
	"focusAreas": ["Irregular verbs"]
}`
