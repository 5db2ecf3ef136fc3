package services

import (
	"context"
	"testing"
	"time"

	"github.com/Kevin-Guilherme/fluentify/dto"
	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/Kevin-Guilherme/fluentify/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestUserService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := &UserService{}
	svc.wire(db)
	return svc, db
}

func TestEnsureUser(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureUser(ctx, "sub-1", "maria@example.com"))

	user, err := svc.GetMe(ctx, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, "maria", user.Name)
	assert.Equal(t, model.LevelBeginner, user.Level)

	require.NoError(t, db.Model(&model.User{}).Where("id = ?", "sub-1").Update("xp", 300).Error)
	require.NoError(t, svc.EnsureUser(ctx, "sub-1", "maria@example.com"))

	user, err = svc.GetMe(ctx, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, 300, user.XP)
}

func TestSyncUser(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()

	created, err := svc.SyncUser(ctx, "sub-1", dto.SyncUserRequest{Name: "Maria", Email: "maria@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Maria", created.Name)

	require.NoError(t, db.Model(&model.User{}).Where("id = ?", "sub-1").Update("xp", 1200).Error)

	updated, err := svc.SyncUser(ctx, "sub-1", dto.SyncUserRequest{
		Name:      "Maria Silva",
		Email:     "maria.silva@example.com",
		AvatarURL: "https://cdn.example.com/maria.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", updated.Name)
	assert.Equal(t, "maria.silva@example.com", updated.Email)
	assert.Equal(t, "https://cdn.example.com/maria.png", updated.AvatarURL)
	assert.Equal(t, 1200, updated.XP)
}

func TestUpdateMe(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()
	createTestUser(t, db, "user-1")

	lang := "pt-BR"
	user, err := svc.UpdateMe(ctx, "user-1", dto.UpdateUserRequest{NativeLanguage: &lang})
	require.NoError(t, err)
	assert.Equal(t, "pt-BR", user.NativeLanguage)
	assert.Equal(t, "Learner user-1", user.Name)

	_, err = svc.UpdateMe(ctx, "ghost", dto.UpdateUserRequest{NativeLanguage: &lang})
	assert.True(t, shared.HasCode(err, shared.CodeUserNotFound))
}

func seedHistory(t *testing.T, db *gorm.DB, userID string, completedScores []int, active int) {
	t.Helper()
	topic := createTestTopic(t, db, "history-"+userID, true)
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	n := 0
	add := func(status model.ConversationStatus, score *int, xp *int) {
		conv := model.Conversation{
			ID:        newID(),
			UserID:    userID,
			TopicID:   topic.ID,
			Status:    status,
			Score:     score,
			XPEarned:  xp,
			CreatedAt: base.Add(time.Duration(n) * time.Hour),
		}
		require.NoError(t, db.Omit("Topic", "Messages", "Feedback").Create(&conv).Error)
		n++
	}

	for _, s := range completedScores {
		score, xp := s, s+10
		add(model.ConversationCompleted, &score, &xp)
	}
	for i := 0; i < active; i++ {
		add(model.ConversationActive, nil, nil)
	}
}

func TestGetStats(t *testing.T) {
	svc, db := newTestUserService(t)
	createTestUser(t, db, "user-1", func(u *model.User) { u.XP = 500; u.Streak = 3 })
	seedHistory(t, db, "user-1", []int{80, 70}, 1)

	stats, err := svc.GetStats(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 500, stats.XP)
	assert.Equal(t, 3, stats.Streak)
	assert.EqualValues(t, 3, stats.TotalConversations)
	assert.EqualValues(t, 2, stats.CompletedConversations)
	assert.EqualValues(t, 170, stats.TotalXPEarned)
	require.NotNil(t, stats.AverageScore)
	assert.InDelta(t, 75.0, *stats.AverageScore, 0.001)
}

func TestGetStats_NoCompletedConversations(t *testing.T) {
	svc, db := newTestUserService(t)
	createTestUser(t, db, "user-1")

	stats, err := svc.GetStats(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Zero(t, stats.CompletedConversations)
	assert.Nil(t, stats.AverageScore)
}

func TestGetHistory(t *testing.T) {
	svc, db := newTestUserService(t)
	createTestUser(t, db, "user-1")
	seedHistory(t, db, "user-1", []int{60, 70, 80, 90}, 1)

	first, err := svc.GetHistory(context.Background(), "user-1", dto.HistoryQuery{PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Page)
	assert.Equal(t, 2, first.PageSize)
	assert.EqualValues(t, 5, first.Total)
	assert.True(t, first.HasMore)
	require.Len(t, first.Items, 2)
	assert.Equal(t, model.ConversationActive, first.Items[0].Status)

	last, err := svc.GetHistory(context.Background(), "user-1", dto.HistoryQuery{Page: 3, PageSize: 2})
	require.NoError(t, err)
	assert.False(t, last.HasMore)
	require.Len(t, last.Items, 1)
	require.NotNil(t, last.Items[0].Score)
	assert.Equal(t, 60, *last.Items[0].Score)

	defaults, err := svc.GetHistory(context.Background(), "user-1", dto.HistoryQuery{})
	require.NoError(t, err)
	assert.Equal(t, 10, defaults.PageSize)
	assert.Len(t, defaults.Items, 5)
}

func TestGetProgress(t *testing.T) {
	tests := []struct {
		name     string
		xp       int
		level    model.UserLevel
		next     model.UserLevel
		percent  int
		toNext   int
		topLevel bool
	}{
		{"fresh beginner", 0, model.LevelBeginner, model.LevelIntermediate, 0, 1000, false},
		{"halfway to intermediate", 999, model.LevelBeginner, model.LevelIntermediate, 99, 1, false},
		{"intermediate", 3000, model.LevelIntermediate, model.LevelAdvanced, 50, 2000, false},
		{"fluent", 20000, model.LevelFluent, "", 100, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, db := newTestUserService(t)
			createTestUser(t, db, "user-1", func(u *model.User) {
				u.XP = tt.xp
				u.Level = tt.level
			})

			progress, err := svc.GetProgress(context.Background(), "user-1")
			require.NoError(t, err)

			assert.Equal(t, tt.xp, progress.CurrentXP)
			assert.Equal(t, tt.level, progress.CurrentLevel)
			assert.Equal(t, tt.percent, progress.ProgressPercentage)

			if tt.topLevel {
				assert.Nil(t, progress.NextLevel)
				assert.Nil(t, progress.NextLevelXP)
				assert.Nil(t, progress.XPToNextLevel)
				return
			}
			require.NotNil(t, progress.NextLevel)
			assert.Equal(t, tt.next, *progress.NextLevel)
			require.NotNil(t, progress.XPToNextLevel)
			assert.Equal(t, tt.toNext, *progress.XPToNextLevel)
		})
	}
}
