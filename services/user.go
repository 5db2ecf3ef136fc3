package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/Kevin-Guilherme/fluentify/dto"
	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/Kevin-Guilherme/fluentify/services/gamification"
	"github.com/Kevin-Guilherme/fluentify/services/repositories"
	"github.com/Kevin-Guilherme/fluentify/shared"
	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	defaultHistoryPage     = 1
	defaultHistoryPageSize = 10
)

type UserService struct {
	appContext.DefaultService

	db *gorm.DB
}

const USER_SVC = "user_svc"

func (svc UserService) Id() string {
	return USER_SVC
}

func (svc *UserService) Start() error {
	svc.wire(svc.Service(DATABASE_SVC).(*DatabaseService).Db())
	return nil
}

func (svc *UserService) wire(db *gorm.DB) {
	svc.db = db
}

func (svc *UserService) users(ctx context.Context) *repositories.UserRepository {
	return repositories.NewUserRepository(svc.db.WithContext(ctx))
}

// EnsureUser creates a BEGINNER row for a first-time token subject. The
// name defaults to the local part of the email.
func (svc *UserService) EnsureUser(ctx context.Context, userID, email string) error {
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}

	now := time.Now()
	return svc.users(ctx).CreateIfMissing(&model.User{
		ID:        userID,
		Email:     email,
		Name:      name,
		Level:     model.LevelBeginner,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// SyncUser upserts the identity provider's profile for userID.
func (svc *UserService) SyncUser(ctx context.Context, userID string, req dto.SyncUserRequest) (*dto.UserResponse, error) {
	now := time.Now()
	err := svc.users(ctx).UpsertUser(&model.User{
		ID:        userID,
		Email:     req.Email,
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
		Level:     model.LevelBeginner,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	log.WithField("user_id", userID).Info("User synced")
	return svc.GetMe(ctx, userID)
}

func (svc *UserService) getUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := svc.users(ctx).GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewUserNotFoundError()
		}
		return nil, err
	}
	return user, nil
}

func (svc *UserService) GetMe(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := svc.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(*user)
	return &resp, nil
}

// UpdateMe changes only the fields present in req.
func (svc *UserService) UpdateMe(ctx context.Context, userID string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if _, err := svc.getUser(ctx, userID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if req.NativeLanguage != nil {
		updates["native_language"] = *req.NativeLanguage
	}

	if len(updates) > 0 {
		if err := svc.users(ctx).UpdateProfile(userID, updates); err != nil {
			return nil, err
		}
	}
	return svc.GetMe(ctx, userID)
}

func (svc *UserService) GetStats(ctx context.Context, userID string) (*dto.UserStatsResponse, error) {
	user, err := svc.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	conversations := repositories.NewConversationRepository(svc.db.WithContext(ctx))

	total, err := conversations.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	completed, err := conversations.CompletedStats(userID)
	if err != nil {
		return nil, err
	}

	return &dto.UserStatsResponse{
		XP:                     user.XP,
		Streak:                 user.Streak,
		Level:                  user.Level,
		TotalConversations:     total,
		CompletedConversations: completed.Count,
		TotalXPEarned:          completed.TotalXP,
		AverageScore:           completed.AverageScore,
	}, nil
}

// GetHistory pages through the user's conversations, newest first.
func (svc *UserService) GetHistory(ctx context.Context, userID string, query dto.HistoryQuery) (*dto.ConversationHistoryResponse, error) {
	if _, err := svc.getUser(ctx, userID); err != nil {
		return nil, err
	}

	page, pageSize := query.Page, query.PageSize
	if page < 1 {
		page = defaultHistoryPage
	}
	if pageSize < 1 {
		pageSize = defaultHistoryPageSize
	}
	skip := (page - 1) * pageSize

	conversations := repositories.NewConversationRepository(svc.db.WithContext(ctx))

	total, err := conversations.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	rows, err := conversations.ListSummaries(userID, skip, pageSize)
	if err != nil {
		return nil, err
	}

	return &dto.ConversationHistoryResponse{
		Items:    summariesFromRows(rows),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  int64(skip+pageSize) < total,
	}, nil
}

// GetProgress reports the distance from the stored tier to the next one.
func (svc *UserService) GetProgress(ctx context.Context, userID string) (*dto.UserProgressResponse, error) {
	user, err := svc.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.UserProgressResponse{
		CurrentXP:          user.XP,
		CurrentLevel:       user.Level,
		ProgressPercentage: 100,
		Band:               gamification.GetLevel(user.XP),
	}

	next, nextXP, ok := gamification.NextTier(user.Level)
	if !ok {
		return resp, nil
	}

	currentXP := gamification.TierThreshold(user.Level)
	progress := math.Floor(float64(user.XP-currentXP) / float64(nextXP-currentXP) * 100)
	toNext := nextXP - user.XP

	resp.NextLevel = &next
	resp.NextLevelXP = &nextXP
	resp.ProgressPercentage = int(math.Min(100, progress))
	resp.XPToNextLevel = &toNext
	return resp, nil
}
