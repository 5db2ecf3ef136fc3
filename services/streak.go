package services

import (
	"context"
	"errors"
	"time"

	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/Kevin-Guilherme/fluentify/services/gamification"
	"github.com/Kevin-Guilherme/fluentify/services/repositories"
	"github.com/Kevin-Guilherme/fluentify/shared"
	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type StreakService struct {
	appContext.DefaultService

	db       *gorm.DB
	policy   gamification.StreakPolicy
	location *time.Location
	now      func() time.Time
}

const STREAK_SVC = "streak_svc"

func (svc StreakService) Id() string {
	return STREAK_SVC
}

func (svc *StreakService) Configure(ctx *appContext.Context) error {
	svc.location = loadLocation(getEnv("APP_TIMEZONE", "UTC"))
	return svc.DefaultService.Configure(ctx)
}

func (svc *StreakService) Start() error {
	svc.wire(svc.Service(DATABASE_SVC).(*DatabaseService).Db())
	return nil
}

func (svc *StreakService) wire(db *gorm.DB) {
	svc.db = db
	if svc.policy == nil {
		svc.policy = gamification.CalendarDayStreak
	}
	if svc.location == nil {
		svc.location = time.UTC
	}
	if svc.now == nil {
		svc.now = time.Now
	}
}

// UpdateStreak records activity for userID now and returns the new streak.
func (svc *StreakService) UpdateStreak(ctx context.Context, userID string) (*gamification.StreakResult, error) {
	var result gamification.StreakResult

	err := svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := repositories.NewUserRepository(tx).GetUser(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.NewUserNotFoundError()
			}
			return err
		}

		result, err = svc.ApplyStreak(tx, user, svc.now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ApplyStreak evaluates the policy for user at now and persists the streak
// and last_active_at through tx. The user value is updated in place.
func (svc *StreakService) ApplyStreak(tx *gorm.DB, user *model.User, now time.Time) (gamification.StreakResult, error) {
	now = now.In(svc.location)
	result := svc.policy(user.LastActiveAt, now, user.Streak)

	if err := repositories.NewUserRepository(tx).UpdateStreak(user.ID, result.CurrentStreak, now); err != nil {
		return result, err
	}

	if result.StreakBroken {
		log.WithFields(log.Fields{
			"user_id":  user.ID,
			"previous": result.PreviousStreak,
		}).Info("Streak reset")
	}

	user.Streak = result.CurrentStreak
	user.LastActiveAt = &now
	return result, nil
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.WithField("timezone", name).Warn("Unknown APP_TIMEZONE, using UTC")
		return time.UTC
	}
	return loc
}
