package repositories

import (
	"time"

	"github.com/Kevin-Guilherme/fluentify/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository handles user-related database operations
type UserRepository struct {
	BaseRepository
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *UserRepository) GetUser(userID string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertUser inserts the user or refreshes its identity fields when the id
// already exists. Progress columns are never touched here.
func (ds *UserRepository) UpsertUser(user *model.User) error {
	return ds.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "avatar_url", "updated_at"}),
	}).Create(user).Error
}

// CreateIfMissing inserts user unless a row with the same id exists.
func (ds *UserRepository) CreateIfMissing(user *model.User) error {
	return ds.db.Clauses(clause.OnConflict{DoNothing: true}).Create(user).Error
}

func (ds *UserRepository) UpdateProfile(userID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	return ds.db.Model(&model.User{}).Where("id = ?", userID).Updates(updates).Error
}

// IncrementXP adds delta to the stored total in a single statement.
func (ds *UserRepository) IncrementXP(userID string, delta int) error {
	return ds.db.Model(&model.User{}).
		Where("id = ?", userID).
		Update("xp", gorm.Expr("xp + ?", delta)).Error
}

func (ds *UserRepository) UpdateStreak(userID string, streak int, lastActiveAt time.Time) error {
	return ds.db.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"streak":         streak,
			"last_active_at": lastActiveAt,
		}).Error
}

func (ds *UserRepository) UpdateLevel(userID string, level model.UserLevel) error {
	return ds.db.Model(&model.User{}).
		Where("id = ?", userID).
		Update("level", level).Error
}
