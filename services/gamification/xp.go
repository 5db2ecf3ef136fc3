package gamification

import (
	"math"

	"github.com/Kevin-Guilherme/fluentify/model"
)

const (
	maxDurationSeconds = 120
	maxDurationBonus   = 0.20
	streakBonusPerDay  = 0.01
	maxStreakBonus     = 0.30
)

var levelMultipliers = map[model.UserLevel]float64{
	model.LevelBeginner:     1.0,
	model.LevelIntermediate: 1.2,
	model.LevelAdvanced:     1.5,
	model.LevelFluent:       2.0,
}

// Scores are the three feedback scores that drive the XP award.
type Scores struct {
	Overall    int
	Vocabulary int
	Fluency    int
}

// CalculateXP turns a feedback result and session metadata into an XP award.
// Unknown levels use a multiplier of 1.
func CalculateXP(scores Scores, durationSeconds, streak int, level model.UserLevel) int {
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	if streak < 0 {
		streak = 0
	}

	baseXP := float64(scores.Overall+scores.Vocabulary+scores.Fluency) / 3
	durationBonus := math.Min(float64(durationSeconds)/maxDurationSeconds, 1) * maxDurationBonus
	streakBonus := math.Min(float64(streak)*streakBonusPerDay, maxStreakBonus)

	return int(math.Round(baseXP * (1 + durationBonus + streakBonus) * LevelMultiplier(level)))
}

// LevelMultiplier scales XP by proficiency. Unknown levels count as 1.
func LevelMultiplier(level model.UserLevel) float64 {
	if m, ok := levelMultipliers[level]; ok {
		return m
	}
	return 1.0
}
