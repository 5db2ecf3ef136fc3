package gamification

import (
	"math"

	"github.com/Kevin-Guilherme/fluentify/model"
)

type LevelInfo struct {
	Level       int    `json:"level"`
	Title       string `json:"title"`
	CurrentXP   int    `json:"current_xp"`
	NextLevelXP int    `json:"next_level_xp"`
	Progress    int    `json:"progress"`
}

type levelBand struct {
	level int
	min   int
	max   int // 0 means unbounded
	title string
}

var levelBands = []levelBand{
	{1, 0, 100, "Beginner I"},
	{2, 100, 250, "Beginner II"},
	{3, 250, 500, "Beginner III"},
	{4, 500, 1000, "Intermediate I"},
	{5, 1000, 2000, "Intermediate II"},
	{6, 2000, 3500, "Intermediate III"},
	{7, 3500, 5500, "Advanced I"},
	{8, 5500, 8000, "Advanced II"},
	{9, 8000, 12000, "Advanced III"},
	{10, 12000, 0, "Fluent"},
}

// GetLevel maps cumulative XP onto the ten-band ladder. Negative XP is
// treated as zero.
func GetLevel(totalXP int) LevelInfo {
	xp := totalXP
	if xp < 0 {
		xp = 0
	}

	band := levelBands[len(levelBands)-1]
	for _, b := range levelBands {
		if xp >= b.min && (b.max == 0 || xp < b.max) {
			band = b
			break
		}
	}

	if band.max == 0 {
		return LevelInfo{
			Level:       band.level,
			Title:       band.title,
			CurrentXP:   totalXP,
			NextLevelXP: totalXP,
			Progress:    100,
		}
	}

	progress := math.Round(float64(xp-band.min) / float64(band.max-band.min) * 100)
	return LevelInfo{
		Level:       band.level,
		Title:       band.title,
		CurrentXP:   totalXP,
		NextLevelXP: band.max,
		Progress:    int(progress),
	}
}

type tierThreshold struct {
	level model.UserLevel
	minXP int
}

var tierThresholds = []tierThreshold{
	{model.LevelBeginner, 0},
	{model.LevelIntermediate, 1000},
	{model.LevelAdvanced, 5000},
	{model.LevelFluent, 15000},
}

// TierForXP returns the proficiency tier stored on the user row.
func TierForXP(xp int) model.UserLevel {
	tier := model.LevelBeginner
	for _, t := range tierThresholds {
		if xp >= t.minXP {
			tier = t.level
		}
	}
	return tier
}

// NextTier returns the tier after level and the XP needed to reach it.
// ok is false at the top tier.
func NextTier(level model.UserLevel) (next model.UserLevel, minXP int, ok bool) {
	for i, t := range tierThresholds {
		if t.level == level && i+1 < len(tierThresholds) {
			return tierThresholds[i+1].level, tierThresholds[i+1].minXP, true
		}
	}
	return "", 0, false
}

// TierThreshold is the minimum XP of level. Unknown levels map to 0.
func TierThreshold(level model.UserLevel) int {
	for _, t := range tierThresholds {
		if t.level == level {
			return t.minXP
		}
	}
	return 0
}
