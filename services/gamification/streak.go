package gamification

import "time"

type StreakResult struct {
	CurrentStreak   int  `json:"current_streak"`
	PreviousStreak  int  `json:"previous_streak"`
	StreakContinued bool `json:"streak_continued"`
	StreakBroken    bool `json:"streak_broken"`
	IsFirstActivity bool `json:"is_first_activity"`
}

// StreakPolicy computes the next streak from the last activity time, the
// current time and the stored streak.
type StreakPolicy func(lastActiveAt *time.Time, now time.Time, current int) StreakResult

// CalendarDayStreak counts midnight boundaries in now's location. Same day
// keeps the streak, the next day extends it, any larger gap resets it to 1.
func CalendarDayStreak(lastActiveAt *time.Time, now time.Time, current int) StreakResult {
	result := StreakResult{PreviousStreak: current}

	if lastActiveAt == nil {
		result.CurrentStreak = 1
		result.IsFirstActivity = true
		return result
	}

	switch days := calendarDaysBetween(lastActiveAt.In(now.Location()), now); {
	case days <= 0:
		result.CurrentStreak = current
	case days == 1:
		result.CurrentStreak = current + 1
		result.StreakContinued = true
	default:
		result.CurrentStreak = 1
		result.StreakBroken = true
	}

	return result
}

// RollingWindowStreak measures elapsed time instead of calendar days:
// under 24h keeps the streak, under 48h extends it, otherwise it resets.
func RollingWindowStreak(lastActiveAt *time.Time, now time.Time, current int) StreakResult {
	result := StreakResult{PreviousStreak: current}

	if lastActiveAt == nil {
		result.CurrentStreak = 1
		result.IsFirstActivity = true
		return result
	}

	switch elapsed := now.Sub(*lastActiveAt); {
	case elapsed < 24*time.Hour:
		result.CurrentStreak = current
	case elapsed < 48*time.Hour:
		result.CurrentStreak = current + 1
		result.StreakContinued = true
	default:
		result.CurrentStreak = 1
		result.StreakBroken = true
	}

	return result
}

func calendarDaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
