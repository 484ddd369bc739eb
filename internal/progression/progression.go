// Package progression converts XP deltas into levels, titles, and unlocked
// rewards. Derived fields (level, current-level XP, title) are always
// recomputed from the raw total; only the total is authoritative.
package progression

import (
	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/models"
)

// Reward is unlocked the first time the user reaches its level.
type Reward struct {
	Level       int
	Type        string
	Name        string
	Description string
}

// Rewards is the fixed ascending unlock table. Order matters: newly
// unlocked rewards append in table order.
var Rewards = []Reward{
	{Level: 1, Type: "badge", Name: "First Steps", Description: "Started your habit journey!"},
	{Level: 3, Type: "theme", Name: "Ocean Theme", Description: "Unlocked cool blue accents"},
	{Level: 5, Type: "badge", Name: "Streak Master", Description: "Reached Level 5!"},
	{Level: 7, Type: "animation", Name: "Sparkle Effect", Description: "Cards now sparkle on hover"},
	{Level: 10, Type: "badge", Name: "Level 10 Pro", Description: "You're getting serious!"},
	{Level: 15, Type: "theme", Name: "Sunset Theme", Description: "Warm orange gradients"},
	{Level: 20, Type: "badge", Name: "Discipline Pro", Description: "Incredible dedication!"},
	{Level: 25, Type: "animation", Name: "Glow Effect", Description: "Enhanced glow animations"},
	{Level: 30, Type: "badge", Name: "Consistency King", Description: "Royalty status achieved!"},
	{Level: 50, Type: "badge", Name: "Habit Legend", Description: "Legendary status!"},
}

// Title thresholds, ascending by MinLevel. The highest threshold at or
// below the level wins.
var Titles = []struct {
	MinLevel int
	Title    string
}{
	{0, "Beginner"},
	{5, "Habit Builder"},
	{10, "Streak Master"},
	{20, "Discipline Pro"},
	{30, "Consistency King"},
	{50, "Habit Legend"},
	{100, "Legendary Champion"},
}

// StreakBonus is a one-time XP award the instant a streak reaches Days.
type StreakBonus struct {
	Days int
	XP   int
}

var StreakBonuses = []StreakBonus{
	{Days: 7, XP: 50},
	{Days: 30, XP: 200},
	{Days: 60, XP: 400},
	{Days: 100, XP: 1000},
}

// CalculateLevel derives the level and within-level XP from a total.
func CalculateLevel(totalXP int) (level, currentLevelXP int) {
	return totalXP/constants.XPPerLevel + 1, totalXP % constants.XPPerLevel
}

// AddXP applies a delta to the stats record and returns the updated record,
// whether the level increased, and any rewards newly unlocked by the new
// level. The total is clamped at a floor of zero: a full-day undo reverses
// exactly the XP it awarded, so the clamp only matters for corrupted data.
func AddXP(stats models.UserStats, delta int) (models.UserStats, bool, []string) {
	newStats := stats.Clone()
	newStats.TotalXP += delta
	if newStats.TotalXP < 0 {
		newStats.TotalXP = 0
	}

	newStats.Level, newStats.CurrentLevelXP = CalculateLevel(newStats.TotalXP)
	newStats.Title = TitleForLevel(newStats.Level)
	leveledUp := newStats.Level > stats.Level

	var newRewards []string
	for _, r := range Rewards {
		if newStats.Level >= r.Level && !stats.HasReward(r.Name) {
			newRewards = append(newRewards, r.Name)
		}
	}
	newStats.UnlockedRewards = append(newStats.UnlockedRewards, newRewards...)

	return newStats, leveledUp, newRewards
}

// Recompute refreshes the derived fields without changing the total. Used
// after loading a snapshot so stored caches can never drift from the total.
func Recompute(stats models.UserStats) models.UserStats {
	stats.Level, stats.CurrentLevelXP = CalculateLevel(stats.TotalXP)
	stats.Title = TitleForLevel(stats.Level)
	return stats
}

// TitleForLevel returns the display title for a level.
func TitleForLevel(level int) string {
	title := Titles[0].Title
	for _, t := range Titles {
		if level >= t.MinLevel {
			title = t.Title
		}
	}
	return title
}

// StreakBonusXP returns the bonus awarded when a streak lands exactly on a
// milestone. A streak that merely passes through a milestone while already
// above it earns nothing.
func StreakBonusXP(streak int) int {
	bonus := 0
	for _, b := range StreakBonuses {
		if streak == b.Days {
			bonus += b.XP
		}
	}
	return bonus
}

// NextStreakBonus returns the first milestone above the current streak,
// nil when the table is exhausted.
func NextStreakBonus(streak int) *StreakBonus {
	for _, b := range StreakBonuses {
		if b.Days > streak {
			bonus := b
			return &bonus
		}
	}
	return nil
}
