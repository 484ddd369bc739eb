// Package badges maps habit streaks to the global set of unlocked streak
// badges. Badges are global, not per habit: any habit's streak can unlock
// them, and once unlocked they never lock again.
package badges

import (
	"github.com/stride-cli/stride/internal/models"
	"github.com/stride-cli/stride/internal/streak"
)

// Badge is unlocked the first time any habit's current streak reaches
// Streak days.
type Badge struct {
	Streak      int
	ID          string
	Name        string
	Description string
	Icon        string
}

// Table is the fixed ascending streak badge table.
var Table = []Badge{
	{Streak: 3, ID: "starter", Name: "Starter", Description: "3-day streak", Icon: "🌱"},
	{Streak: 7, ID: "committed", Name: "Committed", Description: "7-day streak", Icon: "🔥"},
	{Streak: 14, ID: "dedicated", Name: "Dedicated", Description: "14-day streak", Icon: "💪"},
	{Streak: 30, ID: "unstoppable", Name: "Unstoppable", Description: "30-day streak", Icon: "🚀"},
	{Streak: 60, ID: "relentless", Name: "Relentless", Description: "60-day streak", Icon: "⚡"},
	{Streak: 100, ID: "centurion", Name: "Centurion", Description: "100-day streak", Icon: "👑"},
}

// ByID looks a badge up by id, nil when unknown.
func ByID(id string) *Badge {
	for i := range Table {
		if Table[i].ID == id {
			return &Table[i]
		}
	}
	return nil
}

// NewlyUnlocked returns the badge ids a single streak value unlocks beyond
// the already unlocked set, in table order.
func NewlyUnlocked(currentStreak int, unlocked []string) []string {
	have := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		have[id] = true
	}

	var fresh []string
	for _, b := range Table {
		if currentStreak >= b.Streak && !have[b.ID] {
			fresh = append(fresh, b.ID)
		}
	}
	return fresh
}

// EvaluateAll checks every habit's current streak against the global
// unlocked set and returns the union of newly unlocked badge ids, with
// duplicates suppressed. Run after every completion-affecting mutation.
func EvaluateAll(habits []models.Habit, unlocked []string, today string) []string {
	seen := make(map[string]bool)
	var fresh []string
	combined := append([]string(nil), unlocked...)
	for i := range habits {
		s := streak.Current(&habits[i], today)
		for _, id := range NewlyUnlocked(s, combined) {
			if !seen[id] {
				seen[id] = true
				fresh = append(fresh, id)
				combined = append(combined, id)
			}
		}
	}
	return fresh
}
