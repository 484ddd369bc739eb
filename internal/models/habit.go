package models

import (
	"time"

	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/dates"
)

type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencySpecific Frequency = "specific"
)

type Category string

const (
	CategoryHealth       Category = "health"
	CategoryFitness      Category = "fitness"
	CategoryLearning     Category = "learning"
	CategoryMindfulness  Category = "mindfulness"
	CategoryProductivity Category = "productivity"
	CategorySocial       Category = "social"
	CategoryOther        Category = "other"
)

// Categories lists the closed set of habit categories.
var Categories = []Category{
	CategoryHealth,
	CategoryFitness,
	CategoryLearning,
	CategoryMindfulness,
	CategoryProductivity,
	CategorySocial,
	CategoryOther,
}

// HabitColors are the accent color tags a habit can carry.
var HabitColors = []string{"emerald", "orange", "blue", "purple", "gold", "pink"}

// Reminder is an optional per-habit local reminder.
type Reminder struct {
	Enabled bool   `json:"enabled"`
	Time    string `json:"time"` // HH:MM, local
}

// Habit is a recurring activity definition with its sparse completion ledger.
type Habit struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Color       string    `json:"color"`
	Frequency   Frequency `json:"frequency"`
	// SpecificDays holds weekday indices (0=Sunday) for specific frequency
	SpecificDays []int     `json:"specificDays"`
	GoalPerDay   int       `json:"goalPerDay"`
	CreatedAt    time.Time `json:"createdAt"`
	// Completions maps day keys to completion counts. Keys exist only for
	// days with at least one recorded toggle; absence means zero.
	Completions map[string]int `json:"completions"`
	XPEarned    int            `json:"xpEarned"`
	Reminder    *Reminder      `json:"reminder,omitempty"`
}

// CreatedDay returns the day key of the habit's creation date. Completions
// never predate it.
func (h *Habit) CreatedDay() string {
	return dates.DayKey(h.CreatedAt)
}

// DueOn reports whether the habit's recurrence rule calls for it on the
// given day.
func (h *Habit) DueOn(day string) bool {
	if h.Frequency == FrequencyDaily {
		return true
	}
	wd := dates.Weekday(day)
	for _, d := range h.SpecificDays {
		if d == wd {
			return true
		}
	}
	return false
}

// DueToday reports whether the habit is due on the current day.
func (h *Habit) DueToday() bool {
	return h.DueOn(dates.Today())
}

// CompletionsOn returns the completion count recorded for a day, zero if
// the day has no entry.
func (h *Habit) CompletionsOn(day string) int {
	return h.Completions[day]
}

// CompletedOn reports whether the daily goal was fully met on a day.
func (h *Habit) CompletedOn(day string) bool {
	return h.CompletionsOn(day) >= h.GoalPerDay
}

// Toggle records one completion unit for a day. Below the goal it
// increments by one; at the goal it wraps the whole day back to zero (a
// full-day undo). Returns the new count and the XP delta the change earns.
func (h *Habit) Toggle(day string) (int, int) {
	cur := h.CompletionsOn(day)
	if cur < h.GoalPerDay {
		h.setCompletions(day, cur+1)
		return cur + 1, constants.XPPerCompletion
	}
	h.setCompletions(day, 0)
	return 0, -cur * constants.XPPerCompletion
}

// SetFull jumps a day straight to the full goal, crediting XP for the
// remaining units. Used for one-shot past-day toggling.
func (h *Habit) SetFull(day string) (int, int) {
	cur := h.CompletionsOn(day)
	h.setCompletions(day, h.GoalPerDay)
	return h.GoalPerDay, (h.GoalPerDay - cur) * constants.XPPerCompletion
}

// SetEmpty resets a day to zero, reversing the XP its completions earned.
func (h *Habit) SetEmpty(day string) (int, int) {
	cur := h.CompletionsOn(day)
	h.setCompletions(day, 0)
	return 0, -cur * constants.XPPerCompletion
}

func (h *Habit) setCompletions(day string, count int) {
	if h.Completions == nil {
		h.Completions = make(map[string]int)
	}
	h.Completions[day] = count
}

// XPEarnedOn returns the XP the habit's recorded completions earned for a
// single day.
func (h *Habit) XPEarnedOn(day string) int {
	return h.CompletionsOn(day) * constants.XPPerCompletion
}

// Clone returns a deep copy of the habit.
func (h *Habit) Clone() Habit {
	c := *h
	c.SpecificDays = append([]int(nil), h.SpecificDays...)
	c.Completions = make(map[string]int, len(h.Completions))
	for k, v := range h.Completions {
		c.Completions[k] = v
	}
	if h.Reminder != nil {
		r := *h.Reminder
		c.Reminder = &r
	}
	return c
}
