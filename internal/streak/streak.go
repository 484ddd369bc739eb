// Package streak computes consecutive-due-day completion streaks and
// windowed progress percentages from a habit's completion ledger.
package streak

import (
	"math"
	"sort"

	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/dates"
	"github.com/stride-cli/stride/internal/models"
)

// Current returns the habit's streak of consecutive due days, each fully
// completed, ending at today. An unfinished "today" does not break an
// existing streak: if today is due but incomplete the walk starts from
// yesterday. Days the habit was not due are skipped, and days before the
// habit's creation never count. The walk is capped defensively and returns
// the capped value on runaway data.
func Current(h *models.Habit, today string) int {
	day := today
	if h.DueOn(today) && !h.CompletedOn(today) {
		day = dates.AddDays(day, -1)
	}

	created := h.CreatedDay()
	streak := 0
	for i := 0; i < constants.StreakWalkLimit; i++ {
		if day < created {
			break
		}
		if h.DueOn(day) {
			if !h.CompletedOn(day) {
				break
			}
			streak++
		}
		day = dates.AddDays(day, -1)
	}
	return streak
}

// Longest scans every completed due day in ascending order and returns the
// longest run of days that are adjacent with respect to the habit's due
// schedule. Non-due and incomplete days are skipped entirely and do not
// reset a run; only an intervening due day does.
func Longest(h *models.Habit) int {
	days := make([]string, 0, len(h.Completions))
	for d := range h.Completions {
		days = append(days, d)
	}
	sort.Strings(days)

	longest, run := 0, 0
	last := ""
	for _, day := range days {
		if !h.DueOn(day) || !h.CompletedOn(day) {
			continue
		}
		if last == "" || dueDaysBetween(h, last, day) > 0 {
			run = 1
		} else {
			run++
		}
		if run > longest {
			longest = run
		}
		last = day
	}
	return longest
}

// dueDaysBetween counts due days strictly between two day keys.
func dueDaysBetween(h *models.Habit, from, to string) int {
	n := 0
	for day := dates.AddDays(from, 1); day < to; day = dates.AddDays(day, 1) {
		if h.DueOn(day) {
			n++
		}
	}
	return n
}

// WeeklyProgress returns the percentage of due days completed over the
// trailing 7 calendar days including today, 0 when no days were due.
func WeeklyProgress(h *models.Habit, today string) int {
	return windowProgress(h, today, constants.WeeklyWindowDays)
}

// MonthlyProgress is WeeklyProgress over a trailing 30-day window.
func MonthlyProgress(h *models.Habit, today string) int {
	return windowProgress(h, today, constants.MonthlyWindowDays)
}

func windowProgress(h *models.Habit, today string, window int) int {
	created := h.CreatedDay()
	due, done := 0, 0
	for i := 0; i < window; i++ {
		day := dates.AddDays(today, -i)
		if day < created || !h.DueOn(day) {
			continue
		}
		due++
		if h.CompletedOn(day) {
			done++
		}
	}
	if due == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(due) * 100))
}

// Max returns the highest current streak across a set of habits.
func Max(habits []models.Habit, today string) int {
	best := 0
	for i := range habits {
		if s := Current(&habits[i], today); s > best {
			best = s
		}
	}
	return best
}
