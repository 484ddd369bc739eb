// Package challenges maintains the two active time-boxed goals (one weekly,
// one monthly), recomputes their progress from aggregate habit activity,
// and regenerates them from templates when their period passes.
package challenges

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/stride-cli/stride/internal/dates"
	"github.com/stride-cli/stride/internal/models"
	"github.com/stride-cli/stride/internal/streak"
)

// Template describes a challenge before it is bound to a calendar period.
// The template's name decides how progress is measured (see classify).
type Template struct {
	Name        string
	Description string
	Target      int
	Reward      int
}

var WeeklyTemplates = []Template{
	{Name: "Completion Sprint", Description: "Complete habits 15 times this week", Target: 15, Reward: 75},
	{Name: "Streak Keeper", Description: "Reach a 5-day streak on any habit", Target: 5, Reward: 100},
	{Name: "XP Rush", Description: "Grow your total XP to 300", Target: 300, Reward: 90},
	{Name: "Daily Devotion", Description: "Log activity on 5 different days", Target: 5, Reward: 80},
}

var MonthlyTemplates = []Template{
	{Name: "Completion Marathon", Description: "Complete habits 60 times this month", Target: 60, Reward: 300},
	{Name: "Streak Builder", Description: "Reach a 14-day streak on any habit", Target: 14, Reward: 350},
	{Name: "XP Champion", Description: "Grow your total XP to 1000", Target: 1000, Reward: 400},
	{Name: "Consistency Month", Description: "Log activity on 20 different days", Target: 20, Reward: 250},
}

// metric is the semantic category a challenge's progress is measured in,
// inferred from its name so it survives serialization without extra fields.
type metric int

const (
	metricActiveDays metric = iota // distinct days with any completion
	metricCompletions
	metricStreak
	metricXP
)

func classify(name string) metric {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "streak"):
		return metricStreak
	case strings.Contains(n, "xp"):
		return metricXP
	case strings.Contains(n, "complet"):
		return metricCompletions
	default:
		return metricActiveDays
	}
}

// Generate binds a randomly chosen template of the given type to the
// calendar period containing today. The random source is injected so tests
// can select deterministic templates.
func Generate(t models.ChallengeType, today string, rng *rand.Rand) models.Challenge {
	var tmpl Template
	var start, end string
	if t == models.ChallengeWeekly {
		tmpl = WeeklyTemplates[rng.Intn(len(WeeklyTemplates))]
		start, end = dates.WeekBounds(today)
	} else {
		tmpl = MonthlyTemplates[rng.Intn(len(MonthlyTemplates))]
		start, end = dates.MonthBounds(today)
	}

	return models.Challenge{
		ID:          fmt.Sprintf("%s-%s", t, start),
		Type:        t,
		Name:        tmpl.Name,
		Description: tmpl.Description,
		Target:      tmpl.Target,
		Progress:    0,
		Reward:      tmpl.Reward,
		StartDate:   start,
		EndDate:     end,
		Completed:   false,
	}
}

// Refresh ensures exactly one active weekly and one active monthly
// challenge. Expired challenges are regenerated in place, preserving their
// slot; missing types are appended. Run at startup and after day rollover.
func Refresh(cs []models.Challenge, today string, rng *rand.Rand) []models.Challenge {
	out := make([]models.Challenge, 0, 2)
	have := make(map[models.ChallengeType]bool)
	for _, c := range cs {
		if have[c.Type] {
			continue
		}
		if c.Expired(today) {
			c = Generate(c.Type, today, rng)
		}
		out = append(out, c)
		have[c.Type] = true
	}
	for _, t := range []models.ChallengeType{models.ChallengeWeekly, models.ChallengeMonthly} {
		if !have[t] {
			out = append(out, Generate(t, today, rng))
		}
	}
	return out
}

// Recompute refreshes a single challenge's progress from current habit
// activity. Completed challenges are left untouched. The second return is
// true only on the recompute pass where the challenge first completes, so
// the caller awards the reward exactly once.
func Recompute(c models.Challenge, habits []models.Habit, stats models.UserStats, today string) (models.Challenge, bool) {
	if c.Completed {
		return c, false
	}

	end := today
	if c.EndDate < end {
		end = c.EndDate
	}

	var progress int
	switch classify(c.Name) {
	case metricCompletions:
		progress = completionsInWindow(habits, c.StartDate, end)
	case metricStreak:
		progress = streak.Max(habits, today)
	case metricXP:
		progress = stats.TotalXP
	default:
		progress = activeDaysInWindow(habits, c.StartDate, end)
	}

	if progress > c.Target {
		progress = c.Target
	}
	c.Progress = progress
	if progress >= c.Target {
		c.Completed = true
		return c, true
	}
	return c, false
}

// RecomputeAll recomputes every active challenge and returns the updated
// list plus the challenges that completed during this pass.
func RecomputeAll(cs []models.Challenge, habits []models.Habit, stats models.UserStats, today string) ([]models.Challenge, []models.Challenge) {
	out := make([]models.Challenge, len(cs))
	var completed []models.Challenge
	for i, c := range cs {
		next, done := Recompute(c, habits, stats, today)
		out[i] = next
		if done {
			completed = append(completed, next)
		}
	}
	return out, completed
}

func completionsInWindow(habits []models.Habit, start, end string) int {
	total := 0
	for i := range habits {
		for day, count := range habits[i].Completions {
			if day >= start && day <= end {
				total += count
			}
		}
	}
	return total
}

func activeDaysInWindow(habits []models.Habit, start, end string) int {
	days := make(map[string]bool)
	for i := range habits {
		for day, count := range habits[i].Completions {
			if count > 0 && day >= start && day <= end {
				days[day] = true
			}
		}
	}
	return len(days)
}
