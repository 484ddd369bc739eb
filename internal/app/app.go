// Package app is the single mutation surface over the application state.
// Every command clones the current state, applies its change plus all
// derived recomputation (XP, badges, challenges), persists the result, and
// only then replaces the in-memory state. Commands targeting a missing id
// leave the state untouched and never error.
package app

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/stride-cli/stride/internal/badges"
	"github.com/stride-cli/stride/internal/challenges"
	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/dates"
	"github.com/stride-cli/stride/internal/logger"
	"github.com/stride-cli/stride/internal/models"
	"github.com/stride-cli/stride/internal/progression"
	"github.com/stride-cli/stride/internal/storage"
	"github.com/stride-cli/stride/internal/streak"
)

// Result reports everything a toggle changed, for the UI layer to render
// (XP toasts, level-up celebration, badge and challenge unlocks).
type Result struct {
	Toggled             bool
	NewCount            int
	XPChange            int
	LeveledUp           bool
	NewRewards          []string
	NewBadges           []string
	CompletedChallenges []models.Challenge
	Streak              int
}

// HabitParams carries the user-editable fields of a habit.
type HabitParams struct {
	Name         string
	Description  string
	Category     models.Category
	Color        string
	Frequency    models.Frequency
	SpecificDays []int
	GoalPerDay   int
	Reminder     *models.Reminder
}

type App struct {
	store storage.Provider
	state *models.AppState
	rng   *rand.Rand

	// today and now are swappable in tests; production uses the local clock.
	today func() string
	now   func() time.Time
}

// New loads the snapshot from the store, refreshes expired challenges in
// place, and persists the result. The random source drives challenge
// template selection and is injected so tests stay deterministic.
func New(store storage.Provider, rng *rand.Rand) (*App, error) {
	a := &App{
		store: store,
		rng:   rng,
		today: dates.Today,
		now:   time.Now,
	}

	state, err := store.Load()
	if err != nil {
		return nil, err
	}
	a.state = state

	today := a.today()
	refreshed := challenges.Refresh(state.Challenges, today, rng)
	if changed := len(refreshed) != len(state.Challenges) || !sameChallenges(refreshed, state.Challenges); changed {
		next := state.Clone()
		next.Challenges = refreshed
		if err := a.commit(next); err != nil {
			return nil, err
		}
	}

	return a, nil
}

func sameChallenges(a, b []models.Challenge) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

// State returns the current state tree. Callers treat it as read-only;
// all mutation goes through commands.
func (a *App) State() *models.AppState {
	return a.state
}

func (a *App) commit(next *models.AppState) error {
	next.LastVisit = a.today()
	if err := a.store.Save(next); err != nil {
		return err
	}
	a.state = next
	return nil
}

// AddHabit creates a habit from params and returns it.
func (a *App) AddHabit(p HabitParams) (models.Habit, error) {
	h := models.Habit{
		ID:           uuid.New().String(),
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		Color:        p.Color,
		Frequency:    p.Frequency,
		SpecificDays: append([]int(nil), p.SpecificDays...),
		GoalPerDay:   p.GoalPerDay,
		CreatedAt:    a.now(),
		Completions:  make(map[string]int),
		Reminder:     p.Reminder,
	}
	if h.GoalPerDay < 1 {
		h.GoalPerDay = 1
	}
	if h.Category == "" {
		h.Category = models.CategoryOther
	}
	if h.Color == "" {
		h.Color = models.HabitColors[0]
	}

	next := a.state.Clone()
	next.Habits = append(next.Habits, h)
	return h, a.commit(next)
}

// UpdateHabit replaces the habit with the same id. Unknown ids are a no-op.
func (a *App) UpdateHabit(h models.Habit) error {
	next := a.state.Clone()
	target := next.HabitByID(h.ID)
	if target == nil {
		logger.Debug("Update targeted missing habit", "id", h.ID)
		return nil
	}
	*target = h.Clone()
	return a.commit(next)
}

// DeleteHabit removes a habit outright. There is no soft delete; the
// leaderboard and stats recompute from whatever habits remain.
func (a *App) DeleteHabit(id string) error {
	next := a.state.Clone()
	kept := next.Habits[:0]
	found := false
	for i := range next.Habits {
		if next.Habits[i].ID == id {
			found = true
			continue
		}
		kept = append(kept, next.Habits[i])
	}
	if !found {
		return nil
	}
	next.Habits = kept
	return a.commit(next)
}

// ToggleToday records one completion unit for today, or wraps a fully
// completed day back to zero. Habits not due today are a no-op. Runs the
// full derived pipeline: streak bonus, progression, badges, challenges.
func (a *App) ToggleToday(id string) (Result, error) {
	today := a.today()

	habit := a.state.HabitByID(id)
	if habit == nil || !habit.DueOn(today) {
		return Result{}, nil
	}

	return a.applyToggle(id, today, func(h *models.Habit) (int, int) {
		return h.Toggle(today)
	})
}

// ToggleDay records a past day in one shot: incomplete days jump straight
// to the full goal, completed days reset to zero. Days before the habit
// existed or after today are a no-op.
func (a *App) ToggleDay(id, day string) (Result, error) {
	today := a.today()
	habit := a.state.HabitByID(id)
	if habit == nil || !dates.IsValid(day) || day > today || day < habit.CreatedDay() {
		return Result{}, nil
	}

	return a.applyToggle(id, today, func(h *models.Habit) (int, int) {
		if h.CompletionsOn(day) < h.GoalPerDay {
			return h.SetFull(day)
		}
		return h.SetEmpty(day)
	})
}

// applyToggle runs the shared completion pipeline: mutate the ledger via
// change, award XP (with a streak milestone bonus when the streak value
// lands exactly on one), evaluate badges across all habits, recompute
// challenges, and grant any newly completed challenge's reward.
func (a *App) applyToggle(id, today string, change func(*models.Habit) (int, int)) (Result, error) {
	next := a.state.Clone()
	habit := next.HabitByID(id)

	streakBefore := streak.Current(habit, today)
	newCount, xpChange := change(habit)
	streakAfter := streak.Current(habit, today)

	if xpChange > 0 && streakAfter > streakBefore {
		xpChange += progression.StreakBonusXP(streakAfter)
	}
	habit.XPEarned += xpChange

	stats, leveledUp, newRewards := progression.AddXP(next.UserStats, xpChange)

	newBadges := badges.EvaluateAll(next.Habits, stats.Badges, today)
	stats.Badges = append(stats.Badges, newBadges...)

	updated, completed := challenges.RecomputeAll(next.Challenges, next.Habits, stats, today)
	next.Challenges = updated
	for _, c := range completed {
		var up bool
		var rewards []string
		stats, up, rewards = progression.AddXP(stats, c.Reward)
		leveledUp = leveledUp || up
		newRewards = append(newRewards, rewards...)
	}

	next.UserStats = stats

	if err := a.commit(next); err != nil {
		return Result{}, err
	}

	return Result{
		Toggled:             true,
		NewCount:            newCount,
		XPChange:            xpChange,
		LeveledUp:           leveledUp,
		NewRewards:          newRewards,
		NewBadges:           newBadges,
		CompletedChallenges: completed,
		Streak:              streakAfter,
	}, nil
}

// AddFriend records a manually entered leaderboard peer.
func (a *App) AddFriend(name string, xp, level int) (models.Friend, error) {
	f := models.Friend{
		ID:    uuid.New().String(),
		Name:  name,
		XP:    xp,
		Level: level,
	}
	if f.Level < 1 {
		f.Level = 1
	}
	next := a.state.Clone()
	next.Friends = append(next.Friends, f)
	return f, a.commit(next)
}

// UpdateFriend replaces the friend with the same id. Unknown ids no-op.
func (a *App) UpdateFriend(f models.Friend) error {
	next := a.state.Clone()
	target := next.FriendByID(f.ID)
	if target == nil {
		return nil
	}
	*target = f.Clone()
	return a.commit(next)
}

// DeleteFriend removes a friend. Unknown ids no-op.
func (a *App) DeleteFriend(id string) error {
	next := a.state.Clone()
	kept := next.Friends[:0]
	found := false
	for i := range next.Friends {
		if next.Friends[i].ID == id {
			found = true
			continue
		}
		kept = append(kept, next.Friends[i])
	}
	if !found {
		return nil
	}
	next.Friends = kept
	return a.commit(next)
}

// ToggleTheme flips between light and dark and returns the new theme.
func (a *App) ToggleTheme() (string, error) {
	next := a.state.Clone()
	if next.Theme == constants.ThemeDark {
		next.Theme = constants.ThemeLight
	} else {
		next.Theme = constants.ThemeDark
	}
	return next.Theme, a.commit(next)
}

// SetTheme sets an explicit theme.
func (a *App) SetTheme(theme string) error {
	if theme != constants.ThemeLight && theme != constants.ThemeDark {
		theme = constants.DefaultTheme
	}
	next := a.state.Clone()
	next.Theme = theme
	return a.commit(next)
}

// SetDisplayName updates the user's chosen display name.
func (a *App) SetDisplayName(name string) error {
	next := a.state.Clone()
	next.UserStats.DisplayName = name
	return a.commit(next)
}

// CheckDayRollover detects the first launch of a new calendar day. It
// returns the names of habits whose streak broke since the last check (they
// had completions before today but stand at zero now), so the UI can show
// an encouragement notice, and stamps the check day.
func (a *App) CheckDayRollover() ([]string, error) {
	today := a.today()
	if a.state.UserStats.LastStreakCheck == today {
		return nil, nil
	}

	var broken []string
	for i := range a.state.Habits {
		h := &a.state.Habits[i]
		if streak.Current(h, today) != 0 {
			continue
		}
		for day := range h.Completions {
			if day < today && h.Completions[day] > 0 {
				broken = append(broken, h.Name)
				break
			}
		}
	}

	next := a.state.Clone()
	next.UserStats.LastStreakCheck = today
	if err := a.commit(next); err != nil {
		return nil, err
	}
	return broken, nil
}
