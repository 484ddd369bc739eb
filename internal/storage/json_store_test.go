package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stride-cli/stride/internal/models"
)

func tempJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	return NewJSONStore(filepath.Join(t.TempDir(), "stride.json"))
}

func TestJSONStore_LoadMissingFileReturnsDefaults(t *testing.T) {
	s := tempJSONStore(t)

	state, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if state.UserStats.Level != 1 || state.UserStats.Title != "Beginner" {
		t.Errorf("defaults = level %d title %q, want 1 Beginner", state.UserStats.Level, state.UserStats.Title)
	}
	if state.Habits == nil || state.Friends == nil || state.Challenges == nil {
		t.Error("default collections must be non-nil")
	}
}

func TestJSONStore_RoundTrip(t *testing.T) {
	s := tempJSONStore(t)

	state := models.DefaultState("2026-03-10")
	state.Habits = append(state.Habits, models.Habit{
		ID:         "h1",
		Name:       "Read",
		Category:   models.CategoryLearning,
		Color:      "blue",
		Frequency:  models.FrequencyDaily,
		GoalPerDay: 2,
		CreatedAt:  time.Date(2026, 3, 1, 8, 0, 0, 0, time.Local),
		Completions: map[string]int{
			"2026-03-09": 2,
			"2026-03-10": 1,
		},
		XPEarned: 30,
		Reminder: &models.Reminder{Enabled: true, Time: "07:30"},
	})
	state.UserStats.TotalXP = 130
	state.Friends = append(state.Friends, models.Friend{ID: "f1", Name: "Sam", XP: 200, Level: 3})
	state.Challenges = append(state.Challenges, models.Challenge{
		ID: "weekly-2026-03-08", Type: models.ChallengeWeekly,
		Name: "Completion Sprint", Target: 15, Progress: 3, Reward: 75,
		StartDate: "2026-03-08", EndDate: "2026-03-14",
	})

	if err := s.Save(state); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	h := loaded.HabitByID("h1")
	if h == nil {
		t.Fatal("habit lost in round trip")
	}
	if h.Completions["2026-03-09"] != 2 || h.Completions["2026-03-10"] != 1 {
		t.Errorf("completions = %v", h.Completions)
	}
	if h.Reminder == nil || h.Reminder.Time != "07:30" {
		t.Errorf("reminder = %+v", h.Reminder)
	}
	if loaded.UserStats.TotalXP != 130 {
		t.Errorf("TotalXP = %d, want 130", loaded.UserStats.TotalXP)
	}
	// Derived progression fields come from the total, not the stored record.
	if loaded.UserStats.Level != 2 || loaded.UserStats.CurrentLevelXP != 30 {
		t.Errorf("derived level = (%d, %d), want (2, 30)",
			loaded.UserStats.Level, loaded.UserStats.CurrentLevelXP)
	}
	if len(loaded.Friends) != 1 || loaded.Friends[0].Name != "Sam" {
		t.Errorf("friends = %+v", loaded.Friends)
	}
	if len(loaded.Challenges) != 1 || loaded.Challenges[0].Progress != 3 {
		t.Errorf("challenges = %+v", loaded.Challenges)
	}
}

func TestJSONStore_LoadMergesOverDefaults(t *testing.T) {
	s := tempJSONStore(t)

	// A minimal snapshot from an older schema: most fields absent.
	blob := `{"userStats": {"totalXP": 250}}`
	if err := os.WriteFile(s.Path(), []byte(blob), 0600); err != nil {
		t.Fatal(err)
	}

	state, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if state.UserStats.TotalXP != 250 {
		t.Errorf("TotalXP = %d, want 250", state.UserStats.TotalXP)
	}
	if state.UserStats.Level != 3 {
		t.Errorf("Level = %d, want recomputed 3", state.UserStats.Level)
	}
	if state.Theme == "" {
		t.Error("absent theme must fall back to the default")
	}
	if state.Habits == nil || state.Challenges == nil {
		t.Error("absent collections must load as empty, not nil")
	}
}

func TestJSONStore_LoadMalformedFallsBackToDefaults(t *testing.T) {
	s := tempJSONStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	state, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if state.UserStats.TotalXP != 0 || state.UserStats.Level != 1 {
		t.Errorf("fallback state = %+v, want fresh defaults", state.UserStats)
	}
}

func TestJSONStore_InitRefusesExisting(t *testing.T) {
	s := tempJSONStore(t)
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := s.Init(); err == nil {
		t.Error("second Init must refuse an existing file")
	}
}
