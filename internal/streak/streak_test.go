package streak

import (
	"testing"
	"time"

	"github.com/stride-cli/stride/internal/models"
)

const today = "2026-03-10"

func dailyHabit(t *testing.T, completions map[string]int) *models.Habit {
	t.Helper()
	return &models.Habit{
		ID:          "h1",
		Name:        "Meditate",
		Frequency:   models.FrequencyDaily,
		GoalPerDay:  1,
		CreatedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local),
		Completions: completions,
	}
}

func TestCurrent(t *testing.T) {
	tests := []struct {
		name        string
		completions map[string]int
		want        int
	}{
		{
			name:        "no completions",
			completions: map[string]int{},
			want:        0,
		},
		{
			name:        "today only",
			completions: map[string]int{"2026-03-10": 1},
			want:        1,
		},
		{
			name: "three consecutive days ending today",
			completions: map[string]int{
				"2026-03-08": 1,
				"2026-03-09": 1,
				"2026-03-10": 1,
			},
			want: 3,
		},
		{
			name: "unfinished today keeps yesterday's streak",
			completions: map[string]int{
				"2026-03-08": 1,
				"2026-03-09": 1,
			},
			want: 2,
		},
		{
			name: "gap two days ago breaks the streak",
			completions: map[string]int{
				"2026-03-07": 1,
				"2026-03-10": 1,
			},
			want: 1,
		},
		{
			name: "two consecutive days ending today",
			completions: map[string]int{
				"2026-03-09": 1,
				"2026-03-10": 1,
			},
			want: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := dailyHabit(t, tt.completions)
			if got := Current(h, today); got != tt.want {
				t.Errorf("Current = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrent_PartialBelowGoal(t *testing.T) {
	h := dailyHabit(t, map[string]int{
		"2026-03-09": 1,
		"2026-03-10": 2,
	})
	h.GoalPerDay = 2
	// Yesterday is due and only half done, so the streak is today alone.
	if got := Current(h, today); got != 1 {
		t.Errorf("Current = %d, want 1", got)
	}
}

func TestCurrent_SkipsNonDueDays(t *testing.T) {
	// Due Mon/Wed/Fri. Today is Tuesday 2026-03-10 and not due, so the walk
	// skips it; Monday and the prior Friday form a streak of 2.
	h := &models.Habit{
		ID:           "h1",
		Frequency:    models.FrequencySpecific,
		SpecificDays: []int{1, 3, 5},
		GoalPerDay:   1,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local),
		Completions: map[string]int{
			"2026-03-06": 1, // Friday
			"2026-03-09": 1, // Monday
		},
	}
	if got := Current(h, today); got != 2 {
		t.Errorf("Current = %d, want 2", got)
	}
}

func TestCurrent_BoundedByCreation(t *testing.T) {
	h := dailyHabit(t, map[string]int{
		"2026-03-09": 1,
		"2026-03-10": 1,
	})
	h.CreatedAt = time.Date(2026, 3, 9, 12, 0, 0, 0, time.Local)
	// Days before creation never count and never break the walk.
	if got := Current(h, today); got != 2 {
		t.Errorf("Current = %d, want 2", got)
	}
}

func TestLongest(t *testing.T) {
	h := dailyHabit(t, map[string]int{
		"2026-02-01": 1,
		"2026-02-02": 1,
		"2026-02-03": 1,
		// gap
		"2026-02-06": 1,
		"2026-02-07": 1,
	})
	if got := Longest(h); got != 3 {
		t.Errorf("Longest = %d, want 3", got)
	}
}

func TestLongest_SpecificSchedule(t *testing.T) {
	// Due Mon/Wed. Completions on two adjacent due days separated by a
	// non-due Tuesday still chain.
	h := &models.Habit{
		ID:           "h1",
		Frequency:    models.FrequencySpecific,
		SpecificDays: []int{1, 3},
		GoalPerDay:   1,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local),
		Completions: map[string]int{
			"2026-03-02": 1, // Monday
			"2026-03-04": 1, // Wednesday
		},
	}
	if got := Longest(h); got != 2 {
		t.Errorf("Longest = %d, want 2", got)
	}
}

func TestWindowProgress(t *testing.T) {
	h := dailyHabit(t, map[string]int{
		"2026-03-10": 1,
		"2026-03-09": 1,
		"2026-03-08": 1,
		"2026-03-06": 1,
	})
	// 4 of 7 trailing days complete rounds to 57.
	if got := WeeklyProgress(h, today); got != 57 {
		t.Errorf("WeeklyProgress = %d, want 57", got)
	}
}

func TestWindowProgress_CreationTruncatesWindow(t *testing.T) {
	h := dailyHabit(t, map[string]int{
		"2026-03-09": 1,
		"2026-03-10": 1,
	})
	h.CreatedAt = time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
	// Only two days have existed and both are complete.
	if got := WeeklyProgress(h, today); got != 100 {
		t.Errorf("WeeklyProgress = %d, want 100", got)
	}
	if got := MonthlyProgress(h, today); got != 100 {
		t.Errorf("MonthlyProgress = %d, want 100", got)
	}
}

func TestWindowProgress_NoDueDays(t *testing.T) {
	h := &models.Habit{
		ID:         "h1",
		Frequency:  models.FrequencySpecific,
		GoalPerDay: 1,
		CreatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local),
	}
	if got := WeeklyProgress(h, today); got != 0 {
		t.Errorf("WeeklyProgress = %d, want 0", got)
	}
}

func TestMax(t *testing.T) {
	habits := []models.Habit{
		*dailyHabit(t, map[string]int{"2026-03-10": 1}),
		*dailyHabit(t, map[string]int{
			"2026-03-08": 1,
			"2026-03-09": 1,
			"2026-03-10": 1,
		}),
	}
	if got := Max(habits, today); got != 3 {
		t.Errorf("Max = %d, want 3", got)
	}
	if got := Max(nil, today); got != 0 {
		t.Errorf("Max(nil) = %d, want 0", got)
	}
}
