package badges

import (
	"testing"
	"time"

	"github.com/stride-cli/stride/internal/models"
)

func TestNewlyUnlocked(t *testing.T) {
	tests := []struct {
		name     string
		streak   int
		unlocked []string
		want     []string
	}{
		{
			name:   "below first threshold",
			streak: 2,
			want:   nil,
		},
		{
			name:   "first threshold",
			streak: 3,
			want:   []string{"starter"},
		},
		{
			name:   "week streak unlocks two at once",
			streak: 7,
			want:   []string{"starter", "committed"},
		},
		{
			name:     "already unlocked reports nothing",
			streak:   7,
			unlocked: []string{"starter", "committed"},
			want:     nil,
		},
		{
			name:     "only the missing one",
			streak:   14,
			unlocked: []string{"starter", "committed"},
			want:     []string{"dedicated"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewlyUnlocked(tt.streak, tt.unlocked)
			if len(got) != len(tt.want) {
				t.Fatalf("NewlyUnlocked = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("NewlyUnlocked[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestByID(t *testing.T) {
	if b := ByID("committed"); b == nil || b.Streak != 7 {
		t.Errorf("ByID(committed) = %+v, want 7-day badge", b)
	}
	if b := ByID("nope"); b != nil {
		t.Errorf("ByID(nope) = %+v, want nil", b)
	}
}

func TestEvaluateAll_UnionAcrossHabits(t *testing.T) {
	today := "2026-03-10"
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)

	streakOf := func(n int) map[string]int {
		m := make(map[string]int, n)
		day := today
		for i := 0; i < n; i++ {
			m[day] = 1
			day = prevDay(t, day)
		}
		return m
	}

	habits := []models.Habit{
		{
			ID: "a", Frequency: models.FrequencyDaily, GoalPerDay: 1,
			CreatedAt: created, Completions: streakOf(3),
		},
		{
			ID: "b", Frequency: models.FrequencyDaily, GoalPerDay: 1,
			CreatedAt: created, Completions: streakOf(7),
		},
	}

	got := EvaluateAll(habits, nil, today)
	want := []string{"starter", "committed"}
	if len(got) != len(want) {
		t.Fatalf("EvaluateAll = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EvaluateAll[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// A second evaluation against the now-unlocked set is quiet.
	if again := EvaluateAll(habits, append([]string(nil), got...), today); len(again) != 0 {
		t.Errorf("repeat EvaluateAll = %v, want none", again)
	}
}

func prevDay(t *testing.T, day string) string {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", day, time.Local)
	if err != nil {
		t.Fatalf("bad day %q: %v", day, err)
	}
	return parsed.AddDate(0, 0, -1).Format("2006-01-02")
}
