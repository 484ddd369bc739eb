package models

import (
	"testing"
	"time"
)

func newTestHabit(goal int) *Habit {
	return &Habit{
		ID:          "h1",
		Name:        "Read",
		Category:    CategoryLearning,
		Color:       "blue",
		Frequency:   FrequencyDaily,
		GoalPerDay:  goal,
		CreatedAt:   time.Date(2026, 1, 1, 9, 0, 0, 0, time.Local),
		Completions: map[string]int{},
	}
}

func TestHabit_DueOn(t *testing.T) {
	tests := []struct {
		name  string
		habit Habit
		day   string
		want  bool
	}{
		{
			name:  "daily is always due",
			habit: Habit{Frequency: FrequencyDaily},
			day:   "2026-03-11",
			want:  true,
		},
		{
			name:  "specific due on listed weekday",
			habit: Habit{Frequency: FrequencySpecific, SpecificDays: []int{1, 3, 5}},
			day:   "2026-03-09", // Monday
			want:  true,
		},
		{
			name:  "specific not due on unlisted weekday",
			habit: Habit{Frequency: FrequencySpecific, SpecificDays: []int{1, 3, 5}},
			day:   "2026-03-10", // Tuesday
			want:  false,
		},
		{
			name:  "specific with empty days never due",
			habit: Habit{Frequency: FrequencySpecific},
			day:   "2026-03-10",
			want:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.habit.DueOn(tt.day); got != tt.want {
				t.Errorf("DueOn(%q) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestHabit_Toggle(t *testing.T) {
	h := newTestHabit(3)
	day := "2026-03-10"

	count, xp := h.Toggle(day)
	if count != 1 || xp != 10 {
		t.Errorf("first toggle = (%d, %d), want (1, 10)", count, xp)
	}
	count, xp = h.Toggle(day)
	if count != 2 || xp != 10 {
		t.Errorf("second toggle = (%d, %d), want (2, 10)", count, xp)
	}
	count, xp = h.Toggle(day)
	if count != 3 || xp != 10 {
		t.Errorf("third toggle = (%d, %d), want (3, 10)", count, xp)
	}
	if !h.CompletedOn(day) {
		t.Error("habit should be complete at goal")
	}

	// At the goal the next toggle wraps the day to zero and reverses all XP.
	count, xp = h.Toggle(day)
	if count != 0 || xp != -30 {
		t.Errorf("wrap toggle = (%d, %d), want (0, -30)", count, xp)
	}
	if h.CompletedOn(day) {
		t.Error("habit should not be complete after wrap")
	}
}

func TestHabit_SetFullSetEmpty(t *testing.T) {
	h := newTestHabit(4)
	day := "2026-03-05"

	h.Toggle(day) // count 1

	count, xp := h.SetFull(day)
	if count != 4 || xp != 30 {
		t.Errorf("SetFull = (%d, %d), want (4, 30)", count, xp)
	}

	count, xp = h.SetEmpty(day)
	if count != 0 || xp != -40 {
		t.Errorf("SetEmpty = (%d, %d), want (0, -40)", count, xp)
	}

	// SetFull on an untouched day credits the whole goal.
	count, xp = h.SetFull("2026-03-06")
	if count != 4 || xp != 40 {
		t.Errorf("SetFull on empty day = (%d, %d), want (4, 40)", count, xp)
	}
}

func TestHabit_Clone(t *testing.T) {
	h := newTestHabit(1)
	h.SpecificDays = []int{1, 2}
	h.Completions["2026-03-01"] = 1
	h.Reminder = &Reminder{Enabled: true, Time: "08:00"}

	c := h.Clone()
	c.Completions["2026-03-02"] = 1
	c.SpecificDays[0] = 9
	c.Reminder.Time = "21:00"

	if _, ok := h.Completions["2026-03-02"]; ok {
		t.Error("clone completions share backing map")
	}
	if h.SpecificDays[0] != 1 {
		t.Error("clone specific days share backing array")
	}
	if h.Reminder.Time != "08:00" {
		t.Error("clone reminder shares pointer")
	}
}
