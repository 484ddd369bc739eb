package progression

import (
	"testing"

	"github.com/stride-cli/stride/internal/models"
)

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		totalXP   int
		wantLevel int
		wantCur   int
	}{
		{0, 1, 0},
		{50, 1, 50},
		{99, 1, 99},
		{100, 2, 0},
		{250, 3, 50},
		{1000, 11, 0},
	}
	for _, tt := range tests {
		level, cur := CalculateLevel(tt.totalXP)
		if level != tt.wantLevel || cur != tt.wantCur {
			t.Errorf("CalculateLevel(%d) = (%d, %d), want (%d, %d)",
				tt.totalXP, level, cur, tt.wantLevel, tt.wantCur)
		}
	}
}

func TestAddXP_LevelUp(t *testing.T) {
	stats := models.UserStats{TotalXP: 95, Level: 1, CurrentLevelXP: 95, Title: "Beginner"}

	next, leveledUp, _ := AddXP(stats, 10)
	if next.TotalXP != 105 {
		t.Errorf("TotalXP = %d, want 105", next.TotalXP)
	}
	if next.Level != 2 || next.CurrentLevelXP != 5 {
		t.Errorf("level = (%d, %d), want (2, 5)", next.Level, next.CurrentLevelXP)
	}
	if !leveledUp {
		t.Error("expected leveledUp")
	}
}

func TestAddXP_NegativeDeltaClampedAtZero(t *testing.T) {
	stats := models.UserStats{TotalXP: 30, Level: 1, CurrentLevelXP: 30}

	next, leveledUp, _ := AddXP(stats, -50)
	if next.TotalXP != 0 {
		t.Errorf("TotalXP = %d, want 0", next.TotalXP)
	}
	if next.Level != 1 || leveledUp {
		t.Errorf("level = %d leveledUp = %v, want 1 false", next.Level, leveledUp)
	}
}

func TestAddXP_RewardUnlockedOnce(t *testing.T) {
	stats := models.UserStats{TotalXP: 390, Level: 4, CurrentLevelXP: 90}

	next, _, newRewards := AddXP(stats, 20)
	if next.Level != 5 {
		t.Fatalf("level = %d, want 5", next.Level)
	}
	found := false
	for _, r := range newRewards {
		if r == "Streak Master" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Streak Master not in new rewards %v", newRewards)
	}

	// Earning more XP at the same level reports nothing new.
	again, _, newRewards := AddXP(next, 10)
	if len(newRewards) != 0 {
		t.Errorf("second AddXP reported rewards %v, want none", newRewards)
	}
	if !again.HasReward("Streak Master") {
		t.Error("reward lost on second AddXP")
	}
}

func TestAddXP_BackfillsMissedRewards(t *testing.T) {
	// A big jump past several thresholds unlocks all of them at once.
	stats := models.UserStats{TotalXP: 0, Level: 1}

	next, _, newRewards := AddXP(stats, 450)
	if next.Level != 5 {
		t.Fatalf("level = %d, want 5", next.Level)
	}
	want := []string{"First Steps", "Ocean Theme", "Streak Master"}
	if len(newRewards) != len(want) {
		t.Fatalf("newRewards = %v, want %v", newRewards, want)
	}
	for i, r := range want {
		if newRewards[i] != r {
			t.Errorf("newRewards[%d] = %q, want %q", i, newRewards[i], r)
		}
	}
}

func TestTitleForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Beginner"},
		{4, "Beginner"},
		{5, "Habit Builder"},
		{10, "Streak Master"},
		{25, "Discipline Pro"},
		{99, "Habit Legend"},
		{100, "Legendary Champion"},
		{250, "Legendary Champion"},
	}
	for _, tt := range tests {
		if got := TitleForLevel(tt.level); got != tt.want {
			t.Errorf("TitleForLevel(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestStreakBonusXP(t *testing.T) {
	tests := []struct {
		streak int
		want   int
	}{
		{6, 0},
		{7, 50},
		{8, 0},
		{30, 200},
		{60, 400},
		{100, 1000},
		{101, 0},
	}
	for _, tt := range tests {
		if got := StreakBonusXP(tt.streak); got != tt.want {
			t.Errorf("StreakBonusXP(%d) = %d, want %d", tt.streak, got, tt.want)
		}
	}
}

func TestNextStreakBonus(t *testing.T) {
	if b := NextStreakBonus(0); b == nil || b.Days != 7 {
		t.Errorf("NextStreakBonus(0) = %+v, want Days 7", b)
	}
	if b := NextStreakBonus(7); b == nil || b.Days != 30 {
		t.Errorf("NextStreakBonus(7) = %+v, want Days 30", b)
	}
	if b := NextStreakBonus(100); b != nil {
		t.Errorf("NextStreakBonus(100) = %+v, want nil", b)
	}
}
