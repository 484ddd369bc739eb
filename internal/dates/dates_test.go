package dates

import "testing"

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		day  string
		n    int
		want string
	}{
		{"forward one", "2026-03-10", 1, "2026-03-11"},
		{"backward one", "2026-03-10", -1, "2026-03-09"},
		{"month boundary", "2026-02-28", 1, "2026-03-01"},
		{"leap year", "2028-02-28", 1, "2028-02-29"},
		{"year boundary", "2025-12-31", 1, "2026-01-01"},
		{"zero", "2026-03-10", 0, "2026-03-10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddDays(tt.day, tt.n); got != tt.want {
				t.Errorf("AddDays(%q, %d) = %q, want %q", tt.day, tt.n, got, tt.want)
			}
		})
	}
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		day  string
		want int
	}{
		{"2026-03-08", 0}, // Sunday
		{"2026-03-09", 1}, // Monday
		{"2026-03-14", 6}, // Saturday
	}
	for _, tt := range tests {
		if got := Weekday(tt.day); got != tt.want {
			t.Errorf("Weekday(%q) = %d, want %d", tt.day, got, tt.want)
		}
	}
}

func TestLastNDays(t *testing.T) {
	got := LastNDays(3, "2026-03-10")
	want := []string{"2026-03-08", "2026-03-09", "2026-03-10"}
	if len(got) != len(want) {
		t.Fatalf("LastNDays returned %d days, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LastNDays[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		day       string
		wantStart string
		wantEnd   string
	}{
		{"2026-03-11", "2026-03-08", "2026-03-14"}, // Wednesday
		{"2026-03-08", "2026-03-08", "2026-03-14"}, // Sunday is its own start
		{"2026-03-14", "2026-03-08", "2026-03-14"}, // Saturday
	}
	for _, tt := range tests {
		start, end := WeekBounds(tt.day)
		if start != tt.wantStart || end != tt.wantEnd {
			t.Errorf("WeekBounds(%q) = (%q, %q), want (%q, %q)",
				tt.day, start, end, tt.wantStart, tt.wantEnd)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds("2026-02-15")
	if start != "2026-02-01" || end != "2026-02-28" {
		t.Errorf("MonthBounds = (%q, %q), want (2026-02-01, 2026-02-28)", start, end)
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		day  string
		want bool
	}{
		{"2026-03-10", true},
		{"2026-3-10", false},
		{"2026/03/10", false},
		{"not-a-date", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValid(tt.day); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.day, got, tt.want)
		}
	}
}
