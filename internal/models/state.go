package models

import "github.com/stride-cli/stride/internal/constants"

// AppState is the aggregate root: everything the application persists. All
// mutation goes through the app reducer, which clones the state, applies a
// command to the clone, and persists the result.
type AppState struct {
	Version    int         `json:"version"`
	Habits     []Habit     `json:"habits"`
	UserStats  UserStats   `json:"userStats"`
	Friends    []Friend    `json:"friends"`
	Theme      string      `json:"theme"`
	LastVisit  string      `json:"lastVisit"`
	Challenges []Challenge `json:"challenges"`
}

// DefaultState returns a fresh installation state for the given day.
// Loading merges a stored snapshot over this, so fields added after initial
// release default gracefully.
func DefaultState(today string) *AppState {
	return &AppState{
		Version: constants.StorageKeyVersion,
		Habits:  []Habit{},
		UserStats: UserStats{
			TotalXP:         0,
			Level:           1,
			CurrentLevelXP:  0,
			UnlockedRewards: []string{},
			Title:           "Beginner",
			Badges:          []string{},
			LastStreakCheck: today,
		},
		Friends:    []Friend{},
		Theme:      constants.DefaultTheme,
		LastVisit:  today,
		Challenges: []Challenge{},
	}
}

// Clone returns a deep copy of the whole state tree.
func (s *AppState) Clone() *AppState {
	c := &AppState{
		Version:    s.Version,
		UserStats:  s.UserStats.Clone(),
		Theme:      s.Theme,
		LastVisit:  s.LastVisit,
		Habits:     make([]Habit, 0, len(s.Habits)),
		Friends:    make([]Friend, 0, len(s.Friends)),
		Challenges: append([]Challenge(nil), s.Challenges...),
	}
	for i := range s.Habits {
		c.Habits = append(c.Habits, s.Habits[i].Clone())
	}
	for i := range s.Friends {
		c.Friends = append(c.Friends, s.Friends[i].Clone())
	}
	return c
}

// HabitByID returns a pointer into the state's habit list, nil when absent.
func (s *AppState) HabitByID(id string) *Habit {
	for i := range s.Habits {
		if s.Habits[i].ID == id {
			return &s.Habits[i]
		}
	}
	return nil
}

// FriendByID returns a pointer into the state's friend list, nil when absent.
func (s *AppState) FriendByID(id string) *Friend {
	for i := range s.Friends {
		if s.Friends[i].ID == id {
			return &s.Friends[i]
		}
	}
	return nil
}

// Normalize repairs a freshly loaded state: nil collections become empty,
// and derived progression fields are recomputed downstream by the reducer.
func (s *AppState) Normalize(today string) {
	if s.Habits == nil {
		s.Habits = []Habit{}
	}
	for i := range s.Habits {
		if s.Habits[i].Completions == nil {
			s.Habits[i].Completions = make(map[string]int)
		}
		if s.Habits[i].GoalPerDay < 1 {
			s.Habits[i].GoalPerDay = 1
		}
	}
	if s.Friends == nil {
		s.Friends = []Friend{}
	}
	if s.Challenges == nil {
		s.Challenges = []Challenge{}
	}
	if s.UserStats.UnlockedRewards == nil {
		s.UserStats.UnlockedRewards = []string{}
	}
	if s.UserStats.Badges == nil {
		s.UserStats.Badges = []string{}
	}
	if s.Theme != constants.ThemeLight && s.Theme != constants.ThemeDark {
		s.Theme = constants.DefaultTheme
	}
	if s.LastVisit == "" {
		s.LastVisit = today
	}
	if s.UserStats.LastStreakCheck == "" {
		s.UserStats.LastStreakCheck = today
	}
}
