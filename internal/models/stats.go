package models

// UserStats is the single progression record for the local user. Level,
// CurrentLevelXP, and Title are caches derived from TotalXP; the progression
// engine recomputes them on every mutation and they are never set directly.
type UserStats struct {
	TotalXP         int      `json:"totalXP"`
	Level           int      `json:"level"`
	CurrentLevelXP  int      `json:"currentLevelXP"`
	UnlockedRewards []string `json:"unlockedRewards"`
	Title           string   `json:"title"`
	DisplayName     string   `json:"displayName"`
	Badges          []string `json:"badges"`
	LastStreakCheck string   `json:"lastStreakCheck"`
}

// HasReward reports whether a reward name is already unlocked.
func (s *UserStats) HasReward(name string) bool {
	for _, r := range s.UnlockedRewards {
		if r == name {
			return true
		}
	}
	return false
}

// HasBadge reports whether a streak badge id is already unlocked.
func (s *UserStats) HasBadge(id string) bool {
	for _, b := range s.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the stats record.
func (s *UserStats) Clone() UserStats {
	c := *s
	c.UnlockedRewards = append([]string(nil), s.UnlockedRewards...)
	c.Badges = append([]string(nil), s.Badges...)
	return c
}
