package models

// Friend is a manually entered leaderboard peer. Nothing about it derives
// from real activity; every field is user-editable.
type Friend struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	XP     int      `json:"xp"`
	Level  int      `json:"level"`
	Badges []string `json:"badges,omitempty"`
	Streak int      `json:"streak,omitempty"`
}

// Clone returns a deep copy of the friend.
func (f *Friend) Clone() Friend {
	c := *f
	c.Badges = append([]string(nil), f.Badges...)
	return c
}
