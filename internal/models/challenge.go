package models

type ChallengeType string

const (
	ChallengeWeekly  ChallengeType = "weekly"
	ChallengeMonthly ChallengeType = "monthly"
)

// Challenge is a time-boxed aggregate goal across all habits. Once
// Completed flips true it stays true and progress is never recomputed
// again (the reward was already granted).
type Challenge struct {
	ID          string        `json:"id"`
	Type        ChallengeType `json:"type"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Target      int           `json:"target"`
	Progress    int           `json:"progress"`
	Reward      int           `json:"reward"`
	StartDate   string        `json:"startDate"`
	EndDate     string        `json:"endDate"`
	Completed   bool          `json:"completed"`
}

// Expired reports whether the challenge's period has fully passed.
func (c *Challenge) Expired(today string) bool {
	return c.EndDate < today
}
