package stats

import (
	"fmt"

	"github.com/stride-cli/stride/internal/badges"
	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/progression"
)

// StatsCmd shows the user's progression: level, XP, title, rewards, badges.
type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	s := a.State().UserStats
	name := s.DisplayName
	if name == "" {
		name = "You"
	}

	fmt.Printf("%s, %s\n", name, s.Title)
	fmt.Printf("Level %d (%d/%d XP to next level), %d total XP\n\n",
		s.Level, s.CurrentLevelXP, constants.XPPerLevel, s.TotalXP)

	fmt.Printf("Rewards (%d/%d):\n", len(s.UnlockedRewards), len(progression.Rewards))
	for _, r := range progression.Rewards {
		mark := "🔒"
		if s.HasReward(r.Name) {
			mark = "✓ "
		}
		fmt.Printf("  %s %-16s (level %d): %s\n", mark, r.Name, r.Level, r.Description)
	}

	fmt.Printf("\nStreak badges (%d/%d):\n", len(s.Badges), len(badges.Table))
	for _, b := range badges.Table {
		mark := "🔒"
		if s.HasBadge(b.ID) {
			mark = b.Icon
		}
		fmt.Printf("  %s %-12s: %s\n", mark, b.Name, b.Description)
	}
	return nil
}
