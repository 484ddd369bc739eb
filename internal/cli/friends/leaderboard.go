package friends

import (
	"fmt"
	"sort"

	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/dates"
	"github.com/stride-cli/stride/internal/streak"
)

// LeaderboardCmd ranks the local user alongside the manually entered
// friends, by XP descending.
type LeaderboardCmd struct{}

type entry struct {
	name   string
	xp     int
	level  int
	streak int
	you    bool
}

func (c *LeaderboardCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	state := a.State()
	you := state.UserStats.DisplayName
	if you == "" {
		you = "You"
	}

	entries := []entry{{
		name:   you,
		xp:     state.UserStats.TotalXP,
		level:  state.UserStats.Level,
		streak: streak.Max(state.Habits, dates.Today()),
		you:    true,
	}}
	for _, f := range state.Friends {
		entries = append(entries, entry{name: f.Name, xp: f.XP, level: f.Level, streak: f.Streak})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].xp > entries[j].xp })

	fmt.Println("Leaderboard")
	fmt.Println()
	for i, e := range entries {
		marker := "  "
		if e.you {
			marker = "→ "
		}
		line := fmt.Sprintf("%s%2d. %-20s level %-3d %6d XP", marker, i+1, e.name, e.level, e.xp)
		if e.streak > 0 {
			line += fmt.Sprintf("  🔥 %d", e.streak)
		}
		fmt.Println(line)
	}
	return nil
}
