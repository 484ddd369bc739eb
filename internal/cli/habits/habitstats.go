package habits

import (
	"fmt"

	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/dates"
	"github.com/stride-cli/stride/internal/progression"
	"github.com/stride-cli/stride/internal/streak"
)

type HabitStatsCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitStatsCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	for i := range a.State().Habits {
		h := &a.State().Habits[i]
		if h.Name != c.Name {
			continue
		}

		today := dates.Today()
		current := streak.Current(h, today)

		fmt.Printf("%s (%s, %s)\n", h.Name, h.Category, cli.FormatFrequency(h))
		if h.Description != "" {
			fmt.Printf("  %s\n", h.Description)
		}
		fmt.Printf("  Current streak:   %d\n", current)
		fmt.Printf("  Longest streak:   %d\n", streak.Longest(h))
		fmt.Printf("  This week:        %d%%\n", streak.WeeklyProgress(h, today))
		fmt.Printf("  Last 30 days:     %d%%\n", streak.MonthlyProgress(h, today))
		fmt.Printf("  XP earned:        %d (today: %d)\n", h.XPEarned, h.XPEarnedOn(today))
		if next := progression.NextStreakBonus(current); next != nil {
			fmt.Printf("  Next bonus:       +%d XP at a %d-day streak\n", next.XP, next.Days)
		}
		if h.Reminder != nil && h.Reminder.Enabled {
			fmt.Printf("  Reminder:         %s\n", h.Reminder.Time)
		}
		return nil
	}

	return fmt.Errorf("habit %q not found", c.Name)
}
