package habits

import (
	"fmt"

	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/models"
)

type HabitEditCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Rename      string `help:"New habit name."`
	Description string `short:"d" help:"New description."`
	Category    string `short:"c" help:"New category."`
	Color       string `help:"New accent color tag."`
	Frequency   string `short:"f" help:"New recurrence (daily|specific)."`
	Days        string `short:"w" help:"Comma-separated weekdays for specific frequency."`
	Goal        int    `short:"g" help:"New daily goal."`
	Remind      string `help:"Reminder time (HH:MM), or 'off' to disable."`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	var habit *models.Habit
	for i := range a.State().Habits {
		if a.State().Habits[i].Name == c.Name {
			habit = &a.State().Habits[i]
			break
		}
	}
	if habit == nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	updated := habit.Clone()
	if c.Rename != "" {
		updated.Name = c.Rename
	}
	if c.Description != "" {
		updated.Description = c.Description
	}
	if c.Category != "" {
		category, err := cli.ParseCategory(c.Category)
		if err != nil {
			return err
		}
		updated.Category = category
	}
	if c.Color != "" {
		updated.Color = c.Color
	}
	if c.Frequency != "" {
		switch c.Frequency {
		case string(models.FrequencyDaily):
			updated.Frequency = models.FrequencyDaily
			updated.SpecificDays = nil
		case string(models.FrequencySpecific):
			if c.Days == "" {
				return fmt.Errorf("specific frequency requires --days")
			}
			updated.Frequency = models.FrequencySpecific
		default:
			return fmt.Errorf("invalid frequency: %s", c.Frequency)
		}
	}
	if c.Days != "" {
		days, err := cli.ParseWeekdays(c.Days)
		if err != nil {
			return err
		}
		updated.SpecificDays = days
	}
	if c.Goal > 0 {
		updated.GoalPerDay = c.Goal
	}
	switch {
	case c.Remind == "off":
		updated.Reminder = nil
	case c.Remind != "":
		if _, err := parseClock(c.Remind); err != nil {
			return fmt.Errorf("invalid reminder time: %s (expected HH:MM)", c.Remind)
		}
		updated.Reminder = &models.Reminder{Enabled: true, Time: c.Remind}
	}

	if err := a.UpdateHabit(updated); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", updated.Name)
	return nil
}
