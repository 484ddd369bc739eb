package habits

import (
	"fmt"

	"github.com/stride-cli/stride/internal/app"
	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/dates"
	"github.com/stride-cli/stride/internal/models"
)

type HabitToggleCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Day to toggle (YYYY-MM-DD, default: today). Past days jump between fully complete and empty."`
}

func (c *HabitToggleCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	var habitID string
	for _, h := range a.State().Habits {
		if h.Name == c.Name {
			habitID = h.ID
			break
		}
	}
	if habitID == "" {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	today := dates.Today()
	day := c.Date
	if day == "" || day == "today" {
		day = today
	}
	if !dates.IsValid(day) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}

	var res app.Result
	if day == today {
		res, err = a.ToggleToday(habitID)
	} else {
		res, err = a.ToggleDay(habitID, day)
	}
	if err != nil {
		return err
	}

	if !res.Toggled {
		fmt.Printf("Nothing to do: %q is not trackable on %s\n", c.Name, day)
		return nil
	}

	if res.NewCount > 0 {
		fmt.Printf("Marked %q for %s (%d/%d)\n", c.Name, day, res.NewCount, goalFor(a.State().Habits, habitID))
	} else {
		fmt.Printf("Reset %q for %s\n", c.Name, day)
	}
	cli.PrintResult(res)
	return nil
}

func goalFor(habits []models.Habit, id string) int {
	for i := range habits {
		if habits[i].ID == id {
			return habits[i].GoalPerDay
		}
	}
	return 1
}
