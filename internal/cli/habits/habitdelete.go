package habits

import (
	"fmt"

	"github.com/stride-cli/stride/internal/cli"
)

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	for _, h := range a.State().Habits {
		if h.Name == c.Name {
			ctx.PerformAutomaticBackup()
			if err := a.DeleteHabit(h.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted habit: %s\n", c.Name)
			return nil
		}
	}

	return fmt.Errorf("habit %q not found", c.Name)
}
