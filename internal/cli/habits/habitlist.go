package habits

import (
	"fmt"

	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/dates"
	"github.com/stride-cli/stride/internal/streak"
)

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	state := a.State()
	if len(state.Habits) == 0 {
		fmt.Println("No habits found. Add one with 'stride habit add'.")
		return nil
	}

	today := dates.Today()
	fmt.Printf("Habits for %s:\n\n", today)
	for i := range state.Habits {
		h := &state.Habits[i]

		status := "   "
		if h.DueOn(today) {
			if h.CompletedOn(today) {
				status = "[x]"
			} else {
				status = "[ ]"
			}
		}

		line := fmt.Sprintf("%s %s", status, h.Name)
		if h.GoalPerDay > 1 {
			line += fmt.Sprintf(" (%d/%d today)", h.CompletionsOn(today), h.GoalPerDay)
		}
		if s := streak.Current(h, today); s > 0 {
			line += fmt.Sprintf("  🔥 %d", s)
		}
		line += fmt.Sprintf("  [%s, %s]", h.Category, cli.FormatFrequency(h))
		fmt.Println(line)
	}

	return nil
}
