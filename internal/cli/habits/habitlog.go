package habits

import (
	"fmt"
	"strings"

	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/dates"
	"github.com/stride-cli/stride/internal/models"
)

type HabitLogCmd struct {
	Days  int    `help:"Number of trailing days to show." default:"14"`
	Habit string `help:"Show log for a specific habit only."`
}

func (c *HabitLogCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	habits := a.State().Habits
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	var selected []models.Habit
	if c.Habit != "" {
		for i := range habits {
			if habits[i].Name == c.Habit {
				selected = []models.Habit{habits[i]}
				break
			}
		}
		if len(selected) == 0 {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
	} else {
		selected = habits
	}

	days := c.Days
	if days < 1 {
		days = 1
	}
	if days > constants.HeatmapDays {
		days = constants.HeatmapDays
	}
	window := dates.LastNDays(days, dates.Today())

	// Header with dates
	const nameWidth = 20
	fmt.Printf("Habit log (last %d days):\n\n", days)
	fmt.Print(strings.Repeat(" ", nameWidth))
	for _, day := range window {
		fmt.Printf(" %5s", day[5:7]+"/"+day[8:10])
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", nameWidth+6*days))

	for i := range selected {
		h := &selected[i]
		name := h.Name
		if len(name) > nameWidth {
			name = name[:nameWidth-3] + "..."
		}
		fmt.Printf("%-*s", nameWidth, name)

		created := h.CreatedDay()
		for _, day := range window {
			switch {
			case day < created:
				fmt.Print("      ")
			case !h.DueOn(day):
				fmt.Print("  -   ")
			case h.CompletedOn(day):
				fmt.Print("  x   ")
			case h.CompletionsOn(day) > 0:
				fmt.Print("  ~   ")
			default:
				fmt.Print("  .   ")
			}
		}
		fmt.Println()
	}

	fmt.Println("\nx complete  ~ partial  . missed  - not due")
	return nil
}
