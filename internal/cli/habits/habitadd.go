package habits

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/stride-cli/stride/internal/app"
	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/models"
)

type HabitAddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name. Omit to use the interactive form."`
	Description string `short:"d" help:"Free-text description."`
	Category    string `short:"c" help:"Category (health|fitness|learning|mindfulness|productivity|social|other)." default:"other"`
	Color       string `help:"Accent color tag." default:"emerald"`
	Frequency   string `short:"f" help:"Recurrence (daily|specific)." default:"daily"`
	Days        string `short:"w" help:"Comma-separated weekdays for specific frequency (e.g. mon,wed,fri)."`
	Goal        int    `short:"g" help:"Completions required per day." default:"1"`
	Remind      string `help:"Daily reminder time (HH:MM)."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if c.Name == "" {
		if err := c.promptForm(); err != nil {
			return err
		}
	}

	params, err := c.toParams()
	if err != nil {
		return err
	}

	a, err := ctx.App()
	if err != nil {
		return err
	}

	for _, h := range a.State().Habits {
		if h.Name == params.Name {
			return fmt.Errorf("habit with name %q already exists", params.Name)
		}
	}

	habit, err := a.AddHabit(params)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", habit.Name, cli.FormatFrequency(&habit))
	return nil
}

func (c *HabitAddCmd) toParams() (app.HabitParams, error) {
	if c.Name == "" {
		return app.HabitParams{}, fmt.Errorf("habit name is required")
	}

	category, err := cli.ParseCategory(c.Category)
	if err != nil {
		return app.HabitParams{}, err
	}

	params := app.HabitParams{
		Name:        c.Name,
		Description: c.Description,
		Category:    category,
		Color:       c.Color,
		Frequency:   models.FrequencyDaily,
		GoalPerDay:  c.Goal,
	}

	if c.Frequency == string(models.FrequencySpecific) {
		if c.Days == "" {
			return app.HabitParams{}, fmt.Errorf("specific frequency requires --days")
		}
		days, err := cli.ParseWeekdays(c.Days)
		if err != nil {
			return app.HabitParams{}, err
		}
		params.Frequency = models.FrequencySpecific
		params.SpecificDays = days
	} else if c.Frequency != string(models.FrequencyDaily) {
		return app.HabitParams{}, fmt.Errorf("invalid frequency: %s (expected daily or specific)", c.Frequency)
	}

	if params.GoalPerDay < 1 {
		return app.HabitParams{}, fmt.Errorf("goal must be at least 1")
	}

	if c.Remind != "" {
		if _, err := parseClock(c.Remind); err != nil {
			return app.HabitParams{}, fmt.Errorf("invalid reminder time: %s (expected HH:MM)", c.Remind)
		}
		params.Reminder = &models.Reminder{Enabled: true, Time: c.Remind}
	}

	return params, nil
}

func (c *HabitAddCmd) promptForm() error {
	categoryOptions := make([]huh.Option[string], 0, len(models.Categories))
	for _, cat := range models.Categories {
		categoryOptions = append(categoryOptions, huh.NewOption(string(cat), string(cat)))
	}
	colorOptions := make([]huh.Option[string], 0, len(models.HabitColors))
	for _, col := range models.HabitColors {
		colorOptions = append(colorOptions, huh.NewOption(col, col))
	}

	goal := strconv.Itoa(c.Goal)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&c.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&c.Description),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&c.Category),
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOptions...).
				Value(&c.Color),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Every day", "daily"),
					huh.NewOption("Specific weekdays", "specific"),
				).
				Value(&c.Frequency),
			huh.NewInput().
				Title("Weekdays (for specific, e.g. mon,wed,fri)").
				Value(&c.Days),
			huh.NewInput().
				Title("Daily goal").
				Value(&goal).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 {
						return fmt.Errorf("goal must be a positive number")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}
	c.Goal, _ = strconv.Atoi(goal)
	return nil
}

func parseClock(s string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, s)
}
