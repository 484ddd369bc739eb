package system

import (
	"encoding/json"
	"fmt"

	"github.com/stride-cli/stride/internal/cli"
)

type DebugCmd struct {
	Path  *DebugPathCmd  `cmd:"" help:"Show storage path."`
	State *DebugStateCmd `cmd:"" help:"Dump the full state snapshot as JSON."`
	Habit *DebugHabitCmd `cmd:"" help:"Dump one habit as JSON."`
}

type DebugPathCmd struct{}

func (cmd *DebugPathCmd) Run(ctx *cli.Context) error {
	out, err := json.MarshalIndent(map[string]string{"path": ctx.Store.Path()}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

type DebugStateCmd struct{}

func (cmd *DebugStateCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(a.State(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

type DebugHabitCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (cmd *DebugHabitCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	for i := range a.State().Habits {
		if a.State().Habits[i].Name == cmd.Name {
			out, err := json.MarshalIndent(a.State().Habits[i], "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal habit: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}
	}
	return fmt.Errorf("habit %q not found", cmd.Name)
}
