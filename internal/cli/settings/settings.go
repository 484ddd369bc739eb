package settings

import (
	"fmt"

	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/constants"
)

// SettingsCmd manages display preferences.
type SettingsCmd struct {
	Show  SettingsShowCmd  `cmd:"" help:"Show current settings." default:"1"`
	Theme SettingsThemeCmd `cmd:"" help:"Set or toggle the color theme."`
	Name  SettingsNameCmd  `cmd:"" help:"Set your leaderboard display name."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	state := a.State()
	name := state.UserStats.DisplayName
	if name == "" {
		name = "(not set)"
	}
	fmt.Printf("Theme:        %s\n", state.Theme)
	fmt.Printf("Display name: %s\n", name)
	fmt.Printf("Storage:      %s\n", ctx.Store.Path())
	return nil
}

type SettingsThemeCmd struct {
	Value string `arg:"" optional:"" help:"light, dark, or omit to toggle."`
}

func (c *SettingsThemeCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	switch c.Value {
	case "":
		theme, err := a.ToggleTheme()
		if err != nil {
			return err
		}
		fmt.Printf("Theme is now %s\n", theme)
	case constants.ThemeLight, constants.ThemeDark:
		if err := a.SetTheme(c.Value); err != nil {
			return err
		}
		fmt.Printf("Theme is now %s\n", c.Value)
	default:
		return fmt.Errorf("invalid theme: %s (expected light or dark)", c.Value)
	}
	return nil
}

type SettingsNameCmd struct {
	Name string `arg:"" help:"Display name."`
}

func (c *SettingsNameCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	if err := a.SetDisplayName(c.Name); err != nil {
		return err
	}
	fmt.Printf("Display name set to %s\n", c.Name)
	return nil
}
