package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/cli/backups"
	"github.com/stride-cli/stride/internal/cli/challengescmd"
	"github.com/stride-cli/stride/internal/cli/friends"
	"github.com/stride-cli/stride/internal/cli/habits"
	"github.com/stride-cli/stride/internal/cli/settings"
	"github.com/stride-cli/stride/internal/cli/stats"
	"github.com/stride-cli/stride/internal/cli/system"
	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/errors"
	"github.com/stride-cli/stride/internal/logger"
	"github.com/stride-cli/stride/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path (.json for the snapshot store, .db for SQLite)." default:"~/.config/stride/stride.json"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init        system.InitCmd             `cmd:"" help:"Initialize stride storage."`
	Tui         system.TuiCmd              `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Habit       habits.HabitCmd            `cmd:"" help:"Manage habits and completions."`
	Friend      friends.FriendCmd          `cmd:"" help:"Manage leaderboard friends."`
	Leaderboard friends.LeaderboardCmd     `cmd:"" help:"Show the XP leaderboard."`
	Challenges  challengescmd.ChallengeCmd `cmd:"" help:"Show active challenges."`
	Stats       stats.StatsCmd             `cmd:"" help:"Show your level, rewards, and badges."`
	Settings    settings.SettingsCmd       `cmd:"" help:"Manage theme and display name."`
	Doctor      system.DoctorCmd           `cmd:"" help:"Run health checks on the stored state."`
	Debugcmd    system.DebugCmd            `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Backup      struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
	Notify system.NotifyCmd `cmd:"" hidden:"" help:"Fire due reminders (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Gamified habit tracker: streaks, XP, badges, challenges"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		errors.Fatal(err)
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".db") {
		store = storage.NewSQLiteStore(configPath)
	} else {
		store = storage.NewJSONStore(configPath)
	}
	defer store.Close()

	appCtx := &cli.Context{Store: store}
	errors.Fatal(ctx.Run(appCtx))
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
