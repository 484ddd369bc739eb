package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stride-cli/stride/internal/app"
)

type Tab int

const (
	TabToday Tab = iota
	TabStats
	TabChallenges
	TabLeaderboard
	TabBadges
	tabCount
)

var tabNames = []string{"Today", "Stats", "Challenges", "Leaderboard", "Badges"}

type Model struct {
	app      *app.App
	keys     KeyMap
	help     help.Model
	levelBar progress.Model

	tab      Tab
	cursor   int
	notice   string
	quitting bool
	width    int
	height   int
}

// NewModel builds the dashboard. brokenStreaks carries the names of habits
// whose streak reset since the last visit, shown once as a notice.
func NewModel(a *app.App, brokenStreaks []string) Model {
	notice := ""
	if len(brokenStreaks) > 0 {
		notice = fmt.Sprintf("New day, new start! Streak reset for: %s", strings.Join(brokenStreaks, ", "))
	}
	return Model{
		app:      a,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		levelBar: progress.New(progress.WithDefaultGradient()),
		notice:   notice,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
