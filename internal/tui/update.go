package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stride-cli/stride/internal/badges"
	"github.com/stride-cli/stride/internal/logger"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.levelBar.Width = min(msg.Width-20, 50)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Tab):
			m.tab = (m.tab + 1) % tabCount
			m.cursor = 0
			return m, nil

		case key.Matches(msg, m.keys.ShiftTab):
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.cursor = 0
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.listLen()-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Theme):
			theme, err := m.app.ToggleTheme()
			if err != nil {
				logger.Error("Theme toggle failed", "error", err)
				return m, nil
			}
			m.notice = fmt.Sprintf("Theme is now %s", theme)
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			return m.toggleSelected(), nil
		}
	}

	return m, nil
}

// listLen is the cursor bound for the current tab.
func (m Model) listLen() int {
	if m.tab == TabToday {
		return len(m.app.State().Habits)
	}
	return 0
}

func (m Model) toggleSelected() Model {
	if m.tab != TabToday {
		return m
	}
	habits := m.app.State().Habits
	if m.cursor >= len(habits) {
		return m
	}

	res, err := m.app.ToggleToday(habits[m.cursor].ID)
	if err != nil {
		logger.Error("Toggle failed", "error", err)
		m.notice = "Could not save, see the log for details"
		return m
	}
	if !res.Toggled {
		m.notice = fmt.Sprintf("%s is not due today", habits[m.cursor].Name)
		return m
	}

	var parts []string
	if res.XPChange != 0 {
		parts = append(parts, fmt.Sprintf("%+d XP", res.XPChange))
	}
	if res.LeveledUp {
		parts = append(parts, "🎉 level up!")
	}
	for _, r := range res.NewRewards {
		parts = append(parts, "🎁 "+r)
	}
	for _, id := range res.NewBadges {
		if b := badges.ByID(id); b != nil {
			parts = append(parts, b.Icon+" "+b.Name)
		}
	}
	for _, c := range res.CompletedChallenges {
		parts = append(parts, fmt.Sprintf("🏆 %s +%d XP", c.Name, c.Reward))
	}
	m.notice = strings.Join(parts, "  ")
	return m
}
