package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stride-cli/stride/internal/badges"
	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/dates"
	"github.com/stride-cli/stride/internal/progression"
	"github.com/stride-cli/stride/internal/streak"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Tab bar
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	switch m.tab {
	case TabToday:
		b.WriteString(m.viewToday())
	case TabStats:
		b.WriteString(m.viewStats())
	case TabChallenges:
		b.WriteString(m.viewChallenges())
	case TabLeaderboard:
		b.WriteString(m.viewLeaderboard())
	case TabBadges:
		b.WriteString(m.viewBadges())
	}

	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.notice) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m Model) viewToday() string {
	state := m.app.State()
	today := dates.Today()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Habits for "+today) + "\n\n")

	if len(state.Habits) == 0 {
		return b.String() + mutedStyle.Render("No habits yet. Add one with 'stride habit add'.") + "\n"
	}

	for i := range state.Habits {
		h := &state.Habits[i]

		mark := "·"
		lineStyle := mutedStyle
		switch {
		case !h.DueOn(today):
			mark = "-"
		case h.CompletedOn(today):
			mark = "✓"
			lineStyle = completeStyle
		default:
			mark = "○"
			lineStyle = lipgloss.NewStyle()
		}

		line := fmt.Sprintf(" %s %-24s", mark, h.Name)
		if h.GoalPerDay > 1 {
			line += fmt.Sprintf(" %d/%d", h.CompletionsOn(today), h.GoalPerDay)
		}
		if s := streak.Current(h, today); s > 0 {
			line += streakStyle.Render(fmt.Sprintf("  🔥%d", s))
		}

		if i == m.cursor {
			line = selectedStyle.Render(line)
		} else {
			line = lineStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewStats() string {
	s := m.app.State().UserStats
	name := s.DisplayName
	if name == "" {
		name = "You"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s, %s", name, s.Title)) + "\n\n")
	b.WriteString(fmt.Sprintf("Level %d  ", s.Level))
	b.WriteString(m.levelBar.ViewAs(float64(s.CurrentLevelXP)/float64(constants.XPPerLevel)) + "\n")
	b.WriteString(xpStyle.Render(fmt.Sprintf("%d total XP (%d/%d into this level)", s.TotalXP, s.CurrentLevelXP, constants.XPPerLevel)) + "\n\n")

	b.WriteString(titleStyle.Render("Rewards") + "\n")
	for _, r := range progression.Rewards {
		if s.HasReward(r.Name) {
			b.WriteString(fmt.Sprintf("  ✓ %s\n", r.Name))
		} else {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  🔒 %s (level %d)", r.Name, r.Level)) + "\n")
		}
	}
	return b.String()
}

func (m Model) viewChallenges() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Active Challenges") + "\n\n")

	for _, c := range m.app.State().Challenges {
		status := fmt.Sprintf("%d/%d", c.Progress, c.Target)
		if c.Completed {
			status = completeStyle.Render("✓ completed")
		}
		b.WriteString(fmt.Sprintf("[%s] %s: %s  %s\n", c.Type, c.Name, status,
			xpStyle.Render(fmt.Sprintf("+%d XP", c.Reward))))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("      %s (%s → %s)", c.Description, c.StartDate, c.EndDate)) + "\n\n")
	}
	return b.String()
}

func (m Model) viewLeaderboard() string {
	state := m.app.State()

	type row struct {
		name  string
		xp    int
		level int
		you   bool
	}
	rows := []row{{
		name:  orYou(state.UserStats.DisplayName),
		xp:    state.UserStats.TotalXP,
		level: state.UserStats.Level,
		you:   true,
	}}
	for _, f := range state.Friends {
		rows = append(rows, row{name: f.Name, xp: f.XP, level: f.Level})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].xp > rows[j].xp })

	var b strings.Builder
	b.WriteString(titleStyle.Render("Leaderboard") + "\n\n")
	for i, r := range rows {
		line := fmt.Sprintf(" %2d. %-20s level %-3d %6d XP", i+1, r.name, r.level, r.xp)
		if r.you {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewBadges() string {
	s := m.app.State().UserStats

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Streak Badges (%d/%d)", len(s.Badges), len(badges.Table))) + "\n\n")
	for _, badge := range badges.Table {
		if s.HasBadge(badge.ID) {
			b.WriteString(fmt.Sprintf("  %s %-12s %s\n", badge.Icon, badge.Name, badge.Description))
		} else {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  🔒 %-12s %s", badge.Name, badge.Description)) + "\n")
		}
	}
	return b.String()
}

func orYou(name string) string {
	if name == "" {
		return "You"
	}
	return name
}
