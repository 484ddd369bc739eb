package cli

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/stride-cli/stride/internal/app"
	"github.com/stride-cli/stride/internal/backup"
	"github.com/stride-cli/stride/internal/badges"
	"github.com/stride-cli/stride/internal/logger"
	"github.com/stride-cli/stride/internal/models"
	"github.com/stride-cli/stride/internal/storage"
)

// Context is shared by every command. The app handle is built lazily so
// commands like init can run against an uninitialized store.
type Context struct {
	Store storage.Provider

	application *app.App
}

// App loads the snapshot on first use and returns the reducer handle.
func (c *Context) App() (*app.App, error) {
	if c.application != nil {
		return c.application, nil
	}
	a, err := app.New(c.Store, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return nil, err
	}
	c.application = a
	return a, nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.Path())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseWeekdays parses a comma-separated list of weekdays into weekday
// indices, 0=Sunday through 6=Saturday.
func ParseWeekdays(s string) ([]int, error) {
	dayMap := map[string]int{
		"sun": 0, "sunday": 0,
		"mon": 1, "monday": 1,
		"tue": 2, "tuesday": 2,
		"wed": 3, "wednesday": 3,
		"thu": 4, "thursday": 4,
		"fri": 5, "friday": 5,
		"sat": 6, "saturday": 6,
	}

	var weekdays []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		weekdays = append(weekdays, num)
	}
	return weekdays, nil
}

// DayNames are short weekday labels indexed Sunday through Saturday.
var DayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatFrequency renders a habit's recurrence rule for display.
func FormatFrequency(h *models.Habit) string {
	if h.Frequency == models.FrequencyDaily {
		return "daily"
	}
	if len(h.SpecificDays) == 0 {
		return "never"
	}
	names := make([]string, 0, len(h.SpecificDays))
	for _, d := range h.SpecificDays {
		if d >= 0 && d < len(DayNames) {
			names = append(names, DayNames[d])
		}
	}
	return strings.Join(names, ",")
}

// ParseCategory validates a category flag against the closed set.
func ParseCategory(s string) (models.Category, error) {
	for _, c := range models.Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category: %s (expected one of health, fitness, learning, mindfulness, productivity, social, other)", s)
}

// PrintResult shows the gamification outcome of a toggle: XP movement,
// level-ups, reward/badge unlocks, completed challenges.
func PrintResult(res app.Result) {
	if !res.Toggled {
		return
	}
	if res.XPChange > 0 {
		fmt.Printf("+%d XP\n", res.XPChange)
	} else if res.XPChange < 0 {
		fmt.Printf("%d XP\n", res.XPChange)
	}
	if res.LeveledUp {
		fmt.Println("🎉 Level up!")
	}
	for _, r := range res.NewRewards {
		fmt.Printf("🎁 Reward unlocked: %s\n", r)
	}
	for _, id := range res.NewBadges {
		if b := badges.ByID(id); b != nil {
			fmt.Printf("%s Badge unlocked: %s (%s)\n", b.Icon, b.Name, b.Description)
		}
	}
	for _, c := range res.CompletedChallenges {
		fmt.Printf("🏆 Challenge complete: %s (+%d XP)\n", c.Name, c.Reward)
	}
}
