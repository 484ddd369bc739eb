package system

import (
	"fmt"
	"time"

	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/logger"
	"github.com/stride-cli/stride/internal/notifier"
)

// NotifyCmd fires due habit reminders through the tray agent. It is wired
// to a scheduler (cron or the tray agent itself) rather than invoked by
// hand, so it stays hidden. Delivery is best effort: without an agent it
// logs and exits clean.
type NotifyCmd struct {
	Text string `help:"Override message text (skips reminder lookup)."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	n := notifier.New()

	if c.Text != "" {
		if err := n.Notify(c.Text); err != nil {
			logger.Debug("Notification dropped", "error", err)
		}
		return nil
	}

	a, err := ctx.App()
	if err != nil {
		return err
	}

	now := time.Now().Format(constants.TimeFormat)
	for i := range a.State().Habits {
		h := &a.State().Habits[i]
		if h.Reminder == nil || !h.Reminder.Enabled || h.Reminder.Time != now {
			continue
		}
		if !h.DueToday() {
			continue
		}
		msg := fmt.Sprintf("Time for %s!", h.Name)
		if err := n.Notify(msg); err != nil {
			logger.Debug("Reminder dropped", "habit", h.Name, "error", err)
		}
	}
	return nil
}
