package challengescmd

import (
	"fmt"

	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/dates"
)

// ChallengeCmd shows the active weekly and monthly challenges.
type ChallengeCmd struct {
	List ChallengeListCmd `cmd:"" help:"Show active challenges." default:"1"`
}

type ChallengeListCmd struct{}

func (c *ChallengeListCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	today := dates.Today()
	for _, ch := range a.State().Challenges {
		status := fmt.Sprintf("%d/%d", ch.Progress, ch.Target)
		if ch.Completed {
			status = "✓ completed"
		}

		daysLeft := 0
		for day := today; day <= ch.EndDate; day = dates.AddDays(day, 1) {
			daysLeft++
		}

		fmt.Printf("[%s] %s: %s (+%d XP)\n", ch.Type, ch.Name, status, ch.Reward)
		fmt.Printf("       %s\n", ch.Description)
		fmt.Printf("       %s → %s (%d day[s] left)\n\n", ch.StartDate, ch.EndDate, daysLeft)
	}
	return nil
}
