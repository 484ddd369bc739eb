package system

import (
	"fmt"
	"os"
	"time"

	"github.com/stride-cli/stride/internal/backup"
	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/dates"
	"github.com/stride-cli/stride/internal/models"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage file present
	var state *models.AppState
	if _, err := os.Stat(ctx.Store.Path()); err != nil {
		fmt.Printf("❌ Storage present: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage present: OK\n")
	}

	// Check 2: snapshot loads
	state, err := ctx.Store.Load()
	if err != nil {
		fmt.Printf("❌ Snapshot loads: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Snapshot loads: OK (%d habit[s], %d friend[s])\n", len(state.Habits), len(state.Friends))
	}

	// Check 3: ledger invariants
	if state != nil {
		if problems := checkLedger(state); len(problems) > 0 {
			fmt.Printf("⚠ Ledger invariants: WARNING\n")
			for _, p := range problems {
				fmt.Printf("   %s\n", p)
			}
		} else {
			fmt.Printf("✓ Ledger invariants: OK\n")
		}
	} else {
		fmt.Printf("⊘ Ledger invariants: SKIPPED (snapshot not loaded)\n")
	}

	// Check 4: active challenges current
	if state != nil {
		today := dates.Today()
		stale := 0
		for _, c := range state.Challenges {
			if c.Expired(today) {
				stale++
			}
		}
		if stale > 0 {
			fmt.Printf("⚠ Challenges current: WARNING (%d expired, regenerated on next run)\n", stale)
		} else {
			fmt.Printf("✓ Challenges current: OK\n")
		}
	}

	// Check 5: backups present (warning only)
	mgr := backup.NewManager(ctx.Store.Path())
	backups, err := mgr.ListBackups()
	if err != nil || len(backups) == 0 {
		fmt.Printf("⚠ Backups present: WARNING\n   No backups found. Create one with 'stride backup'.\n")
	} else {
		age := time.Since(backups[0].Timestamp).Round(time.Minute)
		fmt.Printf("✓ Backups present: OK (%d, newest %s old)\n", len(backups), age)
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkLedger(state *models.AppState) []string {
	var problems []string
	for i := range state.Habits {
		h := &state.Habits[i]
		created := h.CreatedDay()
		for day, count := range h.Completions {
			if count < 0 {
				problems = append(problems, fmt.Sprintf("habit %q has a negative count on %s", h.Name, day))
			}
			if count > h.GoalPerDay {
				problems = append(problems, fmt.Sprintf("habit %q exceeds its daily goal on %s", h.Name, day))
			}
			if day < created {
				problems = append(problems, fmt.Sprintf("habit %q has a completion before its creation (%s)", h.Name, day))
			}
		}
	}
	return problems
}
