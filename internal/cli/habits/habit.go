package habits

// HabitCmd groups every habit subcommand.
type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle a habit's completion for today or a past day."`
	Log    HabitLogCmd    `cmd:"" help:"Show the completion heatmap."`
	Stats  HabitStatsCmd  `cmd:"" help:"Show streaks and progress for a habit."`
}
