package constants

const (
	// XPPerCompletion is awarded for each single habit completion
	XPPerCompletion = 10

	// XPPerLevel is the amount of XP required to advance one level
	XPPerLevel = 100

	// StreakWalkLimit bounds the backward streak walk against corrupted
	// completion data. The walk returns the capped value rather than failing.
	StreakWalkLimit = 1000

	// HeatmapDays is the default trailing window for the habit log grid
	HeatmapDays = 60

	// WeeklyWindowDays and MonthlyWindowDays are the trailing windows used
	// for habit progress percentages, both including today.
	WeeklyWindowDays  = 7
	MonthlyWindowDays = 30
)
