package constants

const (
	AppName           = "stride"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/stride/stride.json"

	// DateFormat is the standard day-key format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time-of-day format used for reminders (HH:MM)
	TimeFormat = "15:04"

	// StorageKeyVersion is the snapshot schema version written by the JSON store
	StorageKeyVersion = 1

	ThemeLight   = "light"
	ThemeDark    = "dark"
	DefaultTheme = ThemeDark

	// NotificationDurationMs is how long a reminder toast stays visible
	NotificationDurationMs = 8000

	// TrayAppIdentifier is the config dir name of the companion tray agent
	TrayAppIdentifier = "stride-tray"

	// NotifierLockfileName holds the tray agent's pid, port, and secret
	NotifierLockfileName = "stride-tray.lock"
)
