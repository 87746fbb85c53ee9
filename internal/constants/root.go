package constants

const (
	AppName            = "habitkit"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/habitkit/habitkit.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimestampFormat is the storage format for completion timestamps
	TimestampFormat = "2006-01-02 15:04:05"

	// Goal bounds for weekly habits. Daily habits always carry DefaultDailyGoal,
	// one completion per day of the week.
	MinWeeklyGoal    = 1
	MaxWeeklyGoal    = 7
	DefaultDailyGoal = 7
)
