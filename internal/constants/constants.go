package constants

const (
	AppName            = "habitgrid"
	Version            = "v0.2.0"
	DefaultConfigPath  = "~/.config/habitgrid/habits.json"
	DefaultKeyringUser = "database-connection"

	// EnvConnectionString names the environment variable that may carry a
	// PostgreSQL connection string (typically loaded from a .env file).
	EnvConnectionString = "HABITGRID_DB_CONNECTION"

	// CollectionKey is the single durable-store key under which the whole
	// habit collection is mirrored.
	CollectionKey = "habits"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// BucketFormat is the month-bucket format that scopes weekly completion (YYYY-MM)
	BucketFormat = "2006-01"
)
