package server

// Config holds configuration for the HTTP server and scheduler (serve mode).
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// SyncIntervalMinutes is how often the scheduler runs a full sync.
	// Zero disables scheduled runs; syncs can still be triggered via the API.
	SyncIntervalMinutes int `mapstructure:"sync_interval_minutes" default:"60"`
}
