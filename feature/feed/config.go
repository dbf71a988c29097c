package feed

// Config holds settings for the feed feature.
type Config struct {
	// Enabled mounts the feed routes when a database is connected.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Table is the table checked for the story columns at startup.
	Table string `mapstructure:"table" default:"stories"`
	// Filter is an optional expression every searched story must satisfy,
	// e.g. `model.Channel != "internal"`.
	Filter string `mapstructure:"filter" default:""`
}
