package lists

// Config holds settings for the lists feature.
type Config struct {
	// SeedObject is the bucket object loaded into the storage at startup.
	SeedObject string `mapstructure:"seed_object" default:"lists/seed.json"`
	// SnapshotObject is the bucket object written by POST /lists/snapshot.
	SnapshotObject string `mapstructure:"snapshot_object" default:"lists/snapshot.json"`
	// Usage selects the supplementary kinds: "table" or "collection".
	Usage string `mapstructure:"usage" default:"table"`
}
