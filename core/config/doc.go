// Package config provides configuration management for model-storage.
//
// It loads an optional .env file with godotenv and then reads environment
// variables through Viper. Defaults come from the `default` struct tags of
// each partial configuration.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, shutdown timeout)
//   - Database: MySQL or SQLite connection details for the feed
//   - Storage: S3/MinIO credentials and bucket for list seeds and snapshots
//   - Log: Logging level and format
//   - Lists: seed and snapshot object names, supplementary kind usage
//   - Feed: story table settings
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Address())
package config
