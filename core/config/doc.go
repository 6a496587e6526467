// Package config provides configuration management for the ESL Manager.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (loaded via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection details for the local label database
//   - Storage: S3/MinIO credentials for label template assets
//   - Platform: base URL, API key and profile of the vendor ESL platform
//   - Log: Logging level and format
//   - Drift: schedule and limits for the periodic drift verification job
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Drift.Interval)
package config
