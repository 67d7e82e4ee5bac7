// Package config provides configuration management for the Infinity tooling.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Data: dataset location (DATA_DIR)
//   - Log: logging level and format (LOG_LEVEL, LOG_FORMAT)
//
// Command-line flags take precedence over the loaded configuration where a
// flag exists (e.g. --data-dir).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Data.Dir)
package config
