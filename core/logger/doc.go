// Package logger provides a structured logging facility based on Zap.
//
// The CLI defaults to console encoding: colored, human-friendly and written
// to stderr, so log lines never mix with report output on stdout. The json
// encoding is available for captured runs.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Data loaded")
package logger
