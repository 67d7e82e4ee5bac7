package cmd

import (
	"fmt"
	"os"

	"infinity-tools/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "infinity-tools",
	Short: "Infinity unit data tools",
	Long: `Infinity Tools inspects and queries a static dataset of Infinity unit
statistics stored as JSON files: search units by weapon, skill or equipment,
identify which faction a data file represents, or dump raw file structure.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format matches user expectations for a CLI tool; "debug"
		// level gives ISO8601 timestamps (DevConfig) instead of Epoch.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
