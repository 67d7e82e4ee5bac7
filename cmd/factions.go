package cmd

import (
	"fmt"
	"sort"
	"strings"

	"infinity-tools/core/config"
	"infinity-tools/core/logger"
	"infinity-tools/feature/dataset"
	"infinity-tools/feature/factions"

	"github.com/spf13/cobra"
)

var factionsDataDir string

// factionsCmd represents the factions command
var factionsCmd = &cobra.Command{
	Use:   "factions",
	Short: "Identify which faction each data file represents",
	Long: `Analyzes every data file in the directory and reports, per file, the
faction(s) covering more than half of its units. Files without a dominant
faction are shown as MIXED, files without units as EMPTY.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		dir := cfg.Data.Dir
		if cmd.Flags().Changed("data-dir") {
			dir = factionsDataDir
		}

		md, err := dataset.LoadMetadata(dir)
		if err != nil {
			return err
		}

		files, err := dataset.LoadFiles(dir, logg)
		if err != nil {
			return err
		}
		sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

		fmt.Printf("%-20s | %-10s | %s\n", "Filename", "Faction ID", "Faction Name")
		fmt.Println(strings.Repeat("-", 60))

		for _, f := range files {
			idCol, desc := factions.Identify(f.Units).Columns(md)
			fmt.Printf("%-20s | %-10s | %s\n", f.Name, idCol, desc)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(factionsCmd)

	factionsCmd.Flags().StringVar(&factionsDataDir, "data-dir", "./data", "Path to data directory")
}
