package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"infinity-tools/core/config"
	"infinity-tools/core/logger"
	"infinity-tools/feature/dataset"
	"infinity-tools/feature/query"
	"infinity-tools/feature/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	queryDataDir string
	weaponFlag   string
	skillFlag    string
	equipFlag    string
	byFaction    bool
	jsonExport   bool
	xlsxExport   bool
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Search for units by weapon, skill or equipment",
	Long: `Searches every unit in the dataset for a weapon, skill or equipment whose
name contains the given substring (case-insensitive). At least one of
--weapon, --skill or --equip is required.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filters := query.Filters{
			Weapon: weaponFlag,
			Skill:  skillFlag,
			Equip:  equipFlag,
		}
		if filters.Empty() {
			_ = cmd.Help()
			return errors.New("at least one of --weapon, --skill or --equip is required")
		}

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
			dir = queryDataDir
		}

		fmt.Println("Loading data... please wait.")
		db, err := dataset.Load(dir, logg)
		if err != nil {
			return err
		}
		fmt.Printf("Loaded %d units.\n", len(db.Units))

		matches := query.NewEngine(db).Search(filters)
		if len(matches) == 0 {
			fmt.Println("No units found matching criteria.")
			return nil
		}

		fmt.Printf("\nFound %d matching units.\n", len(matches))
		if byFaction {
			report.WriteByFaction(os.Stdout, db.Metadata, matches)
		} else {
			report.WriteFlat(os.Stdout, db.Metadata, matches)
		}

		if jsonExport {
			path := fmt.Sprintf("query_results_%d.json", time.Now().Unix())
			if err := report.ExportJSON(path, db.Metadata, matches); err != nil {
				return err
			}
			logg.Info("JSON report saved", zap.String("file", path), zap.Int("units", len(matches)))
		}
		if xlsxExport {
			path := fmt.Sprintf("query_results_%d.xlsx", time.Now().Unix())
			if err := report.ExportXLSX(path, db.Metadata, matches); err != nil {
				return err
			}
			logg.Info("XLSX report saved", zap.String("file", path), zap.Int("units", len(matches)))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringVar(&queryDataDir, "data-dir", "./data", "Path to data directory")
	queryCmd.Flags().StringVarP(&weaponFlag, "weapon", "w", "", "Search for units with this weapon")
	queryCmd.Flags().StringVarP(&skillFlag, "skill", "s", "", "Search for units with this skill")
	queryCmd.Flags().StringVarP(&equipFlag, "equip", "e", "", "Search for units with this equipment")
	queryCmd.Flags().BoolVar(&byFaction, "by-faction", false, "Aggregate results by faction and show missing factions")
	queryCmd.Flags().BoolVar(&jsonExport, "json", false, "Also save results as a JSON file")
	queryCmd.Flags().BoolVar(&xlsxExport, "xlsx", false, "Also save results as an XLSX spreadsheet")
}
