package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"infinity-tools/core/utils"

	"github.com/spf13/cobra"
)

var (
	inspectSection string
	inspectLimit   int
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Dump the raw structure of a dataset JSON file",
	Long: `Prints the top-level keys of a JSON file for exploratory debugging.
With --section, drills into one key: object sections list their nested keys,
array sections print their first entries.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var data map[string]any
		if err := json.Unmarshal(b, &data); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		keys := make([]string, 0, len(data))
		for k := range data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Println("Root keys:", keys)

		if inspectSection == "" {
			return nil
		}

		section, ok := data[inspectSection]
		if !ok {
			return fmt.Errorf("no %q key in %s", inspectSection, args[0])
		}

		switch v := section.(type) {
		case map[string]any:
			nested := make([]string, 0, len(v))
			for k := range v {
				nested = append(nested, k)
			}
			sort.Strings(nested)
			fmt.Printf("%s keys: %v\n", inspectSection, nested)
		case []any:
			fmt.Printf("%s: %d entries\n", inspectSection, len(v))
			for i, entry := range v {
				if i >= inspectLimit {
					break
				}
				printEntry(entry)
			}
		default:
			fmt.Printf("%s: %v\n", inspectSection, v)
		}
		return nil
	},
}

// printEntry shows one array element. Entries in this dataset are usually
// {id, name, ...} objects, so those two fields get pulled out when present.
func printEntry(entry any) {
	obj, ok := entry.(map[string]any)
	if !ok {
		fmt.Printf("  - %v\n", entry)
		return
	}
	if _, hasID := obj["id"]; hasID {
		if _, hasName := obj["name"]; hasName {
			fmt.Printf("  - id=%d name=%s\n", utils.ToInt(obj["id"]), utils.ToString(obj["name"]))
			return
		}
	}
	raw, err := json.Marshal(obj)
	if err != nil {
		fmt.Printf("  - %v\n", obj)
		return
	}
	fmt.Printf("  - %s\n", raw)
}

func init() {
	RootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectSection, "section", "", "Top-level key to drill into")
	inspectCmd.Flags().IntVar(&inspectLimit, "limit", 10, "Max array entries to print")
}
