// Import command replaces the collection from a JSON file.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kaylain7/E-library/pkg/types"
	"github.com/Kaylain7/E-library/pkg/validate"
)

var importYes bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the library from a JSON export",
	Long: `Import reads a JSON array of records and replaces the entire
collection with it. The payload is validated first and every violation
is reported, so a broken file can be fixed in one pass. Nothing is
written when validation fails.

Example:
  elib import library.json
  elib import library.json --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importYes, "yes", false, "skip the confirmation prompt")
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return userError("read %s: %v", args[0], err)
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return userError("import failed: invalid JSON: %v", err)
	}

	records, err := importRecords(parsed)
	if err != nil {
		return err
	}

	if !importYes && !confirm(fmt.Sprintf("Import %d records? This replaces your current library.", len(records))) {
		fmt.Println("Cancelled.")
		return nil
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.ReplaceAll(records); err != nil {
		return fmt.Errorf("replace collection: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]int{"imported": len(records)})
	}
	fmt.Printf("Imported %d records.\n", len(records))
	return nil
}

// importRecords is the gate between a decoded payload and the store:
// it reports every violation and returns records only for a fully
// valid payload, so a rejected import can never touch the collection.
func importRecords(parsed any) ([]types.Record, error) {
	result := validate.Import(parsed)
	if !result.Valid {
		fmt.Fprintln(os.Stderr, "Import failed:")
		for _, msg := range result.Errors {
			fmt.Fprintf(os.Stderr, "  %s\n", msg)
		}
		return nil, userError("%d validation error(s)", len(result.Errors))
	}
	return validate.RecordsFromImport(parsed), nil
}
