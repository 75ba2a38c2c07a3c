// Export command writes the collection as JSON or CSV.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kaylain7/E-library/pkg/library"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the library as JSON or CSV",
	Long: `Export writes the full collection to stdout, or to a file with
--out. JSON is pretty-printed; CSV uses CRLF line endings and standard
quoting so it round-trips through spreadsheet tools.

Example:
  elib export > library.json
  elib export --format csv --out library.csv`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "export format: json or csv")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "write to this file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records := store.Records()

	var data []byte
	switch exportFormat {
	case "json":
		data, err = library.ExportJSON(records)
	case "csv":
		data, err = library.ExportCSV(records)
	default:
		return userError("unknown format %q (valid: json, csv)", exportFormat)
	}
	if err != nil {
		return fmt.Errorf("render export: %w", err)
	}

	if exportOut == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(os.Stderr, "Exported %d records to %s\n", len(records), exportOut)
	return nil
}
