// Get command shows one record by id.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kaylain7/E-library/pkg/library"
	"github.com/Kaylain7/E-library/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a book record by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	record, err := store.Get(args[0])
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return userError("record %q not found", args[0])
		}
		return err
	}

	if flagJSON {
		return printJSON(record)
	}

	fmt.Printf("%s by %s\n", record.Title, record.Author)
	fmt.Printf("  id:     %s\n", record.ID)
	fmt.Printf("  pages:  %s\n", library.FormatPages(record.Pages))
	fmt.Printf("  tag:    %s\n", record.Tag)
	fmt.Printf("  added:  %s\n", record.DateAdded)
	if record.ISBN != "" {
		fmt.Printf("  isbn:   %s\n", record.ISBN)
	}
	if record.Notes != "" {
		fmt.Printf("  notes:  %s\n", record.Notes)
	}
	return nil
}
