// Delete command removes one record by id, after confirmation.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kaylain7/E-library/pkg/types"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a book record by id",
	Long: `Delete removes one record. It asks for confirmation unless
--yes is given.

Example:
  elib delete book_abc123_0001
  elib delete book_abc123_0001 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	record, err := store.Get(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return userError("record %q not found", id)
		}
		return err
	}

	if !deleteYes && !confirm(fmt.Sprintf("Delete %q?", record.Title)) {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := store.Delete(id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"deleted": id})
	}
	fmt.Printf("Deleted %q (%s)\n", record.Title, id)
	return nil
}
