// Clear command wipes the whole library after confirmation.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all books and reset settings",
	Long: `Clear removes every record and resets the settings to their
defaults. This cannot be undone; it asks for confirmation unless
--yes is given.`,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "skip the confirmation prompt")
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearYes && !confirm("Delete ALL books? This cannot be undone.") {
		fmt.Println("Cancelled.")
		return nil
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		return fmt.Errorf("clear library: %w", err)
	}

	fmt.Println("All data cleared.")
	return nil
}
