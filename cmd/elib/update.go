// Update command patches fields on an existing record.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kaylain7/E-library/pkg/types"
	"github.com/Kaylain7/E-library/pkg/validate"
)

var (
	updateTitle  string
	updateAuthor string
	updatePages  string
	updateTag    string
	updateDate   string
	updateISBN   string
	updateNotes  string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields on a book record",
	Long: `Update patches only the fields whose flags are provided; other
fields keep their current values. Changed fields are validated before
the store is touched.

Example:
  elib update book_abc123_0001 --pages 430
  elib update book_abc123_0001 --tag "Science Fiction" --notes "Loaned out."`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "book title")
	updateCmd.Flags().StringVar(&updateAuthor, "author", "", "author name")
	updateCmd.Flags().StringVar(&updatePages, "pages", "", "page count")
	updateCmd.Flags().StringVar(&updateTag, "tag", "", "category label")
	updateCmd.Flags().StringVar(&updateDate, "date", "", "date added, YYYY-MM-DD")
	updateCmd.Flags().StringVar(&updateISBN, "isbn", "", "ISBN-10 or ISBN-13")
	updateCmd.Flags().StringVar(&updateNotes, "notes", "", "free-text notes")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id := args[0]
	flags := cmd.Flags()

	var patch types.RecordPatch
	bad := false

	checkField := func(name string, result validate.Result) bool {
		if !result.Valid {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", name, result.Message)
			bad = true
			return false
		}
		return true
	}

	if flags.Changed("title") && checkField("title", validate.Title(updateTitle)) {
		patch.Title = trimmed(updateTitle)
	}
	if flags.Changed("author") && checkField("author", validate.Author(updateAuthor)) {
		patch.Author = trimmed(updateAuthor)
	}
	if flags.Changed("pages") && checkField("pages", validate.Pages(updatePages)) {
		n, _ := strconv.ParseFloat(strings.TrimSpace(updatePages), 64)
		patch.Pages = &n
	}
	if flags.Changed("tag") && checkField("tag", validate.Tag(updateTag)) {
		patch.Tag = trimmed(updateTag)
	}
	if flags.Changed("date") && checkField("date", validate.Date(updateDate)) {
		patch.DateAdded = trimmed(updateDate)
	}
	if flags.Changed("isbn") && checkField("isbn", validate.ISBN(updateISBN)) {
		patch.ISBN = trimmed(updateISBN)
	}
	if flags.Changed("notes") {
		if w := validate.Notes(updateNotes); w.Warn {
			fmt.Fprintf(os.Stderr, "  notes: %s (warning)\n", w.Message)
		}
		patch.Notes = trimmed(updateNotes)
	}

	if bad {
		return userError("invalid input")
	}
	if patch == (types.RecordPatch{}) {
		return userError("nothing to update: provide at least one field flag")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	record, err := store.Update(id, patch)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return userError("record %q not found", id)
		}
		return fmt.Errorf("update record: %w", err)
	}

	if flagJSON {
		return printJSON(record)
	}
	fmt.Printf("Updated %q (%s)\n", record.Title, record.ID)
	return nil
}

// trimmed returns a pointer to the trimmed value, for patch fields.
func trimmed(v string) *string {
	t := strings.TrimSpace(v)
	return &t
}
