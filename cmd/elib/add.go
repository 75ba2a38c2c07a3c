// Add command creates a new book record.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kaylain7/E-library/pkg/types"
	"github.com/Kaylain7/E-library/pkg/validate"
)

var (
	addTitle  string
	addAuthor string
	addPages  string
	addTag    string
	addDate   string
	addISBN   string
	addNotes  string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book to the library",
	Long: `Add creates a new book record. Every field is validated before
the record is stored; a duplicated word in the notes produces a
warning but does not block.

The date defaults to today when omitted.

Example:
  elib add --title "Dune" --author "Frank Herbert" --pages 412 --tag Sci-Fi
  elib add --title "Dune" --author "Frank Herbert" --pages 412 --tag Sci-Fi \
    --date 2024-03-15 --isbn "978-0-44-117271-9" --notes "Re-read."`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "book title (required)")
	addCmd.Flags().StringVar(&addAuthor, "author", "", "author name (required)")
	addCmd.Flags().StringVar(&addPages, "pages", "", "page count (required)")
	addCmd.Flags().StringVar(&addTag, "tag", "", "category label (required)")
	addCmd.Flags().StringVar(&addDate, "date", "", "date added, YYYY-MM-DD (default: today)")
	addCmd.Flags().StringVar(&addISBN, "isbn", "", "ISBN-10 or ISBN-13")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-text notes")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("author")
	_ = addCmd.MarkFlagRequired("pages")
	_ = addCmd.MarkFlagRequired("tag")
}

func runAdd(cmd *cobra.Command, args []string) error {
	date := addDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	fields := validate.Fields{
		Title:     addTitle,
		Author:    addAuthor,
		Pages:     addPages,
		DateAdded: date,
		Tag:       addTag,
		ISBN:      addISBN,
		Notes:     addNotes,
	}
	if !printValidation(validate.All(fields)) {
		return userError("invalid input")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	pages, _ := strconv.ParseFloat(strings.TrimSpace(addPages), 64)
	record, err := store.Create(types.Record{
		Title:     strings.TrimSpace(addTitle),
		Author:    strings.TrimSpace(addAuthor),
		Pages:     pages,
		Tag:       strings.TrimSpace(addTag),
		DateAdded: strings.TrimSpace(date),
		ISBN:      strings.TrimSpace(addISBN),
		Notes:     strings.TrimSpace(addNotes),
	})
	if err != nil {
		return fmt.Errorf("create record: %w", err)
	}

	if flagJSON {
		return printJSON(record)
	}
	fmt.Printf("Added %q (%s)\n", record.Title, record.ID)
	return nil
}
