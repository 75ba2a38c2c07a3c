// List command renders the filtered, sorted query view.
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Kaylain7/E-library/pkg/library"
	"github.com/Kaylain7/E-library/pkg/types"
	"github.com/Kaylain7/E-library/pkg/validate"
)

var (
	listSearch string
	listCase   bool
	listTag    string
	listSort   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List books, optionally filtered and sorted",
	Long: `List shows the library filtered by tag and by a search pattern
(a regular expression matched against title, author, tag, and notes),
sorted by the chosen key. An invalid pattern falls back to no pattern;
it never aborts the listing.

Sort keys: date-desc, date-asc, title-asc, title-desc, pages-desc, pages-asc.

Example:
  elib list
  elib list --tag Sci-Fi --sort pages-desc
  elib list --search "herbert|asimov"
  elib list --search "Dune" --case-sensitive`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "search pattern (regular expression)")
	listCmd.Flags().BoolVar(&listCase, "case-sensitive", false, "match the search pattern case-sensitively")
	listCmd.Flags().StringVar(&listTag, "tag", "", "show only books with this tag")
	listCmd.Flags().StringVar(&listSort, "sort", types.SortDateDesc, "sort key")
}

func runList(cmd *cobra.Command, args []string) error {
	if !types.ValidSortKey(listSort) {
		return userError("unknown sort key %q (valid: %s)", listSort, strings.Join([]string{
			types.SortDateDesc, types.SortDateAsc, types.SortTitleAsc,
			types.SortTitleDesc, types.SortPagesDesc, types.SortPagesAsc,
		}, ", "))
	}

	if check := validate.CheckPattern(listSearch); !check.Valid {
		// Degrade to no pattern rather than failing the listing.
		fmt.Fprintln(os.Stderr, check.Message)
		listSearch = ""
	}
	pattern := validate.CompileSearch(listSearch, listCase)

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records := store.Query(library.Query{
		Pattern: pattern,
		Tag:     listTag,
		Sort:    listSort,
	})

	if flagJSON {
		return printJSON(records)
	}

	total := len(store.Records())
	if len(records) == 0 {
		fmt.Println("No books match.")
		fmt.Println(countLine(0, total))
		return nil
	}

	settings := store.Settings()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tPAGES\tTAG\tADDED")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			highlight(r.Title, pattern),
			highlight(r.Author, pattern),
			displayPages(r.Pages, settings),
			highlight(r.Tag, pattern),
			r.DateAdded,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println(countLine(len(records), total))
	return nil
}

// countLine renders the listing summary. The noun agrees with the
// library total, which is the last number in the sentence.
func countLine(shown, total int) string {
	plural := "s"
	if total == 1 {
		plural = ""
	}
	return fmt.Sprintf("Showing %d of %d book%s", shown, total, plural)
}
