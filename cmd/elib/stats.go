// Stats command renders the reading dashboard.
package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kaylain7/E-library/pkg/library"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate reading statistics",
	Long: `Stats shows collection totals, the dominant tag, progress
against the reading-goal page cap, and how many books were added on
each of the last seven days.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	sum := store.Summarize()
	settings := store.Settings()

	if flagJSON {
		return printJSON(sum)
	}

	topTag := sum.TopTag
	if topTag == "" {
		topTag = "—"
	}

	fmt.Printf("Books:       %d\n", sum.Books)
	fmt.Printf("Total pages: %s\n", displayPages(sum.TotalPages, settings))
	fmt.Printf("Average:     %s\n", displayPages(sum.AvgPages, settings))
	fmt.Printf("Top tag:     %s\n", topTag)

	pct := 0.0
	if sum.PageCap > 0 {
		pct = math.Min(sum.TotalPages/float64(sum.PageCap)*100, 100)
	}
	fmt.Printf("Goal:        %s of %s pages (%.0f%%)\n",
		library.FormatPages(sum.TotalPages), library.FormatPages(float64(sum.PageCap)), pct)
	if sum.CapReached {
		fmt.Printf("             Target exceeded by %s!\n", library.FormatPages(math.Abs(sum.Remaining)))
	} else {
		fmt.Printf("             %s pages remaining.\n", library.FormatPages(sum.Remaining))
	}

	fmt.Println("Last 7 days:")
	for _, day := range sum.LastWeek {
		fmt.Printf("  %s  %d %s\n", day.Date, day.Count, strings.Repeat("#", day.Count))
	}
	return nil
}
