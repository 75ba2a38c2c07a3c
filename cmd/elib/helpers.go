// Shared helpers for elib CLI commands.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"

	"github.com/Kaylain7/E-library/pkg/library"
	"github.com/Kaylain7/E-library/pkg/types"
	"github.com/Kaylain7/E-library/pkg/validate"
)

// userErr marks an error as caused by user input rather than the
// system, so main can pick the right exit code.
type userErr struct {
	err error
}

func (e userErr) Error() string { return e.err.Error() }
func (e userErr) Unwrap() error { return e.err }

// userError builds a userErr from a format string.
func userError(format string, args ...any) error {
	return userErr{err: fmt.Errorf(format, args...)}
}

// openStore resolves the data directory and opens the record store.
// The caller must defer store.Close().
func openStore() (*library.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := library.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open library: %w", err)
	}
	return store, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// confirm prompts on stderr and reads a yes/no answer from stdin.
// Anything other than "y" or "yes" declines. Destructive commands call
// this before the store is touched.
func confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// fieldReport pairs a field name with its validation outcome for
// printing.
type fieldReport struct {
	name   string
	result validate.Result
}

// printValidation writes every failed blocking rule and any notes
// warning to stderr, one line per field, and reports whether all
// blocking rules passed.
func printValidation(r validate.Results) bool {
	fields := []fieldReport{
		{"title", r.Title},
		{"author", r.Author},
		{"pages", r.Pages},
		{"date", r.DateAdded},
		{"tag", r.Tag},
		{"isbn", r.ISBN},
	}
	for _, f := range fields {
		if !f.result.Valid {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", f.name, f.result.Message)
		}
	}
	if r.Notes.Warn {
		fmt.Fprintf(os.Stderr, "  notes: %s (warning)\n", r.Notes.Message)
	}
	return r.AllValid
}

// ANSI reverse-video escape pair used for match highlighting.
const (
	ansiMarkOn  = "\x1b[7m"
	ansiMarkOff = "\x1b[27m"
)

// highlight wraps every pattern match in text with reverse-video
// escapes. A nil pattern returns the text unchanged. Empty matches
// advance by hand so a pattern like "x*" cannot loop forever.
func highlight(text string, re *regexp.Regexp) string {
	if re == nil {
		return text
	}
	var b strings.Builder
	last := 0
	for _, m := range re.FindAllStringIndex(text, -1) {
		if m[0] == m[1] {
			continue
		}
		b.WriteString(text[last:m[0]])
		b.WriteString(ansiMarkOn)
		b.WriteString(text[m[0]:m[1]])
		b.WriteString(ansiMarkOff)
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// displayPages renders a page count in the configured display unit:
// chapters (one chapter per 20 pages), percent of the page cap, or
// plain pages.
func displayPages(pages float64, settings types.Settings) string {
	switch settings.Unit {
	case types.UnitChapters:
		return fmt.Sprintf("%d", int(math.Round(pages/20)))
	case types.UnitPercent:
		if settings.PageCap > 0 {
			return fmt.Sprintf("%d%%", int(math.Round(pages/float64(settings.PageCap)*100)))
		}
		return library.FormatPages(pages)
	default:
		return library.FormatPages(pages)
	}
}
