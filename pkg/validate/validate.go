// Package validate implements the field-level validation rules that
// guard record integrity on entry and import. All functions are pure:
// they take the raw, untrimmed input text and report a structured
// accept/reject result without touching any store state.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Compiled field patterns.
var (
	reClean = regexp.MustCompile(`^\S(?:.*\S)?$`) // no leading or trailing spaces
	rePages = regexp.MustCompile(`^(0|[1-9]\d*)(\.\d{1,2})?$`)
	reDate  = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
	reTag   = regexp.MustCompile(`^[A-Za-z]+(?:[ -][A-Za-z]+)*$`)
	reISBN  = regexp.MustCompile(`^(?:\d[\s-]?){9}[\dX]$|^(?:\d[\s-]?){13}$`)

	// RE2 has no lookaheads or back-references, so the all-uppercase
	// and duplicate-word rules scan explicitly instead of matching a
	// single pattern.
	reAllUpper = regexp.MustCompile(`^[A-Z\s]+$`)
	reWord     = regexp.MustCompile(`\w+`)
)

// Result is the outcome of a blocking field rule. A failed Result
// carries the user-facing message for the first rule that rejected.
type Result struct {
	Valid   bool
	Message string
}

// Warning is the outcome of a non-blocking rule. It informs but never
// prevents a mutation.
type Warning struct {
	Warn    bool
	Message string
}

func ok() Result { return Result{Valid: true} }

func fail(msg string) Result { return Result{Message: msg} }

// Title checks the title field: required, no leading/trailing or
// consecutive spaces, not entirely uppercase.
func Title(v string) Result {
	if strings.TrimSpace(v) == "" {
		return fail("Title is required.")
	}
	if !reClean.MatchString(v) {
		return fail("No leading or trailing spaces.")
	}
	if strings.Contains(v, "  ") {
		return fail("No consecutive spaces.")
	}
	if reAllUpper.MatchString(v) {
		return fail("Title must not be entirely uppercase.")
	}
	return ok()
}

// Author checks the author field: same whitespace rules as Title, plus
// no immediately repeated word ("the the").
func Author(v string) Result {
	if strings.TrimSpace(v) == "" {
		return fail("Author is required.")
	}
	if !reClean.MatchString(v) {
		return fail("No leading or trailing spaces.")
	}
	if strings.Contains(v, "  ") {
		return fail("No consecutive spaces.")
	}
	if _, found := duplicateWord(v); found {
		return fail("Author name contains a duplicated word.")
	}
	return ok()
}

// Pages checks the page count: a non-negative number with at most two
// decimal places, between 1 and 99999 inclusive.
func Pages(v string) Result {
	t := strings.TrimSpace(v)
	if t == "" {
		return fail("Pages is required.")
	}
	if !rePages.MatchString(t) {
		return fail("Must be a positive number (e.g. 312).")
	}
	n, _ := strconv.ParseFloat(t, 64)
	if n < 1 {
		return fail("Must be at least 1.")
	}
	if n > 99999 {
		return fail("Exceeds maximum (99999).")
	}
	return ok()
}

// Date checks the date-added field: strict YYYY-MM-DD with in-range
// month and day, and a real calendar date (catches e.g. Feb 30).
func Date(v string) Result {
	t := strings.TrimSpace(v)
	if t == "" {
		return fail("Date is required.")
	}
	if !reDate.MatchString(t) {
		return fail("Use YYYY-MM-DD format (e.g. 2024-03-15).")
	}
	if _, err := time.Parse("2006-01-02", t); err != nil {
		return fail("Not a valid calendar date.")
	}
	return ok()
}

// Tag checks the category label: alphabetic words separated by single
// spaces or hyphens.
func Tag(v string) Result {
	if strings.TrimSpace(v) == "" {
		return fail("Tag is required.")
	}
	if !reTag.MatchString(strings.TrimSpace(v)) {
		return fail(`Letters, spaces, or hyphens only (e.g. "Sci-Fi").`)
	}
	return ok()
}

// ISBN checks the optional ISBN field: empty is valid; otherwise a
// 10-digit form (last character may be X) or a 13-digit form, with
// optional single space or hyphen separators.
func ISBN(v string) Result {
	t := strings.TrimSpace(v)
	if t == "" {
		return ok()
	}
	if !reISBN.MatchString(t) {
		return fail("Unrecognised ISBN format.")
	}
	return ok()
}

// Notes never blocks: it warns when the free text contains an
// immediately repeated word, identifying the duplicated phrase.
func Notes(v string) Warning {
	if phrase, found := duplicateWord(v); found {
		return Warning{Warn: true, Message: fmt.Sprintf("Duplicate word: %q", phrase)}
	}
	return Warning{}
}

// duplicateWord scans for a word immediately repeated with only
// whitespace between, case-insensitively, and returns the offending
// phrase. Only adjacent repeats count; the same word appearing twice
// elsewhere in the text is fine.
func duplicateWord(v string) (string, bool) {
	words := reWord.FindAllStringIndex(v, -1)
	for i := 0; i+1 < len(words); i++ {
		gap := v[words[i][1]:words[i+1][0]]
		if gap == "" || strings.TrimSpace(gap) != "" {
			continue
		}
		a := v[words[i][0]:words[i][1]]
		b := v[words[i+1][0]:words[i+1][1]]
		if strings.EqualFold(a, b) {
			return v[words[i][0]:words[i+1][1]], true
		}
	}
	return "", false
}

// Fields carries the raw form input for a record, one string per field.
type Fields struct {
	Title     string
	Author    string
	Pages     string
	DateAdded string
	Tag       string
	ISBN      string
	Notes     string
}

// Results is the composite outcome of validating all seven fields.
// AllValid is true iff every blocking field passed; the Notes warning
// never affects it.
type Results struct {
	Title     Result
	Author    Result
	Pages     Result
	DateAdded Result
	Tag       Result
	ISBN      Result
	Notes     Warning
	AllValid  bool
}

// All runs every field validator and returns the composite result.
func All(f Fields) Results {
	r := Results{
		Title:     Title(f.Title),
		Author:    Author(f.Author),
		Pages:     Pages(f.Pages),
		DateAdded: Date(f.DateAdded),
		Tag:       Tag(f.Tag),
		ISBN:      ISBN(f.ISBN),
		Notes:     Notes(f.Notes),
	}
	r.AllValid = r.Title.Valid && r.Author.Valid && r.Pages.Valid &&
		r.DateAdded.Valid && r.Tag.Valid && r.ISBN.Valid
	return r
}
