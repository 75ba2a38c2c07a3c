package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Kaylain7/E-library/pkg/types"
)

// requiredImportFields must be present on every item of an import
// payload. isbn and notes are optional and may be absent entirely.
var requiredImportFields = []string{
	"id", "title", "author", "pages", "tag", "dateAdded", "createdAt", "updatedAt",
}

// ImportResult reports every violation found in an import payload, not
// just the first, so the user can fix the source file in one pass.
type ImportResult struct {
	Valid  bool
	Errors []string
}

// Import checks a decoded JSON payload for the shape an import must
// have: a non-empty array of keyed objects, each carrying the required
// record fields, with a numeric-coercible pages value.
func Import(data any) ImportResult {
	items, isArray := data.([]any)
	if !isArray {
		return ImportResult{Errors: []string{"Must be a JSON array."}}
	}
	if len(items) == 0 {
		return ImportResult{Errors: []string{"Array is empty."}}
	}

	var errs []string
	for i, item := range items {
		obj, isObject := item.(map[string]any)
		if !isObject || obj == nil {
			errs = append(errs, fmt.Sprintf("Item %d: not an object.", i))
			continue
		}
		for _, key := range requiredImportFields {
			if _, present := obj[key]; !present {
				errs = append(errs, fmt.Sprintf("Item %d: missing %q.", i, key))
			}
		}
		if v, present := obj["pages"]; present && v != nil && !numeric(v) {
			errs = append(errs, fmt.Sprintf("Item %d: %q not numeric.", i, "pages"))
		}
	}
	return ImportResult{Valid: len(errs) == 0, Errors: errs}
}

// RecordsFromImport converts a payload that already passed Import into
// records, coercing loosely typed scalar values the way the export
// side stringifies them. Calling it on a payload Import rejected gives
// undefined field values.
func RecordsFromImport(data any) []types.Record {
	items, _ := data.([]any)
	records := make([]types.Record, 0, len(items))
	for _, item := range items {
		obj, _ := item.(map[string]any)
		records = append(records, types.Record{
			ID:        text(obj["id"]),
			Title:     text(obj["title"]),
			Author:    text(obj["author"]),
			Pages:     number(obj["pages"]),
			Tag:       text(obj["tag"]),
			DateAdded: text(obj["dateAdded"]),
			ISBN:      text(obj["isbn"]),
			Notes:     text(obj["notes"]),
			CreatedAt: text(obj["createdAt"]),
			UpdatedAt: text(obj["updatedAt"]),
		})
	}
	return records
}

// numeric reports whether a decoded JSON value coerces to a number:
// numbers and bools always do, strings when they parse as a float
// (blank strings coerce to zero).
func numeric(v any) bool {
	switch n := v.(type) {
	case float64, bool:
		return true
	case string:
		t := strings.TrimSpace(n)
		if t == "" {
			return true
		}
		_, err := strconv.ParseFloat(t, 64)
		return err == nil
	default:
		return false
	}
}

// number coerces a decoded JSON value to a float64, zero when it does
// not coerce.
func number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// text coerces a decoded JSON scalar to its string form; nil and
// non-scalar values become the empty string.
func text(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}
