package library

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"

	"github.com/Kaylain7/E-library/pkg/types"
)

// csvHeader is the fixed export column order. It is part of the
// external interface; importers of the CSV rely on it.
var csvHeader = []string{
	"id", "title", "author", "pages", "tag", "dateAdded",
	"isbn", "notes", "createdAt", "updatedAt",
}

// ExportJSON renders the full records array pretty-printed with
// 2-space indentation.
func ExportJSON(records []types.Record) ([]byte, error) {
	if records == nil {
		records = []types.Record{}
	}
	return json.MarshalIndent(records, "", "  ")
}

// ExportCSV renders the records with a header row, CRLF line
// terminators, and RFC-style quoting: fields containing a comma,
// double quote, or newline are wrapped in double quotes with internal
// quotes doubled. Empty field values render as empty strings.
func ExportCSV(records []types.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{
			r.ID, r.Title, r.Author, FormatPages(r.Pages), r.Tag,
			r.DateAdded, r.ISBN, r.Notes, r.CreatedAt, r.UpdatedAt,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// FormatPages renders a page count without a trailing fraction when it
// is whole ("312", "12.5").
func FormatPages(pages float64) string {
	return strconv.FormatFloat(pages, 'f', -1, 64)
}
