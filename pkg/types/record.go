package types

// Record is one catalogued book entry. Field order matches the
// persisted JSON layout and the CSV export column order.
type Record struct {
	ID        string  `json:"id"`        // Opaque unique id, generated on creation, immutable.
	Title     string  `json:"title"`     // Required; no leading/trailing/double spaces, not all caps.
	Author    string  `json:"author"`    // Required; same whitespace rules, no adjacent repeated word.
	Pages     float64 `json:"pages"`     // 1..99999, up to two decimal places.
	Tag       string  `json:"tag"`       // Single category label: letters, spaces, hyphens.
	DateAdded string  `json:"dateAdded"` // Calendar date, YYYY-MM-DD.
	ISBN      string  `json:"isbn"`      // Optional; 10-digit (X check char allowed) or 13-digit.
	Notes     string  `json:"notes"`     // Optional free text.
	CreatedAt string  `json:"createdAt"` // ISO-8601, set once at creation.
	UpdatedAt string  `json:"updatedAt"` // ISO-8601, refreshed on every successful mutation.
}

// RecordPatch holds the fields a caller may change on an existing
// record. Every field is a pointer so "not provided" (nil) is distinct
// from "set to empty". Only non-nil fields are applied; ID, CreatedAt
// and UpdatedAt are never patchable.
type RecordPatch struct {
	Title     *string
	Author    *string
	Pages     *float64
	Tag       *string
	DateAdded *string
	ISBN      *string
	Notes     *string
}

// Apply merges the non-nil patch fields onto r.
func (p RecordPatch) Apply(r *Record) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Author != nil {
		r.Author = *p.Author
	}
	if p.Pages != nil {
		r.Pages = *p.Pages
	}
	if p.Tag != nil {
		r.Tag = *p.Tag
	}
	if p.DateAdded != nil {
		r.DateAdded = *p.DateAdded
	}
	if p.ISBN != nil {
		r.ISBN = *p.ISBN
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
}

// Sort keys accepted by the query view. An unrecognized key leaves the
// collection in its stored order.
const (
	SortDateDesc  = "date-desc"
	SortDateAsc   = "date-asc"
	SortTitleAsc  = "title-asc"
	SortTitleDesc = "title-desc"
	SortPagesDesc = "pages-desc"
	SortPagesAsc  = "pages-asc"
)

// validSortKeys is the set of recognized sort key values.
var validSortKeys = map[string]bool{
	SortDateDesc:  true,
	SortDateAsc:   true,
	SortTitleAsc:  true,
	SortTitleDesc: true,
	SortPagesDesc: true,
	SortPagesAsc:  true,
}

// ValidSortKey reports whether key is one of the recognized sort keys.
func ValidSortKey(key string) bool {
	return validSortKeys[key]
}
