package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordPatchApply(t *testing.T) {
	title := "Dune Messiah"
	pages := 256.0
	notes := ""

	r := Record{
		ID:        "book_abc_0001",
		Title:     "Dune",
		Author:    "Frank Herbert",
		Pages:     412,
		Tag:       "Sci-Fi",
		DateAdded: "2024-03-15",
		Notes:     "first read",
		CreatedAt: "2024-03-15T10:00:00.000Z",
		UpdatedAt: "2024-03-15T10:00:00.000Z",
	}

	RecordPatch{Title: &title, Pages: &pages, Notes: &notes}.Apply(&r)

	assert.Equal(t, "Dune Messiah", r.Title)
	assert.Equal(t, 256.0, r.Pages)
	assert.Empty(t, r.Notes, "explicit empty string clears the field")
	assert.Equal(t, "Frank Herbert", r.Author, "nil fields untouched")
	assert.Equal(t, "book_abc_0001", r.ID)
}

func TestValidSortKey(t *testing.T) {
	for _, key := range []string{
		SortDateDesc, SortDateAsc,
		SortTitleAsc, SortTitleDesc,
		SortPagesDesc, SortPagesAsc,
	} {
		assert.True(t, ValidSortKey(key), key)
	}
	assert.False(t, ValidSortKey("author-asc"))
	assert.False(t, ValidSortKey(""))
}
