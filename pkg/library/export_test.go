package library

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaylain7/E-library/pkg/types"
)

func exportFixture() []types.Record {
	return []types.Record{
		{
			ID:        "book_m1_0001",
			Title:     `Say "Hi", Bob`,
			Author:    "Ann Lee",
			Pages:     312.5,
			Tag:       "Sci-Fi",
			DateAdded: "2024-03-15",
			ISBN:      "9780441013593",
			Notes:     "line one",
			CreatedAt: "2024-03-15T10:00:00.000Z",
			UpdatedAt: "2024-03-15T10:00:00.000Z",
		},
		{
			ID:        "book_m2_0002",
			Title:     "Emma",
			Author:    "Jane Austen",
			Pages:     474,
			Tag:       "Classic",
			DateAdded: "2024-06-01",
			CreatedAt: "2024-06-01T08:30:00.000Z",
			UpdatedAt: "2024-06-02T09:15:00.000Z",
		},
	}
}

func TestExportJSON(t *testing.T) {
	data, err := ExportJSON(exportFixture())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "export_json", data)
}

func TestExportJSONEmpty(t *testing.T) {
	for _, records := range [][]types.Record{nil, {}} {
		data, err := ExportJSON(records)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data), "empty collection exports as an empty array")
	}
}

func TestExportCSV(t *testing.T) {
	data, err := ExportCSV(exportFixture())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "export_csv", data)
}

func TestExportCSVQuoting(t *testing.T) {
	data, err := ExportCSV(exportFixture())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"Say ""Hi"", Bob"`, "embedded quotes doubled, field wrapped")
	assert.True(t, strings.HasSuffix(out, "\r\n"), "rows terminated with CRLF")
}

func TestExportCSVEmpty(t *testing.T) {
	data, err := ExportCSV(nil)
	require.NoError(t, err)

	assert.Equal(t, "id,title,author,pages,tag,dateAdded,isbn,notes,createdAt,updatedAt\r\n", string(data))
}

func TestFormatPages(t *testing.T) {
	assert.Equal(t, "312", FormatPages(312))
	assert.Equal(t, "312.5", FormatPages(312.5))
	assert.Equal(t, "0.25", FormatPages(0.25))
}
