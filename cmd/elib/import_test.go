package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaylain7/E-library/pkg/library"
	"github.com/Kaylain7/E-library/pkg/types"
)

func decodePayload(t *testing.T, raw string) any {
	t.Helper()
	var parsed any
	require.NoError(t, json.Unmarshal([]byte(raw), &parsed))
	return parsed
}

func TestImportRecordsValidPayload(t *testing.T) {
	parsed := decodePayload(t, `[{
		"id": "book_x_0001", "title": "Emma", "author": "Jane Austen",
		"pages": 474, "tag": "Classic", "dateAdded": "2024-06-01",
		"createdAt": "2024-06-01T08:30:00.000Z", "updatedAt": "2024-06-01T08:30:00.000Z"
	}]`)

	records, err := importRecords(parsed)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "book_x_0001", records[0].ID)
	assert.Equal(t, 474.0, records[0].Pages)
}

func TestImportRecordsRejectedPayload(t *testing.T) {
	records, err := importRecords(decodePayload(t, `[{"title": "Emma"}]`))

	assert.Nil(t, records)
	var ue userErr
	assert.ErrorAs(t, err, &ue, "rejection is a user error, not a system one")
}

func TestImportRejectedPayloadLeavesCollection(t *testing.T) {
	store, err := library.Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	created, err := store.Create(types.Record{
		Title: "Dune", Author: "Frank Herbert", Pages: 412,
		Tag: "Sci-Fi", DateAdded: "2024-03-15",
	})
	require.NoError(t, err)

	// Same sequence runImport performs: the gate fails, so nothing is
	// ever handed to the store.
	records, err := importRecords(decodePayload(t, `[{"title": "Emma"}]`))
	require.Error(t, err)
	assert.Nil(t, records, "a rejected payload yields nothing to apply")

	got := store.Records()
	require.Len(t, got, 1)
	assert.Equal(t, created, got[0], "rejected payload leaves the collection untouched")
}
