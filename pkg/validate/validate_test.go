package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		valid   bool
		message string
	}{
		{name: "plain title ok", input: "The Left Hand of Darkness", valid: true},
		{name: "single character ok", input: "Q", valid: true},
		{name: "empty rejected", input: "", message: "Title is required."},
		{name: "whitespace only rejected", input: "   ", message: "Title is required."},
		{name: "leading space rejected", input: " Dune", message: "No leading or trailing spaces."},
		{name: "trailing space rejected", input: "Dune ", message: "No leading or trailing spaces."},
		{name: "double space rejected", input: "The  Hobbit", message: "No consecutive spaces."},
		{name: "all uppercase rejected", input: "DUNE MESSIAH", message: "Title must not be entirely uppercase."},
		{name: "mixed case ok", input: "DUNE Messiah", valid: true},
		{name: "uppercase with digits ok", input: "HHGTTG 42", valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Title(tt.input)
			assert.Equal(t, tt.valid, r.Valid)
			assert.Equal(t, tt.message, r.Message)
		})
	}
}

func TestAuthor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		valid   bool
		message string
	}{
		{name: "plain author ok", input: "Ursula K. Le Guin", valid: true},
		{name: "empty rejected", input: "", message: "Author is required."},
		{name: "leading space rejected", input: " Frank Herbert", message: "No leading or trailing spaces."},
		{name: "double space rejected", input: "Frank  Herbert", message: "No consecutive spaces."},
		{name: "adjacent duplicate rejected", input: "Agatha Agatha Christie", message: "Author name contains a duplicated word."},
		{name: "duplicate is case-insensitive", input: "The THE Author", message: "Author name contains a duplicated word."},
		{name: "non-adjacent repeat ok", input: "Jerome K. Jerome", valid: true},
		{name: "prefix word ok", input: "Theo Theodorakis", valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Author(tt.input)
			assert.Equal(t, tt.valid, r.Valid)
			assert.Equal(t, tt.message, r.Message)
		})
	}
}

func TestPages(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		valid   bool
		message string
	}{
		{name: "whole number ok", input: "312", valid: true},
		{name: "two decimals ok", input: "12.50", valid: true},
		{name: "one decimal ok", input: "99.5", valid: true},
		{name: "surrounding whitespace ok", input: " 312 ", valid: true},
		{name: "empty rejected", input: "", message: "Pages is required."},
		{name: "zero rejected", input: "0", message: "Must be at least 1."},
		{name: "below one rejected", input: "0.5", message: "Must be at least 1."},
		{name: "above cap rejected", input: "100000", message: "Exceeds maximum (99999)."},
		{name: "maximum ok", input: "99999", valid: true},
		{name: "three decimals rejected", input: "1.234", message: "Must be a positive number (e.g. 312)."},
		{name: "negative rejected", input: "-5", message: "Must be a positive number (e.g. 312)."},
		{name: "leading zero rejected", input: "0123", message: "Must be a positive number (e.g. 312)."},
		{name: "not a number rejected", input: "many", message: "Must be a positive number (e.g. 312)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Pages(tt.input)
			assert.Equal(t, tt.valid, r.Valid)
			assert.Equal(t, tt.message, r.Message)
		})
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		valid   bool
		message string
	}{
		{name: "valid date ok", input: "2024-03-15", valid: true},
		{name: "leap day ok", input: "2024-02-29", valid: true},
		{name: "empty rejected", input: "", message: "Date is required."},
		{name: "wrong format rejected", input: "15/03/2024", message: "Use YYYY-MM-DD format (e.g. 2024-03-15)."},
		{name: "month 13 rejected", input: "2024-13-01", message: "Use YYYY-MM-DD format (e.g. 2024-03-15)."},
		{name: "day 32 rejected", input: "2024-01-32", message: "Use YYYY-MM-DD format (e.g. 2024-03-15)."},
		{name: "feb 30 rejected", input: "2024-02-30", message: "Not a valid calendar date."},
		{name: "feb 29 non-leap rejected", input: "2023-02-29", message: "Not a valid calendar date."},
		{name: "april 31 rejected", input: "2024-04-31", message: "Not a valid calendar date."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Date(tt.input)
			assert.Equal(t, tt.valid, r.Valid)
			assert.Equal(t, tt.message, r.Message)
		})
	}
}

func TestTag(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "single word ok", input: "Fantasy", valid: true},
		{name: "hyphenated ok", input: "Sci-Fi", valid: true},
		{name: "two words ok", input: "Young Adult", valid: true},
		{name: "empty rejected", input: ""},
		{name: "digits rejected", input: "Top10"},
		{name: "double separator rejected", input: "Sci--Fi"},
		{name: "trailing hyphen rejected", input: "Fantasy-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Tag(tt.input)
			assert.Equal(t, tt.valid, r.Valid)
			if !tt.valid && tt.input != "" {
				assert.Equal(t, `Letters, spaces, or hyphens only (e.g. "Sci-Fi").`, r.Message)
			}
		})
	}
}

func TestISBN(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "empty ok", input: "", valid: true},
		{name: "bare 10 digits ok", input: "0441172717", valid: true},
		{name: "10 with X check ok", input: "097522980X", valid: true},
		{name: "10 with hyphens ok", input: "0-441-17271-7", valid: true},
		{name: "bare 13 digits ok", input: "9780441172719", valid: true},
		{name: "13 with spaces ok", input: "978 0 441 17271 9", valid: true},
		{name: "11 digits rejected", input: "04411727171"},
		{name: "letters rejected", input: "not-an-isbn"},
		{name: "X in 13-digit rejected", input: "978044117271X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ISBN(tt.input)
			assert.Equal(t, tt.valid, r.Valid, "input %q", tt.input)
			if !tt.valid {
				assert.Equal(t, "Unrecognised ISBN format.", r.Message)
			}
		})
	}
}

func TestNotes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		warn    bool
		message string
	}{
		{name: "no duplicate no warning", input: "A slow start but worth it."},
		{name: "empty no warning", input: ""},
		{name: "adjacent duplicate warns", input: "read the the first chapter", warn: true, message: `Duplicate word: "the the"`},
		{name: "case-insensitive duplicate warns", input: "Very very good", warn: true, message: `Duplicate word: "Very very"`},
		{name: "non-adjacent repeat no warning", input: "the cat and the dog"},
		{name: "punctuation between no warning", input: "well, well"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Notes(tt.input)
			assert.Equal(t, tt.warn, w.Warn)
			assert.Equal(t, tt.message, w.Message)
		})
	}
}

func TestAll(t *testing.T) {
	valid := Fields{
		Title:     "Dune",
		Author:    "Frank Herbert",
		Pages:     "412",
		DateAdded: "2024-03-15",
		Tag:       "Sci-Fi",
		ISBN:      "",
		Notes:     "",
	}

	t.Run("all valid", func(t *testing.T) {
		r := All(valid)
		assert.True(t, r.AllValid)
	})

	t.Run("notes warning does not block", func(t *testing.T) {
		f := valid
		f.Notes = "good good stuff"
		r := All(f)
		assert.True(t, r.AllValid)
		assert.True(t, r.Notes.Warn)
	})

	t.Run("one blocking failure flips AllValid", func(t *testing.T) {
		f := valid
		f.Pages = "0"
		r := All(f)
		assert.False(t, r.AllValid)
		assert.Equal(t, "Must be at least 1.", r.Pages.Message)
		assert.True(t, r.Title.Valid, "other fields still reported individually")
	})
}
