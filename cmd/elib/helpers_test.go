package main

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kaylain7/E-library/pkg/types"
)

func TestUserErrUnwrap(t *testing.T) {
	base := errors.New("bad flag")
	err := userErr{err: base}

	assert.Equal(t, "bad flag", err.Error())
	assert.ErrorIs(t, err, base)

	var ue userErr
	assert.ErrorAs(t, userError("pages must be %d or more", 1), &ue)
	assert.Equal(t, "pages must be 1 or more", ue.Error())
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    string
	}{
		{
			name:    "single match wrapped",
			text:    "Dune by Frank Herbert",
			pattern: "(?i)dune",
			want:    ansiMarkOn + "Dune" + ansiMarkOff + " by Frank Herbert",
		},
		{
			name:    "multiple matches",
			text:    "aha aha",
			pattern: "aha",
			want:    ansiMarkOn + "aha" + ansiMarkOff + " " + ansiMarkOn + "aha" + ansiMarkOff,
		},
		{
			name:    "no match unchanged",
			text:    "Emma",
			pattern: "zzz",
			want:    "Emma",
		},
		{
			name:    "empty matches skipped",
			text:    "abc",
			pattern: "x*",
			want:    "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile(tt.pattern)
			assert.Equal(t, tt.want, highlight(tt.text, re))
		})
	}
}

func TestHighlightNilPattern(t *testing.T) {
	assert.Equal(t, "Emma", highlight("Emma", nil))
}

func TestDisplayPages(t *testing.T) {
	tests := []struct {
		name     string
		pages    float64
		settings types.Settings
		want     string
	}{
		{name: "pages unit", pages: 312.5, settings: types.Settings{Unit: types.UnitPages, PageCap: 1000}, want: "312.5"},
		{name: "chapters rounds to nearest", pages: 412, settings: types.Settings{Unit: types.UnitChapters, PageCap: 1000}, want: "21"},
		{name: "percent of cap", pages: 250, settings: types.Settings{Unit: types.UnitPercent, PageCap: 1000}, want: "25%"},
		{name: "percent with zero cap degrades to pages", pages: 250, settings: types.Settings{Unit: types.UnitPercent}, want: "250"},
		{name: "unknown unit degrades to pages", pages: 100, settings: types.Settings{Unit: "furlongs", PageCap: 1000}, want: "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayPages(tt.pages, tt.settings))
		})
	}
}
