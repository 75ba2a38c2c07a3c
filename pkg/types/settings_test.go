package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsPatchValidate(t *testing.T) {
	cap := 2000
	badCap := 0
	unit := UnitChapters
	badUnit := "furlongs"
	theme := ThemeDark
	badTheme := "sepia"

	tests := []struct {
		name    string
		patch   SettingsPatch
		wantErr error
	}{
		{name: "empty patch valid", patch: SettingsPatch{}},
		{name: "full valid patch", patch: SettingsPatch{PageCap: &cap, Unit: &unit, Theme: &theme}},
		{name: "zero page cap rejected", patch: SettingsPatch{PageCap: &badCap}, wantErr: ErrInvalidPageCap},
		{name: "unknown unit rejected", patch: SettingsPatch{Unit: &badUnit}, wantErr: ErrInvalidUnit},
		{name: "unknown theme rejected", patch: SettingsPatch{Theme: &badTheme}, wantErr: ErrInvalidTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSettingsPatchApply(t *testing.T) {
	cap := 500
	s := DefaultSettings()

	SettingsPatch{PageCap: &cap}.Apply(&s)

	assert.Equal(t, 500, s.PageCap)
	assert.Equal(t, UnitPages, s.Unit, "unpatched fields untouched")
	assert.Equal(t, ThemeLight, s.Theme)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, Settings{PageCap: 1000, Unit: "pages", Theme: "light"}, s)
}
