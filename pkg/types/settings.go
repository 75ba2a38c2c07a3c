package types

// Display units for page counts. The unit is a presentation transform
// only; pages are always stored as pages.
const (
	UnitPages    = "pages"
	UnitChapters = "chapters"
	UnitPercent  = "percent"
)

// UI themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// validUnits is the set of recognized unit values.
var validUnits = map[string]bool{
	UnitPages:    true,
	UnitChapters: true,
	UnitPercent:  true,
}

// validThemes is the set of recognized theme values.
var validThemes = map[string]bool{
	ThemeLight: true,
	ThemeDark:  true,
}

// Settings is the process-wide configuration: reading-goal target,
// display unit, and presentation theme. Loaded once at startup and
// persisted after every patch.
type Settings struct {
	PageCap int    `json:"pageCap"`
	Unit    string `json:"unit"`
	Theme   string `json:"theme"`
}

// DefaultSettings returns the settings used when nothing has been
// persisted yet, and the base a partially-saved settings object is
// merged over on load.
func DefaultSettings() Settings {
	return Settings{PageCap: 1000, Unit: UnitPages, Theme: ThemeLight}
}

// SettingsPatch holds the settings fields a caller may change. Nil
// fields are left untouched.
type SettingsPatch struct {
	PageCap *int
	Unit    *string
	Theme   *string
}

// Validate checks the non-nil patch fields against their allowed
// ranges. It returns a sentinel error from this package on failure.
func (p SettingsPatch) Validate() error {
	if p.PageCap != nil && *p.PageCap < 1 {
		return ErrInvalidPageCap
	}
	if p.Unit != nil && !validUnits[*p.Unit] {
		return ErrInvalidUnit
	}
	if p.Theme != nil && !validThemes[*p.Theme] {
		return ErrInvalidTheme
	}
	return nil
}

// Apply merges the non-nil patch fields onto s.
func (p SettingsPatch) Apply(s *Settings) {
	if p.PageCap != nil {
		s.PageCap = *p.PageCap
	}
	if p.Unit != nil {
		s.Unit = *p.Unit
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
}
