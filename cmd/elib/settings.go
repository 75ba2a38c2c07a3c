// Settings commands show and patch the persisted settings.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kaylain7/E-library/pkg/types"
)

var (
	setPageCap int
	setUnit    string
	setTheme   string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change one or more settings",
	Long: `Set patches the settings; only the provided flags change.
Settings are persisted immediately.

Example:
  elib settings set --page-cap 2000
  elib settings set --unit chapters --theme dark`,
	RunE: runSettingsSet,
}

func init() {
	settingsSetCmd.Flags().IntVar(&setPageCap, "page-cap", 0, "reading-goal target in pages")
	settingsSetCmd.Flags().StringVar(&setUnit, "unit", "", "display unit: pages, chapters, or percent")
	settingsSetCmd.Flags().StringVar(&setTheme, "theme", "", "theme: light or dark")
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	settings := store.Settings()
	if flagJSON {
		return printJSON(settings)
	}
	fmt.Printf("page cap: %d\n", settings.PageCap)
	fmt.Printf("unit:     %s\n", settings.Unit)
	fmt.Printf("theme:    %s\n", settings.Theme)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	var patch types.SettingsPatch
	if flags.Changed("page-cap") {
		patch.PageCap = &setPageCap
	}
	if flags.Changed("unit") {
		patch.Unit = &setUnit
	}
	if flags.Changed("theme") {
		patch.Theme = &setTheme
	}
	if patch == (types.SettingsPatch{}) {
		return userError("nothing to set: provide at least one flag")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	settings, err := store.PatchSettings(patch)
	if err != nil {
		if errors.Is(err, types.ErrInvalidPageCap) || errors.Is(err, types.ErrInvalidUnit) || errors.Is(err, types.ErrInvalidTheme) {
			return userError("invalid settings: %v", err)
		}
		return fmt.Errorf("save settings: %w", err)
	}

	if flagJSON {
		return printJSON(settings)
	}
	fmt.Printf("page cap: %d\nunit:     %s\ntheme:    %s\n",
		settings.PageCap, settings.Unit, settings.Theme)
	return nil
}
