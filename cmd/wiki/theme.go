package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csheth/wiki/internal/prefs"
	"github.com/csheth/wiki/internal/viewstate"
)

func newThemeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Print or set the persisted colour theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(viewstate.ThemeLight), string(viewstate.ThemeDark), "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			store := a.prefsStore(cmd)
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), storedTheme(store))
				return nil
			}

			var theme viewstate.Theme
			if args[0] == "toggle" {
				theme = storedTheme(store).Toggle()
			} else {
				var ok bool
				if theme, ok = viewstate.ParseTheme(args[0]); !ok {
					return fmt.Errorf("unknown theme %q: want light or dark", args[0])
				}
			}
			if err := store.Set(prefs.KeyTheme, string(theme)); err != nil {
				return fmt.Errorf("saving theme: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme)
			return nil
		},
	}
}

// storedTheme mirrors what the TUI applies on start: anything unreadable or
// unrecognised is the default theme.
func storedTheme(store prefs.Store) viewstate.Theme {
	value, ok, err := store.Get(prefs.KeyTheme)
	if err != nil || !ok {
		return viewstate.DefaultTheme
	}
	if theme, ok := viewstate.ParseTheme(value); ok {
		return theme
	}
	return viewstate.DefaultTheme
}
