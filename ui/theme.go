// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"fmt"
	"io"

	"github.com/danielhkuo/alize-cli/models"
	"github.com/danielhkuo/alize-cli/store"
)

// ThemeView shows and sets the persisted color theme.
type ThemeView struct {
	out   io.Writer
	store *store.Store
}

func NewThemeView(out io.Writer, st *store.Store) *ThemeView {
	return &ThemeView{out: out, store: st}
}

// Show prints the current theme.
func (v *ThemeView) Show() {
	theme := v.store.Theme()
	if theme == "" {
		theme = models.ThemeLight + " (default)"
	}
	fmt.Fprintf(v.out, "Theme: %s\n", theme)
}

// Set persists a theme choice. Every future invocation picks it up from
// the state store.
func (v *ThemeView) Set(theme string) error {
	if theme != models.ThemeLight && theme != models.ThemeDark {
		return fmt.Errorf("unknown theme %q (light or dark)", theme)
	}
	if err := v.store.SetTheme(theme); err != nil {
		return err
	}
	fmt.Fprintf(v.out, "Theme set to %s.\n", theme)
	return nil
}
