// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/danielhkuo/alize-cli/models"
)

func TestPaletteDisabledOnBuffer(t *testing.T) {
	var buf bytes.Buffer
	p := NewPalette(&buf, false, models.ThemeDark)

	if got := p.Accent("x"); got != "x" {
		t.Errorf("Expected plain text on non-terminal writer, got %q", got)
	}
	if got := p.Badge("NEW"); got != "[NEW]" {
		t.Errorf("Expected plain badge, got %q", got)
	}
}

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"", false}, // EOF is a no
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		p := NewPalette(&buf, true, models.ThemeLight)
		got := askYesNo(&buf, bufio.NewReader(strings.NewReader(tt.input)), p, "warning")
		if got != tt.want {
			t.Errorf("askYesNo(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestThemeViewRejectsUnknownTheme(t *testing.T) {
	var buf bytes.Buffer
	view := NewThemeView(&buf, nil)
	if err := view.Set("sepia"); err == nil {
		t.Error("Expected unknown theme to error")
	}
}
