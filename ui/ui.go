// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/alize-cli/models"
)

// ANSI SGR codes used by the palettes.
const (
	sgrReset  = "\x1b[0m"
	sgrBold   = "\x1b[1m"
	sgrDim    = "\x1b[2m"
	sgrRed    = "\x1b[31m"
	sgrGreen  = "\x1b[32m"
	sgrYellow = "\x1b[33m"
	sgrBlue   = "\x1b[34m"
	sgrCyan   = "\x1b[36m"
)

// Palette colors terminal output according to the stored theme. With
// color disabled every method returns its input unchanged.
type Palette struct {
	enabled bool
	dark    bool
}

// NewPalette decides whether to emit ANSI codes: only when out is a
// terminal and color was not switched off. theme is models.ThemeLight or
// models.ThemeDark; dark mode prefers brighter accents.
func NewPalette(out io.Writer, noColor bool, theme string) *Palette {
	enabled := false
	if f, ok := out.(*os.File); ok && !noColor {
		enabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Palette{enabled: enabled, dark: theme == models.ThemeDark}
}

func (p *Palette) wrap(code, s string) string {
	if !p.enabled {
		return s
	}
	return code + s + sgrReset
}

func (p *Palette) Title(s string) string { return p.wrap(sgrBold, s) }
func (p *Palette) Dim(s string) string   { return p.wrap(sgrDim, s) }
func (p *Palette) Good(s string) string  { return p.wrap(sgrGreen, s) }
func (p *Palette) Warn(s string) string  { return p.wrap(sgrYellow, s) }
func (p *Palette) Bad(s string) string   { return p.wrap(sgrRed, s) }

// Accent is the theme-dependent highlight used for scores and links.
func (p *Palette) Accent(s string) string {
	if p.dark {
		return p.wrap(sgrCyan, s)
	}
	return p.wrap(sgrBlue, s)
}

// Badge renders the NEW marker.
func (p *Palette) Badge(s string) string {
	return p.wrap(sgrBold+sgrGreen, "["+s+"]")
}

// relTime renders a timestamp as "3 days ago"; empty for nil.
func relTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return humanize.Time(*t)
}

// score renders a 0-10 match score as "8/10", or "-" when unscored.
func score(s *int) string {
	if s == nil {
		return "-"
	}
	return fmt.Sprintf("%d/10", *s)
}

// deref renders an optional string, "" for nil.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// rule draws a horizontal separator.
func rule(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("-", 72))
}

// pageFooter renders "page 2/5 (87 total)" under every list screen.
func pageFooter(w io.Writer, p *Palette, page, totalPages, total int) {
	fmt.Fprintln(w, p.Dim(fmt.Sprintf("page %d/%d (%d total)", page, totalPages, total)))
}

// askYesNo shows an optional warning line and reads a y/N answer.
// Anything but an explicit yes is a no.
func askYesNo(w io.Writer, in *bufio.Reader, p *Palette, summary string) bool {
	if summary != "" {
		fmt.Fprintln(w, p.Warn(summary))
	}
	fmt.Fprint(w, "Continue? [y/N] ")
	line, err := in.ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.TrimSpace(strings.ToLower(line))
	return line == "y" || line == "yes"
}

// promptLine prints a label and reads one trimmed line.
func promptLine(w io.Writer, in *bufio.Reader, label string) (string, error) {
	fmt.Fprint(w, label)
	line, err := in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
