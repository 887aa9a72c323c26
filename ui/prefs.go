// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/danielhkuo/alize-cli/api"
	"github.com/danielhkuo/alize-cli/confirm"
	"github.com/danielhkuo/alize-cli/models"
)

// PrefsView shows and edits the matching preferences that drive search
// and scoring.
type PrefsView struct {
	out     io.Writer
	in      *bufio.Reader
	client  *api.Client
	palette *Palette
}

func NewPrefsView(out io.Writer, in io.Reader, client *api.Client, palette *Palette) *PrefsView {
	return &PrefsView{out: out, in: bufio.NewReader(in), client: client, palette: palette}
}

// Show renders the current preferences.
func (v *PrefsView) Show(ctx context.Context) error {
	p, err := v.client.Preferences(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(v.out, v.palette.Title("Matching preferences"))
	fmt.Fprintf(v.out, "role:           %s\n", deref(p.Role))
	fmt.Fprintf(v.out, "location:       %s\n", deref(p.Location))
	fmt.Fprintf(v.out, "contract:       %s\n", deref(p.ContractType))
	if p.SalaryMin != nil {
		fmt.Fprintf(v.out, "salary min:     %d\n", *p.SalaryMin)
	}
	fmt.Fprintf(v.out, "must have:      %s\n", v.palette.Good(deref(p.MustKeywords)))
	fmt.Fprintf(v.out, "avoid:          %s\n", v.palette.Bad(deref(p.AvoidKeywords)))
	fmt.Fprintf(v.out, "digest:         %s\n", deref(p.NotificationFrequency))
	return nil
}

// Edit applies the given update. Changing preferences rescopes future
// searches, so a populated feed gets a confirmation prompt first.
func (v *PrefsView) Edit(ctx context.Context, upd models.PreferenceUpdate) error {
	ctrl := confirm.New(confirm.Flow{
		Check: func(ctx context.Context) (bool, string, error) {
			count, err := v.client.MatchesCount(ctx)
			if err != nil {
				return false, "", err
			}
			if count.Count == 0 {
				return false, "", nil
			}
			return true, fmt.Sprintf("new searches will use the updated preferences (%d matches kept as-is)", count.Count), nil
		},
		Save: func(ctx context.Context) error {
			_, err := v.client.UpdatePreferences(ctx, upd)
			return err
		},
	})

	if err := ctrl.Submit(ctx); err != nil {
		return err
	}
	if ctrl.State() == confirm.StateConfirming {
		if !askYesNo(v.out, v.in, v.palette, ctrl.Summary()) {
			fmt.Fprintln(v.out, "Edit cancelled.")
			return ctrl.Cancel()
		}
		if err := ctrl.Confirm(ctx); err != nil {
			return err
		}
	}

	fmt.Fprintln(v.out, v.palette.Good("Preferences updated."))
	return nil
}
