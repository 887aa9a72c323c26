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

// ProfileView shows and edits the account, including deletion.
type ProfileView struct {
	out     io.Writer
	in      *bufio.Reader
	client  *api.Client
	palette *Palette
}

func NewProfileView(out io.Writer, in io.Reader, client *api.Client, palette *Palette) *ProfileView {
	return &ProfileView{out: out, in: bufio.NewReader(in), client: client, palette: palette}
}

// Show renders the account record.
func (v *ProfileView) Show(ctx context.Context) error {
	p, err := v.client.Profile(ctx)
	if err != nil {
		return err
	}

	verified := v.palette.Good("verified")
	if !p.EmailVerified {
		verified = v.palette.Warn("unverified")
	}
	fmt.Fprintf(v.out, "%s  %s\n", v.palette.Title(p.Email), verified)
	fmt.Fprintf(v.out, "member since %s\n", relTime(&p.CreatedAt))
	if !p.NotificationsEnabled {
		fmt.Fprintln(v.out, v.palette.Dim("notifications off"))
	}
	return nil
}

// Edit applies the non-nil fields of upd.
func (v *ProfileView) Edit(ctx context.Context, upd models.ProfileUpdate) error {
	if upd.NewPassword != nil && upd.CurrentPassword == nil {
		return fmt.Errorf("changing the password requires the current one")
	}
	p, err := v.client.UpdateProfile(ctx, upd)
	if err != nil {
		return err
	}
	fmt.Fprintf(v.out, "Profile updated (%s).\n", p.Email)
	return nil
}

// Delete permanently removes the account after confirmation, then clears
// the local session.
func (v *ProfileView) Delete(ctx context.Context) error {
	ctrl := confirm.New(confirm.Flow{
		Check: func(ctx context.Context) (bool, string, error) {
			// Always destructive; the check only enriches the prompt.
			count, err := v.client.MatchesCount(ctx)
			if err != nil {
				return true, "your account and all its data will be permanently deleted", nil
			}
			return true, fmt.Sprintf("your account, %d matches, and all campaigns will be permanently deleted", count.Count), nil
		},
		Save: func(ctx context.Context) error {
			return v.client.DeleteAccount(ctx)
		},
	})

	if err := ctrl.Submit(ctx); err != nil {
		return err
	}
	if ctrl.State() == confirm.StateConfirming {
		if !askYesNo(v.out, v.in, v.palette, ctrl.Summary()) {
			fmt.Fprintln(v.out, "Delete cancelled.")
			return ctrl.Cancel()
		}
		if err := ctrl.Confirm(ctx); err != nil {
			return err
		}
	}

	if err := v.client.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(v.out, "Account deleted. Goodbye.")
	return nil
}
