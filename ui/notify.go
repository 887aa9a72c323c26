// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/danielhkuo/alize-cli/api"
)

// NotifyView shows the notification settings and fires test emails.
type NotifyView struct {
	out     io.Writer
	client  *api.Client
	palette *Palette
}

func NewNotifyView(out io.Writer, client *api.Client, palette *Palette) *NotifyView {
	return &NotifyView{out: out, client: client, palette: palette}
}

// Config renders the channel configuration.
func (v *NotifyView) Config(ctx context.Context) error {
	cfg, err := v.client.NotifyConfig(ctx)
	if err != nil {
		return err
	}

	state := v.palette.Good("enabled")
	if !cfg.Enabled {
		state = v.palette.Dim("disabled")
	}
	fmt.Fprintf(v.out, "Notifications: %s (%s)\n", state, cfg.Frequency)
	if !cfg.SMTPReady {
		fmt.Fprintln(v.out, v.palette.Warn("SMTP is not configured on the server; emails will not send."))
	}
	return nil
}

// Test sends a test notification.
func (v *NotifyView) Test(ctx context.Context) error {
	if err := v.client.TestNotify(ctx); err != nil {
		return err
	}
	fmt.Fprintln(v.out, "Test notification sent. Check your inbox.")
	return nil
}
