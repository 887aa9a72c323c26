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

// MatchActions drives the per-match mutations from the dashboard: visit,
// save, unsave, delete, status. Each action patches the dashboard's
// controller after the server confirms, so the screen stays in sync
// without a reload.
type MatchActions struct {
	out       io.Writer
	in        *bufio.Reader
	client    *api.Client
	palette   *Palette
	dashboard *DashboardView
}

// NewMatchActions wires the action set to a dashboard view.
func NewMatchActions(out io.Writer, in io.Reader, client *api.Client, palette *Palette, dashboard *DashboardView) *MatchActions {
	return &MatchActions{
		out:       out,
		in:        bufio.NewReader(in),
		client:    client,
		palette:   palette,
		dashboard: dashboard,
	}
}

// Visit marks a match as viewed. Safe to repeat.
func (a *MatchActions) Visit(ctx context.Context, id int) error {
	if err := a.client.VisitMatch(ctx, id); err != nil {
		return err
	}
	a.patch(id, func(j *models.Job) {
		f := false
		j.IsNew = &f
		j.Status = string(models.MatchViewed)
	})
	fmt.Fprintf(a.out, "Match #%d marked visited.\n", id)
	return nil
}

// Save bookmarks a match.
func (a *MatchActions) Save(ctx context.Context, id int) error {
	if err := a.client.SaveMatch(ctx, id); err != nil {
		return err
	}
	a.patch(id, func(j *models.Job) {
		tr := true
		j.IsSaved = &tr
		j.Status = string(models.MatchSaved)
	})
	fmt.Fprintf(a.out, "Match #%d saved.\n", id)
	return nil
}

// Unsave removes a bookmark.
func (a *MatchActions) Unsave(ctx context.Context, id int) error {
	if err := a.client.UnsaveMatch(ctx, id); err != nil {
		return err
	}
	a.patch(id, func(j *models.Job) {
		f := false
		j.IsSaved = &f
		j.Status = string(models.MatchViewed)
	})
	fmt.Fprintf(a.out, "Match #%d unsaved.\n", id)
	return nil
}

// SetStatus sets an explicit dashboard status after validating it.
func (a *MatchActions) SetStatus(ctx context.Context, id int, raw string) error {
	status, err := models.ParseMatchStatus(raw)
	if err != nil {
		return err
	}
	if err := a.client.SetMatchStatus(ctx, id, status); err != nil {
		return err
	}
	a.patch(id, func(j *models.Job) { j.Status = string(status) })
	fmt.Fprintf(a.out, "Match #%d is now %s.\n", id, status)
	return nil
}

// Delete removes a match after a confirmation prompt.
func (a *MatchActions) Delete(ctx context.Context, id int) error {
	ctrl := confirm.New(confirm.Flow{
		Check: func(ctx context.Context) (bool, string, error) {
			return true, fmt.Sprintf("match #%d will be removed from your feed", id), nil
		},
		Save: func(ctx context.Context) error {
			return a.client.DeleteMatch(ctx, id)
		},
	})

	if err := ctrl.Submit(ctx); err != nil {
		return err
	}
	if ctrl.State() == confirm.StateConfirming {
		if !askYesNo(a.out, a.in, a.palette, ctrl.Summary()) {
			return ctrl.Cancel()
		}
		if err := ctrl.Confirm(ctx); err != nil {
			return err
		}
	}

	a.dashboard.List().Remove(id)
	fmt.Fprintf(a.out, "Match #%d deleted.\n", id)
	return nil
}

// patch applies a single-row update to the dashboard controller.
func (a *MatchActions) patch(id int, mutate func(*models.Job)) {
	for _, j := range a.dashboard.List().Items() {
		if j.ID == id {
			mutate(&j)
			a.dashboard.List().ApplyUpdate(id, j)
			return
		}
	}
}
