// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/danielhkuo/alize-cli/api"
)

// SearchView triggers on-demand search runs and shows their history.
type SearchView struct {
	out     io.Writer
	client  *api.Client
	palette *Palette
}

func NewSearchView(out io.Writer, client *api.Client, palette *Palette) *SearchView {
	return &SearchView{out: out, client: client, palette: palette}
}

// Run starts a search and prints the per-source summary.
func (v *SearchView) Run(ctx context.Context) error {
	fmt.Fprintln(v.out, "Searching... this can take a minute.")
	result, err := v.client.SearchJobs(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(v.out, "%s new matches\n", v.palette.Good(fmt.Sprintf("%d", result.Inserted)))
	for source, n := range result.Sources {
		fmt.Fprintf(v.out, "  %-14s %d\n", source, n)
	}
	if len(result.TriedQueries) > 0 {
		fmt.Fprintln(v.out, v.palette.Dim("queries: "+joinReasons(result.TriedQueries)))
	}
	return nil
}

// Refresh asks the backend to pull fresh listings without a full run.
func (v *SearchView) Refresh(ctx context.Context) error {
	if err := v.client.RefreshJobs(ctx); err != nil {
		return err
	}
	fmt.Fprintln(v.out, "Refresh started.")
	return nil
}

// Runs lists past search runs, newest first.
func (v *SearchView) Runs(ctx context.Context) error {
	runs, err := v.client.SearchRuns(ctx)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(v.out, "No search runs yet.")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(v.out, "#%d  %s  %s inserted\n",
			r.ID, relTime(&r.CreatedAt), v.palette.Good(fmt.Sprintf("%d", r.Inserted)))
	}
	return nil
}
