// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/danielhkuo/alize-cli/api"
	"github.com/danielhkuo/alize-cli/listview"
	"github.com/danielhkuo/alize-cli/models"
)

// DashboardView renders the main matches screen: stat cards on top, one
// card per job match, and a pagination footer.
type DashboardView struct {
	out     io.Writer
	client  *api.Client
	palette *Palette
	list    *listview.Controller[models.Job, api.MatchFilters]
}

// NewDashboardView creates the view and its list controller.
func NewDashboardView(out io.Writer, client *api.Client, palette *Palette, pageSize int) *DashboardView {
	v := &DashboardView{out: out, client: client, palette: palette}
	v.list = listview.New(pageSize,
		func(j models.Job) int { return j.ID },
		func(ctx context.Context, page, size int, f api.MatchFilters) (listview.Page[models.Job], error) {
			resp, err := client.Matches(ctx, page, size, f)
			if err != nil {
				return listview.Page[models.Job]{}, err
			}
			return listview.Page[models.Job]{Items: resp.Items, Total: resp.Total}, nil
		})
	return v
}

// List exposes the controller for row mutations after match actions.
func (v *DashboardView) List() *listview.Controller[models.Job, api.MatchFilters] {
	return v.list
}

// Show fetches stats and the requested page, then renders the screen.
func (v *DashboardView) Show(ctx context.Context, page int, filters api.MatchFilters) error {
	// Stats are an independent fetch; a failure degrades to a list-only
	// screen instead of blocking it.
	stats, statsErr := v.client.DashboardStats(ctx)
	if statsErr != nil {
		slog.Warn("dashboard stats unavailable", "error", statsErr)
	}

	// Filters and page are known up front, so one fetch covers both.
	v.list.Reset(filters, page)
	if err := v.list.Load(ctx); err != nil {
		return err
	}

	if statsErr == nil {
		v.renderStats(stats)
	}
	v.Render()
	return nil
}

// Render draws the current controller state without refetching. Used
// after single-row mutations (visit, save, delete).
func (v *DashboardView) Render() {
	items := v.list.Items()
	if len(items) == 0 {
		fmt.Fprintln(v.out, v.palette.Dim("No matches on this page."))
	}
	for _, job := range items {
		v.renderJob(job)
	}
	pageFooter(v.out, v.palette, v.list.Page(), v.list.TotalPages(), v.list.Total())
}

func (v *DashboardView) renderStats(s models.DashboardStats) {
	fmt.Fprintf(v.out, "%s  total %d | new %s | viewed %d | saved %d\n",
		v.palette.Title("Matches"),
		s.TotalJobs,
		v.palette.Good(fmt.Sprintf("%d", s.NewJobs)),
		s.ViewedJobs,
		s.SavedJobs,
	)
	if s.LastSearchAt != nil {
		fmt.Fprintf(v.out, "%s\n", v.palette.Dim("last search "+relTime(s.LastSearchAt)))
	}
	rule(v.out)
}

func (v *DashboardView) renderJob(j models.Job) {
	badge := ""
	if j.IsNew != nil && *j.IsNew {
		badge = v.palette.Badge("NEW") + " "
	}
	saved := ""
	if j.IsSaved != nil && *j.IsSaved {
		saved = v.palette.Warn(" *saved*")
	}

	fmt.Fprintf(v.out, "#%d %s%s - %s%s\n", j.ID, badge, v.palette.Title(j.Title), j.Company, saved)
	fmt.Fprintf(v.out, "    %s  %s  %s",
		v.palette.Accent("score "+score(j.Score)),
		j.Source,
		deref(j.Location),
	)
	if j.CreatedAt != nil {
		fmt.Fprintf(v.out, "  %s", v.palette.Dim(relTime(j.CreatedAt)))
	}
	fmt.Fprintln(v.out)
	if len(j.MatchReasons) > 0 {
		fmt.Fprintf(v.out, "    %s\n", v.palette.Dim(joinReasons(j.MatchReasons)))
	}
	fmt.Fprintf(v.out, "    %s\n", v.palette.Dim(j.URL))
}

func joinReasons(reasons []string) string {
	out := ""
	for i, r := range reasons {
		if i > 0 {
			out += ", "
		}
		out += r
	}
	return out
}
