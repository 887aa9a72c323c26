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
	"github.com/danielhkuo/alize-cli/listview"
	"github.com/danielhkuo/alize-cli/models"
)

// CampaignsView drives the campaign screens: the campaign list, one
// campaign's pipeline board, templates, and the campaign dashboard.
type CampaignsView struct {
	out     io.Writer
	in      *bufio.Reader
	client  *api.Client
	palette *Palette

	// campaigns holds the last-listed campaigns so Delete can patch the
	// screen without a reload.
	campaigns *listview.Controller[models.Campaign, struct{}]
	pageSize  int
}

func NewCampaignsView(out io.Writer, in io.Reader, client *api.Client, palette *Palette, pageSize int) *CampaignsView {
	v := &CampaignsView{
		out:      out,
		in:       bufio.NewReader(in),
		client:   client,
		palette:  palette,
		pageSize: pageSize,
	}
	// The campaign list is small, so the backend returns it whole; the
	// controller still gives us Remove/ApplyUpdate for row mutations.
	v.campaigns = listview.New(pageSize,
		func(c models.Campaign) int { return c.ID },
		func(ctx context.Context, page, size int, _ struct{}) (listview.Page[models.Campaign], error) {
			resp, err := client.Campaigns(ctx, false)
			if err != nil {
				return listview.Page[models.Campaign]{}, err
			}
			return listview.Page[models.Campaign]{Items: resp.Campaigns, Total: resp.Total}, nil
		})
	return v
}

// Campaigns exposes the list controller.
func (v *CampaignsView) Campaigns() *listview.Controller[models.Campaign, struct{}] {
	return v.campaigns
}

// List fetches and renders every campaign.
func (v *CampaignsView) List(ctx context.Context) error {
	if err := v.campaigns.Load(ctx); err != nil {
		return err
	}
	v.renderList()
	return nil
}

func (v *CampaignsView) renderList() {
	items := v.campaigns.Items()
	if len(items) == 0 {
		fmt.Fprintln(v.out, "No campaigns yet. Run 'alize campaigns create <name>'.")
		return
	}
	for _, c := range items {
		v.renderCampaignRow(c)
	}
	fmt.Fprintln(v.out, v.palette.Dim(fmt.Sprintf("%d campaigns", len(items))))
}

func (v *CampaignsView) renderCampaignRow(c models.Campaign) {
	def := ""
	if c.IsDefault {
		def = v.palette.Badge("DEFAULT") + " "
	}
	active := v.palette.Good("active")
	if !c.IsActive {
		active = v.palette.Dim("paused")
	}
	fmt.Fprintf(v.out, "#%d %s%s  %s\n", c.ID, def, v.palette.Title(c.Name), active)
	fmt.Fprintf(v.out, "    found %d | applied %d | interviews %d\n",
		c.JobsFound, c.JobsApplied, c.JobsInterviewed)
	if c.TargetRole != nil {
		fmt.Fprintf(v.out, "    %s\n", v.palette.Dim(deref(c.TargetRole)+" "+deref(c.TargetLocation)))
	}
}

// Create stores a new campaign and prints the result.
func (v *CampaignsView) Create(ctx context.Context, in models.CampaignCreate) error {
	c, err := v.client.CreateCampaign(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(v.out, "Campaign #%d %q created.\n", c.ID, c.Name)
	return nil
}

// Show renders one campaign with its stats.
func (v *CampaignsView) Show(ctx context.Context, id int) error {
	c, err := v.client.Campaign(ctx, id)
	if err != nil {
		return err
	}
	v.renderCampaignRow(c)

	stats, err := v.client.CampaignStats(ctx, id)
	if err != nil {
		return err
	}
	rule(v.out)
	for _, status := range []models.PipelineStatus{
		models.PipelineNew, models.PipelineSaved, models.PipelineApplied,
		models.PipelineInterview, models.PipelineHired, models.PipelineRejected,
	} {
		fmt.Fprintf(v.out, "%-10s %d\n", status, stats.StatusCounts[string(status)])
	}
	if stats.AverageScore != nil {
		fmt.Fprintf(v.out, "avg score  %s\n", v.palette.Accent(fmt.Sprintf("%.1f", *stats.AverageScore)))
	}
	return nil
}

// Edit applies an update and prints the stored result.
func (v *CampaignsView) Edit(ctx context.Context, id int, upd models.CampaignUpdate) error {
	c, err := v.client.UpdateCampaign(ctx, id, upd)
	if err != nil {
		return err
	}
	v.campaigns.ApplyUpdate(id, c)
	fmt.Fprintf(v.out, "Campaign #%d updated.\n", c.ID)
	return nil
}

// Delete removes a campaign after confirmation and patches the local
// list so the row disappears without a reload.
func (v *CampaignsView) Delete(ctx context.Context, id int) error {
	ctrl := confirm.New(confirm.Flow{
		Check: func(ctx context.Context) (bool, string, error) {
			stats, err := v.client.CampaignStats(ctx, id)
			if err != nil {
				return false, "", err
			}
			return true, fmt.Sprintf("campaign #%d and its %d tracked jobs will be deleted", id, stats.JobsFound), nil
		},
		Save: func(ctx context.Context) error {
			return v.client.DeleteCampaign(ctx, id)
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

	v.campaigns.Remove(id)
	fmt.Fprintf(v.out, "Campaign #%d deleted.\n", id)
	return nil
}

// Jobs fetches and renders one page of a campaign's pipeline board.
func (v *CampaignsView) Jobs(ctx context.Context, campaignID, page int, filters api.CampaignJobFilters) error {
	list := v.jobsController(campaignID)
	list.Reset(filters, page)
	if err := list.Load(ctx); err != nil {
		return err
	}

	items := list.Items()
	if len(items) == 0 {
		fmt.Fprintln(v.out, v.palette.Dim("No jobs on this page."))
	}
	for _, cj := range items {
		v.renderJobRow(cj)
	}
	pageFooter(v.out, v.palette, list.Page(), list.TotalPages(), list.Total())
	return nil
}

func (v *CampaignsView) jobsController(campaignID int) *listview.Controller[models.CampaignJob, api.CampaignJobFilters] {
	return listview.New(v.pageSize,
		func(cj models.CampaignJob) int { return cj.ID },
		func(ctx context.Context, page, size int, f api.CampaignJobFilters) (listview.Page[models.CampaignJob], error) {
			resp, err := v.client.CampaignJobs(ctx, campaignID, page, size, f)
			if err != nil {
				return listview.Page[models.CampaignJob]{}, err
			}
			return listview.Page[models.CampaignJob]{Items: resp.Items, Total: resp.Total}, nil
		})
}

func (v *CampaignsView) renderJobRow(cj models.CampaignJob) {
	title, company := fmt.Sprintf("job %d", cj.JobID), ""
	if cj.Job != nil {
		title, company = cj.Job.Title, cj.Job.Company
	}
	fmt.Fprintf(v.out, "#%d %s - %s  %s  %s\n",
		cj.ID, v.palette.Title(title), company,
		v.palette.Accent(cj.Status),
		v.palette.Accent("score "+score(cj.Score)),
	)
	if cj.Notes != nil && *cj.Notes != "" {
		fmt.Fprintf(v.out, "    %s\n", v.palette.Dim(*cj.Notes))
	}
	if cj.InterviewDate != nil {
		fmt.Fprintf(v.out, "    interview %s\n", relTime(cj.InterviewDate))
	}
}

// AddJob attaches a match to a campaign's pipeline.
func (v *CampaignsView) AddJob(ctx context.Context, campaignID, jobID int) error {
	cj, err := v.client.AddCampaignJob(ctx, campaignID, models.CampaignJobCreate{JobID: jobID})
	if err != nil {
		return err
	}
	fmt.Fprintf(v.out, "Job #%d added to campaign #%d as %s.\n", jobID, campaignID, cj.Status)
	return nil
}

// MoveJob moves a tracked job through the pipeline. The backend applies
// any status, so the transition graph is advisory: a move off the usual
// path (reopening a rejection, jumping straight to hired) is confirmed
// first instead of refused, letting the user correct mistakes.
func (v *CampaignsView) MoveJob(ctx context.Context, campaignID, jobID int, current, target string) error {
	from, err := models.ParsePipelineStatus(current)
	if err != nil {
		return err
	}
	to, err := models.ParsePipelineStatus(target)
	if err != nil {
		return err
	}

	var moved models.CampaignJob
	ctrl := confirm.New(confirm.Flow{
		Check: func(ctx context.Context) (bool, string, error) {
			if models.PipelineTransitionAllowed(from, to) {
				return false, "", nil
			}
			summary := fmt.Sprintf("%s is terminal; moving to %s reopens the job", from, to)
			if next := models.NextPipelineStatuses(from); len(next) > 0 {
				summary = fmt.Sprintf("%s to %s skips the usual path (expected next: %v)", from, to, next)
			}
			return true, summary, nil
		},
		Save: func(ctx context.Context) error {
			raw := string(to)
			cj, err := v.client.UpdateCampaignJob(ctx, campaignID, jobID, models.CampaignJobUpdate{Status: &raw})
			if err != nil {
				return err
			}
			moved = cj
			return nil
		},
	})

	if err := ctrl.Submit(ctx); err != nil {
		return err
	}
	if ctrl.State() == confirm.StateConfirming {
		if !askYesNo(v.out, v.in, v.palette, ctrl.Summary()) {
			fmt.Fprintln(v.out, "Move cancelled.")
			return ctrl.Cancel()
		}
		if err := ctrl.Confirm(ctx); err != nil {
			return err
		}
	}

	fmt.Fprintf(v.out, "Job #%d is now %s.\n", jobID, moved.Status)
	return nil
}

// NoteJob attaches a free-text note to a tracked job.
func (v *CampaignsView) NoteJob(ctx context.Context, campaignID, jobID int, note string) error {
	if _, err := v.client.UpdateCampaignJob(ctx, campaignID, jobID, models.CampaignJobUpdate{Notes: &note}); err != nil {
		return err
	}
	fmt.Fprintf(v.out, "Note saved on job #%d.\n", jobID)
	return nil
}

// RemoveJob detaches a job from a campaign.
func (v *CampaignsView) RemoveJob(ctx context.Context, campaignID, jobID int) error {
	if err := v.client.RemoveCampaignJob(ctx, campaignID, jobID); err != nil {
		return err
	}
	fmt.Fprintf(v.out, "Job #%d removed from campaign #%d.\n", jobID, campaignID)
	return nil
}

// Templates lists a campaign's outreach templates.
func (v *CampaignsView) Templates(ctx context.Context, campaignID int) error {
	templates, err := v.client.CampaignTemplates(ctx, campaignID)
	if err != nil {
		return err
	}
	if len(templates) == 0 {
		fmt.Fprintln(v.out, "No templates.")
		return nil
	}
	for _, t := range templates {
		fmt.Fprintf(v.out, "#%d %s\n", t.ID, v.palette.Title(t.Name))
		fmt.Fprintf(v.out, "    %s\n", t.Subject)
	}
	return nil
}

// CreateTemplate stores a new outreach template.
func (v *CampaignsView) CreateTemplate(ctx context.Context, in models.EmailTemplateCreate) error {
	t, err := v.client.CreateTemplate(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(v.out, "Template #%d %q created.\n", t.ID, t.Name)
	return nil
}

// EditTemplate replaces a template's name, subject, and body.
func (v *CampaignsView) EditTemplate(ctx context.Context, id int, in models.EmailTemplateCreate) error {
	t, err := v.client.UpdateTemplate(ctx, id, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(v.out, "Template #%d updated.\n", t.ID)
	return nil
}

// DeleteTemplate removes a template after confirmation.
func (v *CampaignsView) DeleteTemplate(ctx context.Context, id int) error {
	if !askYesNo(v.out, v.in, v.palette, fmt.Sprintf("template #%d will be deleted", id)) {
		fmt.Fprintln(v.out, "Delete cancelled.")
		return nil
	}
	if err := v.client.DeleteTemplate(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(v.out, "Template #%d deleted.\n", id)
	return nil
}

// SetDashboardConfig stores the widget layout for the campaign dashboard.
func (v *CampaignsView) SetDashboardConfig(ctx context.Context, upd models.DashboardConfigUpdate) error {
	cfg, err := v.client.UpdateDashboardConfig(ctx, upd)
	if err != nil {
		return err
	}
	fmt.Fprintln(v.out, "Dashboard config saved.")
	if cfg.VisibleWidgets != nil {
		fmt.Fprintln(v.out, v.palette.Dim("widgets: "+*cfg.VisibleWidgets))
	}
	return nil
}

// Dashboard renders the cross-campaign stats plus widget config.
func (v *CampaignsView) Dashboard(ctx context.Context) error {
	stats, err := v.client.CampaignDashboardStats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(v.out, v.palette.Title("Campaign dashboard"))
	fmt.Fprintf(v.out, "found %d | applied %d | interviews %d\n",
		stats.JobsFound, stats.JobsApplied, stats.JobsInterviewed)
	for status, n := range stats.StatusCounts {
		fmt.Fprintf(v.out, "%-10s %d\n", status, n)
	}

	cfg, err := v.client.DashboardConfig(ctx)
	if err != nil {
		return err
	}
	if cfg.VisibleWidgets != nil {
		fmt.Fprintln(v.out, v.palette.Dim("widgets: "+*cfg.VisibleWidgets))
	}
	return nil
}
