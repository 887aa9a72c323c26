// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/danielhkuo/alize-cli/models"
)

// Campaigns lists the user's campaigns, optionally only the active ones.
func (c *Client) Campaigns(ctx context.Context, activeOnly bool) (models.CampaignList, error) {
	var q url.Values
	if activeOnly {
		q = url.Values{"active_only": {"true"}}
	}
	var out models.CampaignList
	err := c.do(ctx, http.MethodGet, "/campaigns", q, nil, &out)
	return out, err
}

// CreateCampaign creates a campaign and returns the stored record.
func (c *Client) CreateCampaign(ctx context.Context, in models.CampaignCreate) (models.Campaign, error) {
	var out models.Campaign
	err := c.do(ctx, http.MethodPost, "/campaigns", nil, in, &out)
	return out, err
}

// Campaign returns one campaign by id.
func (c *Client) Campaign(ctx context.Context, id int) (models.Campaign, error) {
	var out models.Campaign
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/campaigns/%d", id), nil, nil, &out)
	return out, err
}

// UpdateCampaign replaces a campaign's settings.
func (c *Client) UpdateCampaign(ctx context.Context, id int, in models.CampaignUpdate) (models.Campaign, error) {
	var out models.Campaign
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/campaigns/%d", id), nil, in, &out)
	return out, err
}

// DeleteCampaign removes a campaign and its tracked jobs.
func (c *Client) DeleteCampaign(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/campaigns/%d", id), nil, nil, nil)
}

// CampaignJobFilters is the filter state for a campaign's pipeline board.
type CampaignJobFilters struct {
	Status   string // pipeline status, "" = all
	MinScore int
	Search   string
}

func (f CampaignJobFilters) query(page, pageSize int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.MinScore > 0 {
		q.Set("min_score", strconv.Itoa(f.MinScore))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return q
}

// CampaignJobs returns one page of jobs tracked under a campaign.
func (c *Client) CampaignJobs(ctx context.Context, campaignID, page, pageSize int, filters CampaignJobFilters) (models.CampaignJobsPage, error) {
	var out models.CampaignJobsPage
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/campaigns/%d/jobs", campaignID), filters.query(page, pageSize), nil, &out)
	return out, err
}

// AddCampaignJob attaches a job to a campaign's pipeline.
func (c *Client) AddCampaignJob(ctx context.Context, campaignID int, in models.CampaignJobCreate) (models.CampaignJob, error) {
	var out models.CampaignJob
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/campaigns/%d/jobs", campaignID), nil, in, &out)
	return out, err
}

// UpdateCampaignJob updates a tracked job, notably its pipeline status.
// The backend applies whatever status is sent; moves off the usual
// pipeline path are confirmed in the view before the request goes out.
func (c *Client) UpdateCampaignJob(ctx context.Context, campaignID, jobID int, in models.CampaignJobUpdate) (models.CampaignJob, error) {
	var out models.CampaignJob
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/campaigns/%d/jobs/%d", campaignID, jobID), nil, in, &out)
	return out, err
}

// RemoveCampaignJob detaches a job from a campaign.
func (c *Client) RemoveCampaignJob(ctx context.Context, campaignID, jobID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/campaigns/%d/jobs/%d", campaignID, jobID), nil, nil, nil)
}

// CampaignStats returns per-campaign pipeline counters.
func (c *Client) CampaignStats(ctx context.Context, campaignID int) (models.CampaignStats, error) {
	var out models.CampaignStats
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/campaigns/%d/stats", campaignID), nil, nil, &out)
	return out, err
}

// CampaignTemplates lists the outreach templates usable by a campaign.
func (c *Client) CampaignTemplates(ctx context.Context, campaignID int) ([]models.EmailTemplate, error) {
	var out []models.EmailTemplate
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/campaigns/%d/templates", campaignID), nil, nil, &out)
	return out, err
}

// CreateTemplate creates an outreach template.
func (c *Client) CreateTemplate(ctx context.Context, in models.EmailTemplateCreate) (models.EmailTemplate, error) {
	var out models.EmailTemplate
	err := c.do(ctx, http.MethodPost, "/campaigns/templates", nil, in, &out)
	return out, err
}

// UpdateTemplate replaces a template's subject and body.
func (c *Client) UpdateTemplate(ctx context.Context, id int, in models.EmailTemplateCreate) (models.EmailTemplate, error) {
	var out models.EmailTemplate
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/campaigns/templates/%d", id), nil, in, &out)
	return out, err
}

// DeleteTemplate removes a template.
func (c *Client) DeleteTemplate(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/campaigns/templates/%d", id), nil, nil, nil)
}

// DashboardConfig returns which campaign widgets the user has enabled.
func (c *Client) DashboardConfig(ctx context.Context) (models.DashboardConfig, error) {
	var out models.DashboardConfig
	err := c.do(ctx, http.MethodGet, "/campaigns/dashboard/config", nil, nil, &out)
	return out, err
}

// UpdateDashboardConfig stores the widget layout.
func (c *Client) UpdateDashboardConfig(ctx context.Context, in models.DashboardConfigUpdate) (models.DashboardConfig, error) {
	var out models.DashboardConfig
	err := c.do(ctx, http.MethodPut, "/campaigns/dashboard/config", nil, in, &out)
	return out, err
}

// CampaignDashboardStats aggregates pipeline counters across all campaigns.
func (c *Client) CampaignDashboardStats(ctx context.Context) (models.CampaignStats, error) {
	var out models.CampaignStats
	err := c.do(ctx, http.MethodGet, "/campaigns/dashboard/stats", nil, nil, &out)
	return out, err
}
