// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package api

import (
	"context"
	"net/http"

	"github.com/danielhkuo/alize-cli/models"
)

// SearchJobs triggers an on-demand search run against the user's current
// preferences and returns its summary. Long-running; callers should pass
// a context with a generous deadline.
func (c *Client) SearchJobs(ctx context.Context) (models.JobSearchResult, error) {
	var out models.JobSearchResult
	err := c.do(ctx, http.MethodPost, "/jobs/search", nil, nil, &out)
	return out, err
}

// SearchRuns lists past search runs, newest first.
func (c *Client) SearchRuns(ctx context.Context) ([]models.JobSearchRun, error) {
	var out []models.JobSearchRun
	err := c.do(ctx, http.MethodGet, "/jobs/runs", nil, nil, &out)
	return out, err
}
