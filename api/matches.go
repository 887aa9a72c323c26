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

// MatchFilters is the client-held filter state for the dashboard list.
// Zero values mean "no filter".
type MatchFilters struct {
	FilterText string
	MinScore   int    // 0-10
	Source     string // "" or "all" = every source
	SortBy     string // newest, score, new_first
	NewOnly    bool
	Status     string // new, viewed, saved
}

func (f MatchFilters) query(page, pageSize int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	if f.FilterText != "" {
		q.Set("filter_text", f.FilterText)
	}
	if f.MinScore > 0 {
		q.Set("min_score", strconv.Itoa(f.MinScore))
	}
	if f.Source != "" && f.Source != "all" {
		q.Set("source", f.Source)
	}
	if f.SortBy != "" {
		q.Set("sort_by", f.SortBy)
	}
	if f.NewOnly {
		q.Set("new_only", "true")
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	return q
}

// Matches returns one page of scored matches.
func (c *Client) Matches(ctx context.Context, page, pageSize int, filters MatchFilters) (models.MatchesPage, error) {
	var out models.MatchesPage
	err := c.do(ctx, http.MethodGet, "/matches", filters.query(page, pageSize), nil, &out)
	return out, err
}

// MatchesCount is the cheap pre-check used before destructive actions.
func (c *Client) MatchesCount(ctx context.Context) (models.MatchesCount, error) {
	var out models.MatchesCount
	err := c.do(ctx, http.MethodGet, "/matches/count", nil, nil, &out)
	return out, err
}

// DeleteMatch removes a match from the dashboard (soft delete server-side).
func (c *Client) DeleteMatch(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/matches/%d", id), nil, nil, nil)
}

// VisitMatch marks a match as viewed. Idempotent: repeating it on an
// already-viewed match succeeds without effect.
func (c *Client) VisitMatch(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/matches/%d/visit", id), nil, nil, nil)
}

// SaveMatch bookmarks a match.
func (c *Client) SaveMatch(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/matches/%d/save", id), nil, nil, nil)
}

// UnsaveMatch removes a bookmark, returning the match to viewed state.
func (c *Client) UnsaveMatch(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/matches/%d/unsave", id), nil, nil, nil)
}

// SetMatchStatus sets an explicit dashboard status.
func (c *Client) SetMatchStatus(ctx context.Context, id int, status models.MatchStatus) error {
	body := struct {
		Status string `json:"status"`
	}{Status: string(status)}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/matches/%d/status", id), nil, body, nil)
}

// DashboardStats returns the aggregate counters for the stat cards. Views
// fetch this independently of the list; transient inconsistency between
// the two is acceptable.
func (c *Client) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var out models.DashboardStats
	err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, nil, &out)
	return out, err
}

// RefreshJobs asks the backend to pull fresh listings into the feed.
func (c *Client) RefreshJobs(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/jobs/refresh", nil, nil, nil)
}
