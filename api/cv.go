// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package api

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/danielhkuo/alize-cli/models"
)

// LatestCV returns the most recently uploaded CV. A NotFound error means
// the user has not uploaded one yet; callers render an empty state for it.
func (c *Client) LatestCV(ctx context.Context) (models.CV, error) {
	var out models.CV
	err := c.do(ctx, http.MethodGet, "/cv/latest", nil, nil, &out)
	return out, err
}

// UploadCV streams a CV file to the backend as multipart form data.
func (c *Client) UploadCV(ctx context.Context, filename string, content io.Reader) (models.UploadedCV, error) {
	var out models.UploadedCV
	err := c.doMultipart(ctx, http.MethodPost, "/cv/upload", "file", filename, content, &out)
	return out, err
}

// Analysis returns the AI match analysis for the latest CV. When force is
// set the backend recomputes instead of serving its cached result.
func (c *Client) Analysis(ctx context.Context, force bool) (models.Analysis, error) {
	q := url.Values{}
	if force {
		q.Set("force", "true")
	}
	var out models.Analysis
	err := c.do(ctx, http.MethodGet, "/ai/analysis", q, nil, &out)
	return out, err
}
