// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package api

import (
	"context"
	"net/http"

	"github.com/danielhkuo/alize-cli/models"
)

// NotifyConfig returns the notification channel settings.
func (c *Client) NotifyConfig(ctx context.Context) (models.NotifyConfig, error) {
	var out models.NotifyConfig
	err := c.do(ctx, http.MethodGet, "/notify/config", nil, nil, &out)
	return out, err
}

// TestNotify asks the backend to send a test notification over the
// configured channel.
func (c *Client) TestNotify(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/notify/test", nil, nil, nil)
}
