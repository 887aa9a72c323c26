// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package api

import (
	"context"
	"net/http"

	"github.com/danielhkuo/alize-cli/models"
)

// Preferences returns the authenticated user's matching preferences.
func (c *Client) Preferences(ctx context.Context) (models.Preference, error) {
	var out models.Preference
	err := c.do(ctx, http.MethodGet, "/preferences", nil, nil, &out)
	return out, err
}

// UpdatePreferences replaces the matching preferences with upd.
func (c *Client) UpdatePreferences(ctx context.Context, upd models.PreferenceUpdate) (models.Preference, error) {
	var out models.Preference
	err := c.do(ctx, http.MethodPut, "/preferences", nil, upd, &out)
	return out, err
}
