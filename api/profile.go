// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package api

import (
	"context"
	"net/http"

	"github.com/danielhkuo/alize-cli/models"
)

// Profile returns the authenticated user's account record.
func (c *Client) Profile(ctx context.Context) (models.Profile, error) {
	var out models.Profile
	err := c.do(ctx, http.MethodGet, "/profile", nil, nil, &out)
	return out, err
}

// UpdateProfile applies the non-nil fields of upd. Changing the password
// requires CurrentPassword to be set; the backend rejects it otherwise.
func (c *Client) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (models.Profile, error) {
	var out models.Profile
	err := c.do(ctx, http.MethodPut, "/profile", nil, upd, &out)
	return out, err
}

// DeleteAccount permanently deletes the account and all its data. The
// caller is expected to clear the local session afterwards.
func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/profile", nil, nil, nil)
}
