// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package api

import (
	"context"
	"net/http"

	"github.com/danielhkuo/alize-cli/models"
)

// Register creates an account and stores the returned bearer token.
func (c *Client) Register(ctx context.Context, email, password string) (models.TokenResponse, error) {
	var out models.TokenResponse
	err := c.doPublic(ctx, http.MethodPost, "/auth/register", nil, models.RegisterRequest{
		Email:    email,
		Password: password,
	}, &out)
	if err != nil {
		return models.TokenResponse{}, err
	}
	if err := c.store.SetToken(out.AccessToken); err != nil {
		return models.TokenResponse{}, err
	}
	return out, nil
}

// Login exchanges credentials for a bearer token and stores it.
func (c *Client) Login(ctx context.Context, email, password string) (models.TokenResponse, error) {
	var out models.TokenResponse
	err := c.doPublic(ctx, http.MethodPost, "/auth/login", nil, models.LoginRequest{
		Email:    email,
		Password: password,
	}, &out)
	if err != nil {
		return models.TokenResponse{}, err
	}
	if err := c.store.SetToken(out.AccessToken); err != nil {
		return models.TokenResponse{}, err
	}
	return out, nil
}

// Logout clears the stored token. Purely local; the backend keeps no
// session state.
func (c *Client) Logout() error {
	return c.store.ClearToken()
}

// OAuthProviders lists the configured OAuth providers (pre-login).
func (c *Client) OAuthProviders(ctx context.Context) (models.OAuthProviders, error) {
	var out models.OAuthProviders
	err := c.doPublic(ctx, http.MethodGet, "/auth/oauth/providers", nil, nil, &out)
	return out, err
}

// OAuthGoogleURL returns the URL the user opens in a browser to start the
// Google flow. The backend redirects back with a token the user pastes in.
func (c *Client) OAuthGoogleURL() string {
	return c.baseURL + "/auth/oauth/google"
}

// CompleteOAuth stores a token obtained from an OAuth callback.
func (c *Client) CompleteOAuth(token string) error {
	return c.store.SetToken(token)
}

// RequestPasswordReset asks the backend to email a reset token.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	return c.doPublic(ctx, http.MethodPost, "/auth/password-reset/request", nil,
		models.PasswordResetRequest{Email: email}, nil)
}

// ConfirmPasswordReset redeems a reset token for a new password.
func (c *Client) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	return c.doPublic(ctx, http.MethodPost, "/auth/password-reset/confirm", nil,
		models.PasswordResetConfirm{Token: token, NewPassword: newPassword}, nil)
}

// RequestEmailVerification asks the backend to send a verification email.
func (c *Client) RequestEmailVerification(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/email/verify/request", nil, nil, nil)
}

// ConfirmEmailVerification redeems an emailed verification token.
func (c *Client) ConfirmEmailVerification(ctx context.Context, token string) error {
	return c.doPublic(ctx, http.MethodPost, "/auth/email/verify/confirm", nil,
		models.EmailVerifyConfirm{Token: token}, nil)
}
