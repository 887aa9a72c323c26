// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/alize-cli/apierr"
	"github.com/danielhkuo/alize-cli/store"
)

// Client is the single entry point for every call to the Alizè backend.
// One instance is shared by all views.
type Client struct {
	baseURL string
	http    *http.Client
	store   *store.Store

	// onAuthExpired is invoked exactly once per 401/403 response, after
	// the token has been cleared. The CLI uses it to send the user back
	// to login.
	onAuthExpired func()
}

// New creates a Client for the given base URL (no trailing slash).
func New(baseURL string, timeout time.Duration, st *store.Store, onAuthExpired func()) *Client {
	if onAuthExpired == nil {
		onAuthExpired = func() {}
	}
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		http:          &http.Client{Timeout: timeout},
		store:         st,
		onAuthExpired: onAuthExpired,
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs an authenticated JSON request. body is marshalled when
// non-nil; the response is decoded into out (see decode for the non-JSON
// text case). query may be nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apierr.New(apierr.KindTransport, 0, "cannot encode request", err)
		}
		reader = bytes.NewReader(payload)
	}
	return c.request(ctx, method, path, query, "application/json", reader, out, true)
}

// doPublic performs an unauthenticated request for pre-login endpoints.
// It skips the auth header and the token-clearing 401 handling but shares
// the same error normalization.
func (c *Client) doPublic(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apierr.New(apierr.KindTransport, 0, "cannot encode request", err)
		}
		reader = bytes.NewReader(payload)
	}
	return c.request(ctx, method, path, query, "application/json", reader, out, false)
}

// doMultipart uploads a single file under the given form field name.
func (c *Client) doMultipart(ctx context.Context, method, path, field, filename string, content io.Reader, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return apierr.New(apierr.KindTransport, 0, "cannot build upload", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return apierr.New(apierr.KindTransport, 0, "cannot read upload", err)
	}
	if err := w.Close(); err != nil {
		return apierr.New(apierr.KindTransport, 0, "cannot build upload", err)
	}

	return c.request(ctx, method, path, nil, w.FormDataContentType(), &buf, out, true)
}

func (c *Client) request(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, out interface{}, authenticated bool) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return apierr.Transport(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if authenticated {
		if token, ok := c.store.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		slog.Error("request failed", "method", method, "path", path, "error", err)
		return apierr.Transport(err)
	}
	defer resp.Body.Close()

	slog.Info("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierr.Transport(err)
	}

	if authenticated && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		// Session is gone: clear the stored token (notifying every view)
		// and hand control back to login. No retry.
		if err := c.store.ClearToken(); err != nil {
			slog.Error("failed to clear token", "error", err)
		}
		c.onAuthExpired()
		// The exact sentinel, not a fresh error: callers distinguish an
		// expired session (already announced via onAuthExpired) from a
		// public-endpoint 401 that carries a backend message.
		return apierr.ErrNotAuthenticated
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return normalizeError(resp.StatusCode, raw)
	}

	return decode(raw, resp.Header.Get("Content-Type"), out)
}

// normalizeError turns a non-2xx response into an apierr.Error. The
// backend wraps messages as {"detail": ...} where detail is either a
// string or structured validation data.
func normalizeError(status int, raw []byte) error {
	message := detailMessage(raw)
	if message == "" {
		message = fmt.Sprintf("HTTP %d", status)
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		// Public-endpoint variant (bad login): keep the backend message so
		// the user sees why, not just "not authenticated".
		return apierr.New(apierr.KindNotAuthenticated, status, message, nil)
	case status == http.StatusNotFound:
		return apierr.NotFound(message)
	case status >= 400 && status < 500:
		return apierr.Validation(status, message)
	default:
		return apierr.Server(status, message)
	}
}

func detailMessage(raw []byte) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return ""
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Detail) > 0 {
		var s string
		if err := json.Unmarshal(envelope.Detail, &s); err == nil {
			return s
		}
		// Structured detail (e.g. validation errors): compact JSON text.
		return string(envelope.Detail)
	}

	return trimmed
}

// decode fills out from a 2xx response body. JSON bodies are unmarshalled;
// anything else is handed over as text when the caller asked for a string
// (simple ack endpoints).
func decode(raw []byte, contentType string, out interface{}) error {
	if out == nil {
		return nil
	}

	if s, ok := out.(*string); ok && !strings.Contains(contentType, "application/json") {
		*s = string(raw)
		return nil
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		// 204-style empty body.
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return apierr.New(apierr.KindTransport, 0, "cannot decode server response", err)
	}
	return nil
}
