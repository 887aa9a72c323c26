// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package api is the typed client for the Alizè backend.

# Client

One Client is shared by every view. It owns the base URL, the HTTP
client, and the token store:

	client := api.New(cfg.APIBaseURL, cfg.HTTPTimeout, st, onAuthExpired)

Authenticated calls attach the stored bearer token automatically. A
401/403 response clears the token, fires onAuthExpired exactly once for
that response, and returns apierr.ErrNotAuthenticated; the client never
retries.

# Endpoints

Methods are grouped by resource file:

  - auth.go: register, login, OAuth, password reset, email verification
  - matches.go: match feed, counts, status actions, dashboard stats
  - preferences.go: matching preferences
  - cv.go: CV upload and AI analysis
  - campaigns.go: campaigns, pipeline jobs, templates, dashboard config
  - profile.go: account record and deletion
  - search.go: on-demand search runs
  - notify.go: notification settings

# Error Normalization

Every failure resolves to an *apierr.Error. Backend messages arrive as
{"detail": ...}; a string detail is surfaced verbatim, structured detail
as compact JSON. Network failures map to KindTransport, 404 to
KindNotFound, other 4xx to KindValidation, 5xx to KindServer.
*/
package api
