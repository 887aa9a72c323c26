// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apierr normalizes every failure mode of the API client into a
single error type with a Kind, so call sites can do

	if err != nil {
		page.ShowError(apierr.Message(err))
	}

without caring whether the failure was a validation response, a missing
resource, or an unreachable server.

# Kinds

  - NOT_AUTHENTICATED: 401/403, session is gone and re-login is required
  - VALIDATION: other 4xx carrying a backend "detail" message
  - NOT_FOUND: 404 on optional resources, an expected empty state
  - TRANSPORT: network failure before any HTTP status arrived
  - SERVER: 5xx

# Sentinel

errors.Is(err, apierr.ErrNotAuthenticated) matches any auth failure by
kind. Authenticated calls return the exact sentinel value after the
client has cleared the token and signalled re-login; public-endpoint
401s return a distinct error of the same kind that keeps the backend
message, so identity comparison tells the two apart.

Stack traces are captured via github.com/go-errors/errors for debugging;
they never reach the user.
*/
package apierr
