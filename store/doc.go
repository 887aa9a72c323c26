// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the small amount of client-side state the app owns:
the bearer token and the theme preference.

Storage is a single-table SQLite database (modernc.org/sqlite, no cgo)
under the state directory, hydrated once at startup. Writes go through the
database first, then update the in-memory snapshot and notify subscribers.

# Token Lifecycle

	token, ok := st.Token()     // current value, opaque to the client
	st.SetToken(v)              // after login / OAuth callback
	st.ClearToken()             // on logout or any 401/403

# Change Notification

Subscribe returns a channel receiving a Change after every successful
write, including clears (empty Value). This is the moral equivalent of the
browser storage event: header auth state and guarded pages watch it so all
views converge after a login or logout. Delivery is non-blocking and
last-write-wins; a slow subscriber misses intermediate values, never
blocks a writer.

	ch, cancel := st.Subscribe()
	defer cancel()
	for change := range ch { ... }
*/
package store
