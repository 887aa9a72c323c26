// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package testutil provides shared test helpers.

# Test Store

OpenTestStore returns a state store backed by a temporary sqlite file:

	st := testutil.OpenTestStore(t)

The store is closed automatically when the test finishes.

# Fake Backend Responses

WriteJSON and WriteDetail build responses inside httptest handlers.
WriteDetail produces the backend's error envelope:

	testutil.WriteDetail(t, w, 422, "invalid email")

# Error Assertions

AssertKind checks the normalized error classification:

	testutil.AssertKind(t, err, apierr.KindValidation)
*/
package testutil
