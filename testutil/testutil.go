// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/alize-cli/apierr"
	"github.com/danielhkuo/alize-cli/store"
)

// OpenTestStore creates a fresh state store backed by a throwaway sqlite
// file and closes it when the test ends.
func OpenTestStore(t *testing.T) *store.Store {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(t *testing.T, w http.ResponseWriter, status int, v interface{}) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("Failed to encode response: %v", err)
	}
}

// WriteDetail writes the backend's error envelope {"detail": ...}.
func WriteDetail(t *testing.T, w http.ResponseWriter, status int, detail interface{}) {
	t.Helper()
	WriteJSON(t, w, status, map[string]interface{}{"detail": detail})
}

// AssertKind checks that err is an API error of the expected kind.
func AssertKind(t *testing.T, err error, expected apierr.Kind) {
	t.Helper()

	if err == nil {
		t.Fatalf("Expected %s error, got nil", expected)
	}
	if got := apierr.KindOf(err); got != expected {
		t.Errorf("Expected error kind %s, got %s (%v)", expected, got, err)
	}
}
