// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/alize-cli/api"
	"github.com/danielhkuo/alize-cli/models"
	"github.com/danielhkuo/alize-cli/testutil"
)

// cvBackend is a fake backend tracking whether the upload endpoint was
// hit, with a configurable match count for the pre-check.
type cvBackend struct {
	matchCount int
	uploads    int
}

func (b *cvBackend) serve(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /matches/count", func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteJSON(t, w, http.StatusOK, models.MatchesCount{Count: b.matchCount})
	})
	mux.HandleFunc("POST /cv/upload", func(w http.ResponseWriter, r *http.Request) {
		b.uploads++
		testutil.WriteJSON(t, w, http.StatusOK, models.UploadedCV{ID: 1, Filename: "cv.pdf", URL: "/cv/1"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func writeTestCV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cv.pdf")
	if err := os.WriteFile(path, []byte("pdf bytes"), 0o600); err != nil {
		t.Fatalf("Failed to write test CV: %v", err)
	}
	return path
}

func newCVView(t *testing.T, srv *httptest.Server, input string) (*CVView, *bytes.Buffer) {
	t.Helper()
	st := testutil.OpenTestStore(t)
	client := api.New(srv.URL, 5*time.Second, st, nil)
	var buf bytes.Buffer
	view := NewCVView(&buf, strings.NewReader(input), client, NewPalette(&buf, true, models.ThemeLight))
	return view, &buf
}

func TestUploadWithMatchesAsksFirst(t *testing.T) {
	backend := &cvBackend{matchCount: 3}
	view, buf := newCVView(t, backend.serve(t), "y\n")

	if err := view.Upload(context.Background(), writeTestCV(t)); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if !strings.Contains(buf.String(), "3 existing matches") {
		t.Errorf("Expected rescore warning in prompt, got:\n%s", buf.String())
	}
	if backend.uploads != 1 {
		t.Errorf("Expected 1 upload after confirmation, got %d", backend.uploads)
	}
}

func TestUploadCancelledNeverHitsEndpoint(t *testing.T) {
	backend := &cvBackend{matchCount: 3}
	view, buf := newCVView(t, backend.serve(t), "n\n")

	if err := view.Upload(context.Background(), writeTestCV(t)); err != nil {
		t.Fatalf("Upload (cancelled) failed: %v", err)
	}
	if backend.uploads != 0 {
		t.Errorf("Expected no upload after cancel, got %d", backend.uploads)
	}
	if !strings.Contains(buf.String(), "cancelled") {
		t.Errorf("Expected cancel notice, got:\n%s", buf.String())
	}
}

func TestUploadWithEmptyFeedSkipsDialog(t *testing.T) {
	backend := &cvBackend{matchCount: 0}
	// No input available: a prompt would fail the flow.
	view, buf := newCVView(t, backend.serve(t), "")

	if err := view.Upload(context.Background(), writeTestCV(t)); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if backend.uploads != 1 {
		t.Errorf("Expected direct upload with empty feed, got %d", backend.uploads)
	}
	if strings.Contains(buf.String(), "Continue?") {
		t.Errorf("Expected no prompt with empty feed, got:\n%s", buf.String())
	}
}

func TestShowEmptyState(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /cv/latest", func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteDetail(t, w, http.StatusNotFound, "no CV uploaded")
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	view, buf := newCVView(t, srv, "")
	if err := view.Show(context.Background()); err != nil {
		t.Fatalf("Expected 404 rendered as empty state, got error: %v", err)
	}
	if !strings.Contains(buf.String(), "No CV uploaded yet") {
		t.Errorf("Expected empty-state message, got:\n%s", buf.String())
	}
}
