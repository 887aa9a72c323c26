// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/alize-cli/api"
	"github.com/danielhkuo/alize-cli/models"
	"github.com/danielhkuo/alize-cli/testutil"
)

// fakeBackend serves a fixed set of matches with server-side pagination,
// the way the real backend does.
func fakeBackend(t *testing.T, totalJobs int) *httptest.Server {
	t.Helper()

	jobs := make([]models.Job, totalJobs)
	for i := range jobs {
		s := (i % 10) + 1
		jobs[i] = models.Job{
			ID:      i + 1,
			Source:  "remotive",
			Title:   fmt.Sprintf("Job %d", i+1),
			Company: "Acme",
			URL:     fmt.Sprintf("https://jobs.example/%d", i+1),
			Score:   &s,
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteJSON(t, w, http.StatusOK, map[string]string{
			"access_token": "test-token", "token_type": "bearer",
		})
	})
	mux.HandleFunc("GET /dashboard/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			testutil.WriteDetail(t, w, http.StatusUnauthorized, "not authenticated")
			return
		}
		testutil.WriteJSON(t, w, http.StatusOK, models.DashboardStats{TotalJobs: totalJobs})
	})
	mux.HandleFunc("GET /matches", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			testutil.WriteDetail(t, w, http.StatusUnauthorized, "not authenticated")
			return
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		size, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

		start := (page - 1) * size
		items := []models.Job{}
		if start < len(jobs) {
			end := start + size
			if end > len(jobs) {
				end = len(jobs)
			}
			items = jobs[start:end]
		}
		testutil.WriteJSON(t, w, http.StatusOK, models.MatchesPage{
			Items: items, Total: len(jobs), Page: page, PageSize: size,
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func countCards(out string) int {
	return strings.Count(out, "score ")
}

func TestLoginThenDashboardRendersOnePage(t *testing.T) {
	tests := []struct {
		name      string
		totalJobs int
		wantCards int
	}{
		{name: "full page", totalJobs: 45, wantCards: 20},
		{name: "short page", totalJobs: 5, wantCards: 5},
		{name: "empty feed", totalJobs: 0, wantCards: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := fakeBackend(t, tt.totalJobs)
			st := testutil.OpenTestStore(t)
			client := api.New(srv.URL, 5*time.Second, st, nil)

			if _, err := client.Login(context.Background(), "a@b.c", "pw"); err != nil {
				t.Fatalf("Login failed: %v", err)
			}
			if token, ok := st.Token(); !ok || token != "test-token" {
				t.Fatalf("Expected token stored after login, got %q", token)
			}

			var buf bytes.Buffer
			palette := NewPalette(&buf, true, models.ThemeLight)
			view := NewDashboardView(&buf, client, palette, 20)

			if err := view.Show(context.Background(), 1, api.MatchFilters{}); err != nil {
				t.Fatalf("Show failed: %v", err)
			}
			if got := countCards(buf.String()); got != tt.wantCards {
				t.Errorf("Expected %d cards, got %d\n%s", tt.wantCards, got, buf.String())
			}
			if !strings.Contains(buf.String(), fmt.Sprintf("(%d total)", tt.totalJobs)) {
				t.Errorf("Expected footer with total %d, got:\n%s", tt.totalJobs, buf.String())
			}
		})
	}
}

func TestDashboardOutOfRangePage(t *testing.T) {
	srv := fakeBackend(t, 5)
	st := testutil.OpenTestStore(t)
	client := api.New(srv.URL, 5*time.Second, st, nil)
	if _, err := client.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	var buf bytes.Buffer
	view := NewDashboardView(&buf, client, NewPalette(&buf, true, models.ThemeLight), 20)

	if err := view.Show(context.Background(), 9, api.MatchFilters{}); err != nil {
		t.Fatalf("Show on out-of-range page failed: %v", err)
	}
	if got := countCards(buf.String()); got != 0 {
		t.Errorf("Expected no cards on out-of-range page, got %d", got)
	}
	if !strings.Contains(buf.String(), "(5 total)") {
		t.Errorf("Expected accurate total in footer, got:\n%s", buf.String())
	}
}

func TestMatchDeletePatchesDashboard(t *testing.T) {
	deleted := false
	mux := http.NewServeMux()
	mux.HandleFunc("GET /matches", func(w http.ResponseWriter, r *http.Request) {
		items := []models.Job{{ID: 1, Title: "Keep", Company: "A", URL: "u"},
			{ID: 2, Title: "Drop", Company: "B", URL: "u"}}
		testutil.WriteJSON(t, w, http.StatusOK, models.MatchesPage{Items: items, Total: 2, Page: 1, PageSize: 20})
	})
	mux.HandleFunc("DELETE /matches/2", func(w http.ResponseWriter, r *http.Request) {
		deleted = true
		testutil.WriteJSON(t, w, http.StatusOK, map[string]bool{"deleted": true})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	st := testutil.OpenTestStore(t)
	client := api.New(srv.URL, 5*time.Second, st, nil)

	var buf bytes.Buffer
	palette := NewPalette(&buf, true, models.ThemeLight)
	dashboard := NewDashboardView(&buf, client, palette, 20)
	if err := dashboard.List().Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	actions := NewMatchActions(&buf, strings.NewReader("y\n"), client, palette, dashboard)
	if err := actions.Delete(context.Background(), 2); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !deleted {
		t.Fatal("Expected DELETE request to reach the server")
	}

	items := dashboard.List().Items()
	if len(items) != 1 || items[0].ID != 1 {
		t.Errorf("Expected match 2 gone from controller, got %+v", items)
	}
	if dashboard.List().Total() != 1 {
		t.Errorf("Expected total decremented, got %d", dashboard.List().Total())
	}
}

func TestVisitPatchesNewBadge(t *testing.T) {
	isNew := true
	mux := http.NewServeMux()
	mux.HandleFunc("GET /matches", func(w http.ResponseWriter, r *http.Request) {
		items := []models.Job{{ID: 1, Title: "T", Company: "C", URL: "u", IsNew: &isNew, Status: "new"}}
		testutil.WriteJSON(t, w, http.StatusOK, models.MatchesPage{Items: items, Total: 1, Page: 1, PageSize: 20})
	})
	mux.HandleFunc("POST /matches/1/visit", func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteJSON(t, w, http.StatusOK, map[string]bool{"visited": true})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	st := testutil.OpenTestStore(t)
	client := api.New(srv.URL, 5*time.Second, st, nil)

	var buf bytes.Buffer
	palette := NewPalette(&buf, true, models.ThemeLight)
	dashboard := NewDashboardView(&buf, client, palette, 20)
	if err := dashboard.List().Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	actions := NewMatchActions(&buf, strings.NewReader(""), client, palette, dashboard)
	for i := 0; i < 2; i++ { // idempotent: second visit also succeeds
		if err := actions.Visit(context.Background(), 1); err != nil {
			t.Fatalf("Visit %d failed: %v", i+1, err)
		}
	}

	items := dashboard.List().Items()
	if items[0].IsNew == nil || *items[0].IsNew {
		t.Error("Expected NEW badge cleared after visit")
	}
	if items[0].Status != string(models.MatchViewed) {
		t.Errorf("Expected status viewed, got %s", items[0].Status)
	}
}
