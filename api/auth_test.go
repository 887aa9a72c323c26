// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielhkuo/alize-cli/apierr"
	"github.com/danielhkuo/alize-cli/testutil"
)

func TestLoginStoresToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("Expected path /auth/login, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("Login must not send an Authorization header")
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode login body: %v", err)
		}
		if body["email"] != "a@b.c" || body["password"] != "hunter2" {
			t.Errorf("Unexpected credentials: %v", body)
		}
		testutil.WriteJSON(t, w, http.StatusOK, map[string]string{
			"access_token": "fresh-token",
			"token_type":   "bearer",
		})
	})

	resp, err := client.Login(context.Background(), "a@b.c", "hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.AccessToken != "fresh-token" {
		t.Errorf("Expected access token 'fresh-token', got %q", resp.AccessToken)
	}

	token, ok := client.store.Token()
	if !ok || token != "fresh-token" {
		t.Errorf("Expected token persisted after login, got %q (present=%v)", token, ok)
	}
}

func TestLoginFailureLeavesStoreEmpty(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteDetail(t, w, http.StatusUnauthorized, "bad credentials")
	})

	_, err := client.Login(context.Background(), "a@b.c", "wrong")
	testutil.AssertKind(t, err, apierr.KindNotAuthenticated)
	if got := apierr.Message(err); got != "bad credentials" {
		t.Errorf("Expected backend message to survive, got %q", got)
	}
	if _, ok := client.store.Token(); ok {
		t.Error("Expected no token after failed login")
	}
}

func TestRegisterStoresToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Errorf("Expected path /auth/register, got %s", r.URL.Path)
		}
		testutil.WriteJSON(t, w, http.StatusOK, map[string]string{
			"access_token": "new-user-token",
			"token_type":   "bearer",
		})
	})

	if _, err := client.Register(context.Background(), "new@user.dev", "s3cret"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	token, ok := client.store.Token()
	if !ok || token != "new-user-token" {
		t.Errorf("Expected token persisted after register, got %q (present=%v)", token, ok)
	}
}

func TestLogoutClearsToken(t *testing.T) {
	st := testutil.OpenTestStore(t)
	if err := st.SetToken("tok"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}
	client := New("http://localhost:0", 0, st, nil)

	if err := client.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, ok := st.Token(); ok {
		t.Error("Expected token cleared after logout")
	}
}

func TestCompleteOAuthStoresToken(t *testing.T) {
	st := testutil.OpenTestStore(t)
	client := New("http://localhost:0", 0, st, nil)

	if err := client.CompleteOAuth("oauth-token"); err != nil {
		t.Fatalf("CompleteOAuth failed: %v", err)
	}
	token, ok := st.Token()
	if !ok || token != "oauth-token" {
		t.Errorf("Expected oauth token persisted, got %q (present=%v)", token, ok)
	}
}
