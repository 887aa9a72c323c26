// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func waitChange(t *testing.T, ch <-chan Change) Change {
	t.Helper()
	select {
	case c := <-ch:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change notification")
		return Change{}
	}
}

func TestTokenLifecycle(t *testing.T) {
	s := openTestStore(t)

	if _, ok := s.Token(); ok {
		t.Error("fresh store should have no token")
	}

	if err := s.SetToken("abc123"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}
	tok, ok := s.Token()
	if !ok || tok != "abc123" {
		t.Errorf("Token() = %q, %v; want abc123, true", tok, ok)
	}

	if err := s.ClearToken(); err != nil {
		t.Fatalf("ClearToken failed: %v", err)
	}
	if _, ok := s.Token(); ok {
		t.Error("token should be gone after ClearToken")
	}
}

func TestHydrationAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := s.SetToken("persisted"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}
	if err := s.SetTheme("dark"); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	if tok, ok := s2.Token(); !ok || tok != "persisted" {
		t.Errorf("token after reopen = %q, %v; want persisted, true", tok, ok)
	}
	if theme := s2.Theme(); theme != "dark" {
		t.Errorf("theme after reopen = %q, want dark", theme)
	}
}

func TestSubscribeReceivesSetAndClear(t *testing.T) {
	s := openTestStore(t)
	ch, cancel := s.Subscribe()
	defer cancel()

	if err := s.SetToken("tok"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}
	c := waitChange(t, ch)
	if c.Key != KeyToken || c.Value != "tok" {
		t.Errorf("change = %+v, want token set to tok", c)
	}

	if err := s.ClearToken(); err != nil {
		t.Fatalf("ClearToken failed: %v", err)
	}
	c = waitChange(t, ch)
	if c.Key != KeyToken || c.Value != "" {
		t.Errorf("change = %+v, want token cleared", c)
	}
}

func TestClearOnEmptySlotStillNotifies(t *testing.T) {
	s := openTestStore(t)
	ch, cancel := s.Subscribe()
	defer cancel()

	if err := s.ClearToken(); err != nil {
		t.Fatalf("ClearToken failed: %v", err)
	}
	c := waitChange(t, ch)
	if c.Key != KeyToken {
		t.Errorf("change = %+v, want token clear notification", c)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	s := openTestStore(t)
	ch, cancel := s.Subscribe()
	cancel()

	if err := s.SetTheme("light"); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}

	// Channel is closed by cancel; a receive must not yield a change.
	if c, ok := <-ch; ok {
		t.Errorf("received %+v on cancelled subscription", c)
	}
}

func TestSlowSubscriberDoesNotBlockWriters(t *testing.T) {
	s := openTestStore(t)
	_, cancel := s.Subscribe() // never drained
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			if err := s.SetToken("tok"); err != nil {
				t.Errorf("SetToken failed: %v", err)
				return
			}
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("writer blocked by slow subscriber")
	}
}
