// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Known keys. The table is a plain KV store but only these two slots are
// used; anything else found at hydration is ignored.
const (
	KeyToken = "token"
	KeyTheme = "theme"
)

const schema = `
-- Client-side persistent state, one row per key.
CREATE TABLE IF NOT EXISTS local_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

// Change is delivered to subscribers after every successful write.
// Value is empty when the key was cleared.
type Change struct {
	Key   string
	Value string
}

// Store persists the bearer token and theme preference, and broadcasts
// changes so every open view converges after a login/logout. It is the
// process-wide equivalent of browser localStorage plus its storage event.
type Store struct {
	db *sql.DB

	mu     sync.Mutex
	values map[string]string
	subs   map[int]chan Change
	nextID int
}

// Open opens (creating if needed) the state database at path and hydrates
// the known keys exactly once.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	s := &Store{
		db:     db,
		values: make(map[string]string),
		subs:   make(map[int]chan Change),
	}

	rows, err := db.Query(`SELECT key, value FROM local_state`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to hydrate state: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to hydrate state: %w", err)
		}
		s.values[k] = v
	}
	if err := rows.Err(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to hydrate state: %w", err)
	}

	return s, nil
}

// Close closes the underlying database and all subscriber channels.
func (s *Store) Close() error {
	s.mu.Lock()
	for id, ch := range s.subs {
		close(ch)
		delete(s.subs, id)
	}
	s.mu.Unlock()
	return s.db.Close()
}

// Token returns the stored bearer token. The token is opaque; the client
// never inspects or validates its contents.
func (s *Store) Token() (string, bool) {
	return s.get(KeyToken)
}

// SetToken persists the token and notifies subscribers.
func (s *Store) SetToken(token string) error {
	return s.set(KeyToken, token)
}

// ClearToken removes the token and notifies subscribers with an empty
// value. Clearing an already-empty slot still notifies: logout from one
// view must reach the others.
func (s *Store) ClearToken() error {
	return s.clear(KeyToken)
}

// Theme returns the stored theme preference, or "" when unset.
func (s *Store) Theme() string {
	v, _ := s.get(KeyTheme)
	return v
}

// SetTheme persists the theme preference and notifies subscribers.
func (s *Store) SetTheme(theme string) error {
	return s.set(KeyTheme, theme)
}

// Subscribe registers a listener for state changes. The returned cancel
// func must be called when the listener goes away. Delivery is
// non-blocking: a subscriber that has fallen behind misses intermediate
// values and only the latest state matters (last-write-wins).
func (s *Store) Subscribe() (<-chan Change, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan Change, 8)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

func (s *Store) get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO local_state (key, value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = $3
	`, key, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}

	s.mu.Lock()
	s.values[key] = value
	s.notifyLocked(Change{Key: key, Value: value})
	s.mu.Unlock()
	return nil
}

func (s *Store) clear(key string) error {
	_, err := s.db.Exec(`DELETE FROM local_state WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to clear %s: %w", key, err)
	}

	s.mu.Lock()
	delete(s.values, key)
	s.notifyLocked(Change{Key: key})
	s.mu.Unlock()
	return nil
}

// notifyLocked broadcasts a change. Callers hold s.mu.
func (s *Store) notifyLocked(c Change) {
	for _, ch := range s.subs {
		select {
		case ch <- c:
		default:
			// Subscriber is behind; it will re-read current state anyway.
		}
	}
}
