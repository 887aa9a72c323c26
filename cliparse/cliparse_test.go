// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags([]string{"-u", "http://localhost:8000"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.PageSize != 20 {
		t.Errorf("PageSize = %d, want default 20", cfg.PageSize)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout = %v, want default 15s", cfg.HTTPTimeout)
	}
	if cfg.StateDir == "" {
		t.Error("StateDir should default to a home-relative directory")
	}
}

func TestParseFlags_TrimsTrailingSlash(t *testing.T) {
	cfg, err := ParseFlags([]string{"-u", "https://api.example.com/"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Errorf("APIBaseURL = %q, want trailing slash removed", cfg.APIBaseURL)
	}
}

func TestParseFlags_MissingBaseURL(t *testing.T) {
	t.Setenv("ALIZE_API_URL", "")
	_, err := ParseFlags([]string{})
	if err == nil {
		t.Fatal("expected error when API base URL is missing")
	}
}

func TestParseFlags_EnvFallback(t *testing.T) {
	t.Setenv("ALIZE_API_URL", "http://env.example.com")
	t.Setenv("ALIZE_PAGE_SIZE", "50")
	t.Setenv("ALIZE_HTTP_TIMEOUT", "30s")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.APIBaseURL != "http://env.example.com" {
		t.Errorf("APIBaseURL = %q, want env value", cfg.APIBaseURL)
	}
	if cfg.PageSize != 50 {
		t.Errorf("PageSize = %d, want 50", cfg.PageSize)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v, want 30s", cfg.HTTPTimeout)
	}
}

func TestParseFlags_FlagBeatsEnv(t *testing.T) {
	t.Setenv("ALIZE_API_URL", "http://env.example.com")
	cfg, err := ParseFlags([]string{"-u", "http://flag.example.com"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.APIBaseURL != "http://flag.example.com" {
		t.Errorf("APIBaseURL = %q, want flag to win over env", cfg.APIBaseURL)
	}
}

func TestParseFlags_PageSizeBounds(t *testing.T) {
	for _, bad := range []string{"-5", "101"} {
		_, err := ParseFlags([]string{"-u", "http://x", "-n", bad})
		if err == nil {
			t.Errorf("page size %s should be rejected", bad)
		}
	}
}

func TestParseFlags_BadTimeout(t *testing.T) {
	_, err := ParseFlags([]string{"-u", "http://x", "--timeout", "soon"})
	if err == nil {
		t.Fatal("expected error for unparseable timeout")
	}
}

func TestParseFlags_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	cfg, err := ParseFlags([]string{"-u", "http://x"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if !cfg.NoColor {
		t.Error("NO_COLOR env should disable color")
	}
}
