// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "testing"

func TestParseMatchStatus(t *testing.T) {
	for _, s := range []string{"new", "viewed", "saved", "deleted"} {
		got, err := ParseMatchStatus(s)
		if err != nil {
			t.Errorf("ParseMatchStatus(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseMatchStatus(%q) = %q, want %q", s, got, s)
		}
	}

	if _, err := ParseMatchStatus("archived"); err == nil {
		t.Error("ParseMatchStatus(\"archived\") expected error, got nil")
	}
	if _, err := ParseMatchStatus(""); err == nil {
		t.Error("ParseMatchStatus(\"\") expected error, got nil")
	}
}

func TestParsePipelineStatus(t *testing.T) {
	for _, s := range []string{"new", "saved", "applied", "interview", "rejected", "hired"} {
		got, err := ParsePipelineStatus(s)
		if err != nil {
			t.Errorf("ParsePipelineStatus(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParsePipelineStatus(%q) = %q, want %q", s, got, s)
		}
	}

	if _, err := ParsePipelineStatus("ghosted"); err == nil {
		t.Error("ParsePipelineStatus(\"ghosted\") expected error, got nil")
	}
}

func TestPipelineTransitionAllowed_Forward(t *testing.T) {
	cases := []struct {
		from PipelineStatus
		to   PipelineStatus
	}{
		{PipelineNew, PipelineSaved},
		{PipelineNew, PipelineApplied}, // apply without saving first
		{PipelineSaved, PipelineApplied},
		{PipelineApplied, PipelineInterview},
		{PipelineInterview, PipelineHired},
	}
	for _, c := range cases {
		if !PipelineTransitionAllowed(c.from, c.to) {
			t.Errorf("PipelineTransitionAllowed(%s → %s) should be true", c.from, c.to)
		}
	}
}

func TestPipelineTransitionAllowed_ToRejected(t *testing.T) {
	for _, from := range []PipelineStatus{PipelineNew, PipelineSaved, PipelineApplied, PipelineInterview} {
		if !PipelineTransitionAllowed(from, PipelineRejected) {
			t.Errorf("PipelineTransitionAllowed(%s → rejected) should be true", from)
		}
	}
}

func TestPipelineTransitionAllowed_FromTerminal(t *testing.T) {
	all := []PipelineStatus{
		PipelineNew, PipelineSaved, PipelineApplied,
		PipelineInterview, PipelineRejected, PipelineHired,
	}
	for _, from := range []PipelineStatus{PipelineHired, PipelineRejected} {
		if !PipelineTerminal(from) {
			t.Errorf("PipelineTerminal(%s) should be true", from)
		}
		for _, to := range all {
			if PipelineTransitionAllowed(from, to) {
				t.Errorf("PipelineTransitionAllowed(%s → %s) should be false (terminal)", from, to)
			}
		}
	}
}

func TestPipelineTransitionAllowed_SkipAndBackwards(t *testing.T) {
	cases := []struct {
		from PipelineStatus
		to   PipelineStatus
	}{
		{PipelineNew, PipelineInterview}, // skip applied
		{PipelineNew, PipelineHired},
		{PipelineSaved, PipelineInterview},
		{PipelineApplied, PipelineHired},  // skip interview
		{PipelineApplied, PipelineSaved},  // backwards
		{PipelineInterview, PipelineNew},  // backwards
		{PipelineSaved, PipelineSaved},    // self
	}
	for _, c := range cases {
		if PipelineTransitionAllowed(c.from, c.to) {
			t.Errorf("PipelineTransitionAllowed(%s → %s) should be false", c.from, c.to)
		}
	}
}

func TestNextPipelineStatuses(t *testing.T) {
	next := NextPipelineStatuses(PipelineApplied)
	if len(next) != 2 {
		t.Fatalf("NextPipelineStatuses(applied) = %v, want 2 entries", next)
	}
	if next[0] != PipelineInterview || next[1] != PipelineRejected {
		t.Errorf("NextPipelineStatuses(applied) = %v, want [interview rejected]", next)
	}

	if got := NextPipelineStatuses(PipelineHired); len(got) != 0 {
		t.Errorf("NextPipelineStatuses(hired) = %v, want empty", got)
	}
}
