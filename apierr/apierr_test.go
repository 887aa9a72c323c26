// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apierr

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelMatchesAnyAuthFailure(t *testing.T) {
	for _, status := range []int{401, 403} {
		err := NotAuthenticated(status)
		if !errors.Is(err, ErrNotAuthenticated) {
			t.Errorf("NotAuthenticated(%d) should match ErrNotAuthenticated", status)
		}
	}

	if errors.Is(Validation(400, "bad email"), ErrNotAuthenticated) {
		t.Error("validation error should not match ErrNotAuthenticated")
	}
}

func TestWrappedSentinelStillMatches(t *testing.T) {
	err := fmt.Errorf("loading dashboard: %w", NotAuthenticated(401))
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Error("wrapped auth error should still match ErrNotAuthenticated")
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{Validation(422, "too short"), KindValidation},
		{NotFound("no cv"), KindNotFound},
		{Transport(errors.New("dial tcp: refused")), KindTransport},
		{Server(502, "HTTP 502"), KindServer},
		{NotAuthenticated(401), KindNotAuthenticated},
		{errors.New("plain"), ""},
		{nil, ""},
	}
	for _, c := range cases {
		if got := KindOf(c.err); got != c.want {
			t.Errorf("KindOf(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestMessage(t *testing.T) {
	if got := Message(Validation(400, "Email already registered")); got != "Email already registered" {
		t.Errorf("Message = %q, want backend detail verbatim", got)
	}
	if got := Message(Transport(errors.New("dial tcp: refused"))); got != "cannot reach server" {
		t.Errorf("Message for transport failure = %q, want generic text", got)
	}
	if got := Message(errors.New("plain")); got != "plain" {
		t.Errorf("Message for plain error = %q", got)
	}
	if got := Message(nil); got != "" {
		t.Errorf("Message(nil) = %q, want empty", got)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(NotFound("no cv yet")) {
		t.Error("IsNotFound should be true for NotFound errors")
	}
	if IsNotFound(Validation(400, "nope")) {
		t.Error("IsNotFound should be false for validation errors")
	}
	if IsNotFound(fmt.Errorf("ctx: %w", NotFound("x"))) != true {
		t.Error("IsNotFound should unwrap")
	}
}

func TestStackCaptured(t *testing.T) {
	err := Transport(errors.New("boom"))
	if len(err.StackTrace()) == 0 {
		t.Error("expected a captured stack trace")
	}
}
