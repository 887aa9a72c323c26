// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package confirm

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// State is where a confirm-then-mutate flow currently stands.
type State string

const (
	// StateIdle: no mutation pending.
	StateIdle State = "idle"
	// StateChecking: the pre-check is running.
	StateChecking State = "checking"
	// StateConfirming: waiting for the user to confirm or cancel.
	StateConfirming State = "confirming"
	// StateSaving: the mutation is running.
	StateSaving State = "saving"
)

// Flow wires a pre-check and a mutation into the controller. Check is
// optional: when nil, Submit skips straight to saving. Check reports
// whether the mutation is destructive enough to need confirmation, plus
// an optional summary line shown in the prompt ("3 matches will be
// replaced").
type Flow struct {
	Check func(ctx context.Context) (destructive bool, summary string, err error)
	Save  func(ctx context.Context) error
}

// Controller runs one mutation through idle → checking → confirming →
// saving. Safe for concurrent use; each instance handles one flow at a
// time.
type Controller struct {
	flow Flow

	mu      sync.Mutex
	state   State
	summary string
}

// New creates a Controller in StateIdle.
func New(flow Flow) *Controller {
	return &Controller{flow: flow, state: StateIdle}
}

// State returns the current state for rendering.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Summary returns the pre-check summary once in StateConfirming, or ""
// when the check did not produce one (including when it failed).
func (c *Controller) Summary() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.summary
}

// Submit starts the flow. With no check, or a check reporting
// non-destructive, it saves immediately and returns to idle. A
// destructive result parks the controller in StateConfirming until
// Confirm or Cancel.
//
// A failing pre-check also parks in StateConfirming: when the controller
// cannot tell whether the mutation is destructive, it asks. The check
// error is logged, not returned, so the user still gets a prompt instead
// of a dead end.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateIdle {
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("cannot submit while %s", state)
	}
	if c.flow.Check == nil {
		c.state = StateSaving
		c.mu.Unlock()
		return c.save(ctx)
	}
	c.state = StateChecking
	c.mu.Unlock()

	destructive, summary, err := c.flow.Check(ctx)
	if err != nil {
		slog.Warn("pre-check failed, asking for confirmation", "error", err)
		c.mu.Lock()
		c.state = StateConfirming
		c.summary = ""
		c.mu.Unlock()
		return nil
	}

	c.mu.Lock()
	if !destructive {
		c.state = StateSaving
		c.mu.Unlock()
		return c.save(ctx)
	}
	c.state = StateConfirming
	c.summary = summary
	c.mu.Unlock()
	return nil
}

// Confirm runs the mutation after the user accepted the prompt. Only
// valid in StateConfirming.
func (c *Controller) Confirm(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateConfirming {
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("cannot confirm while %s", state)
	}
	c.state = StateSaving
	c.summary = ""
	c.mu.Unlock()
	return c.save(ctx)
}

// Cancel abandons a pending confirmation and returns to idle. Only valid
// in StateConfirming.
func (c *Controller) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateConfirming {
		return fmt.Errorf("cannot cancel while %s", c.state)
	}
	c.state = StateIdle
	c.summary = ""
	return nil
}

// save runs the mutation and always returns the controller to idle; the
// caller decides whether a failed save is worth resubmitting.
func (c *Controller) save(ctx context.Context) error {
	err := c.flow.Save(ctx)

	c.mu.Lock()
	c.state = StateIdle
	c.mu.Unlock()
	return err
}
