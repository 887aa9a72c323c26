// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "fmt"

// MatchStatus is the lifecycle state of a job match on the dashboard.
type MatchStatus string

const (
	MatchNew     MatchStatus = "new"
	MatchViewed  MatchStatus = "viewed"
	MatchSaved   MatchStatus = "saved"
	MatchDeleted MatchStatus = "deleted"
)

// ParseMatchStatus converts a raw string to a MatchStatus, returning an
// error for unknown values.
func ParseMatchStatus(s string) (MatchStatus, error) {
	st := MatchStatus(s)
	switch st {
	case MatchNew, MatchViewed, MatchSaved, MatchDeleted:
		return st, nil
	}
	return "", fmt.Errorf("unknown match status %q", s)
}

// PipelineStatus is the application-pipeline state of a job tracked inside
// a campaign.
//
// Valid status graph:
//
//	new ──► saved ──► applied ──► interview ──► hired
//	  │        │          │            │
//	  └────────┴──────────┴────────────┴──► rejected
//
// new may also move straight to applied (apply without saving first).
// hired and rejected are terminal.
type PipelineStatus string

const (
	PipelineNew       PipelineStatus = "new"
	PipelineSaved     PipelineStatus = "saved"
	PipelineApplied   PipelineStatus = "applied"
	PipelineInterview PipelineStatus = "interview"
	PipelineRejected  PipelineStatus = "rejected"
	PipelineHired     PipelineStatus = "hired"
)

// pipelineTransitions lists every allowed (from → to) pair.
var pipelineTransitions = map[PipelineStatus][]PipelineStatus{
	PipelineNew:       {PipelineSaved, PipelineApplied, PipelineRejected},
	PipelineSaved:     {PipelineApplied, PipelineRejected},
	PipelineApplied:   {PipelineInterview, PipelineRejected},
	PipelineInterview: {PipelineHired, PipelineRejected},
	// hired and rejected have no outgoing edges; moves out of them are
	// off-path and need confirmation
}

// ParsePipelineStatus converts a raw string to a PipelineStatus, returning
// an error for unknown values.
func ParsePipelineStatus(s string) (PipelineStatus, error) {
	st := PipelineStatus(s)
	switch st {
	case PipelineNew, PipelineSaved, PipelineApplied, PipelineInterview, PipelineRejected, PipelineHired:
		return st, nil
	}
	return "", fmt.Errorf("unknown pipeline status %q", s)
}

// NextPipelineStatuses returns the statuses reachable from the given state,
// in display order. Used by the campaign-detail view to offer moves.
func NextPipelineStatuses(from PipelineStatus) []PipelineStatus {
	return pipelineTransitions[from]
}

// PipelineTransitionAllowed returns true when moving from → to is permitted.
func PipelineTransitionAllowed(from, to PipelineStatus) bool {
	for _, s := range pipelineTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// PipelineTerminal reports whether a status has no outgoing transitions.
func PipelineTerminal(s PipelineStatus) bool {
	return len(pipelineTransitions[s]) == 0
}
