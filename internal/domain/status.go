// Package domain contains the pure approval-core types and rules: status
// resolution, policy-band matching, item-ledger arithmetic, and the edit
// guard. Nothing in this package touches storage or transport.
package domain

// Status is the aggregate state of a purchase request.
type Status string

// Aggregate request states. APPROVED and REJECTED are terminal: a request
// never returns to PENDING through normal operation (administrative step
// deletion is the one sanctioned exception).
const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Terminal reports whether the status freezes the request.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Decision is a single approver's verdict at one level.
type Decision string

// Step decisions. There is no pending decision: a step exists only once it
// carries a final verdict, and is immutable from then on.
const (
	DecisionApproved Decision = "APPROVED"
	DecisionRejected Decision = "REJECTED"
)

// Valid reports whether d is a known decision value.
func (d Decision) Valid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// ResolveStatus recomputes a request's aggregate status from its full step
// set. The input is a set, not a sequence: the result is independent of step
// order and of the levels the decisions were recorded at.
//
// Rules, in priority order:
//  1. any REJECTED step → REJECTED (first-rejected-wins, a single rejection
//     at any level is terminal)
//  2. approved count >= requiredLevels → APPROVED
//  3. otherwise → PENDING (including the empty set)
//
// Recomputing from scratch rather than incrementally keeps the status
// consistent after administrative deletions and out-of-order corrections.
func ResolveStatus(requiredLevels int, decisions []Decision) Status {
	approved := 0
	for _, d := range decisions {
		switch d {
		case DecisionRejected:
			return StatusRejected
		case DecisionApproved:
			approved++
		}
	}
	if requiredLevels > 0 && approved >= requiredLevels {
		return StatusApproved
	}
	return StatusPending
}

// NextLevel returns the level the next approval step must take: one past the
// highest recorded level, starting at 1. Levels are gapless and never reused,
// so deletions do not free levels for reassignment.
func NextLevel(existing []int) int {
	max := 0
	for _, l := range existing {
		if l > max {
			max = l
		}
	}
	return max + 1
}
