package batch

import (
	"fmt"

	"exchange/internal/pkg/errs"
)

// Status represents the lifecycle state of a tradable batch.
// It implements a state machine with defined transitions to keep the physical
// item consistent with the exchange orders that reference it.
//
// State transitions:
//
//	Available ──> Reserved ──> Collected (terminal)
//	    │  ▲          │
//	    │  └──────────┤
//	    ▼             ▼
//	Cancelled ──> Available
//	(reactivation only)
//
// The transition table below is the single authoritative place where these
// rules live; every status change in the system, administrative overrides
// included, is validated against it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available is the initial status: the batch can be requested and reserved.
	Available

	// Reserved indicates an accepted exchange order currently holds the batch.
	// Exactly one order may hold a batch in Reserved at a time.
	Reserved

	// Collected indicates the batch has been physically handed over.
	// This is a terminal state: no transition leaves it, not even an
	// administrative override.
	Collected

	// Cancelled indicates the owner withdrew the batch. A cancelled batch can
	// only be reactivated back to Available.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Available: "Available",
		Reserved:  "Reserved",
		Collected: "Collected",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "Available",
		Reserved:  "Reserved",
		Collected: "Collected",
		Cancelled: "Cancelled",
	}
}

// getAllowedTransitions returns the authoritative transition table.
// A status missing from a row's slice is not reachable from that row.
// Collected has an empty row: it is terminal.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Available: {Reserved, Cancelled},
		Reserved:  {Collected, Cancelled, Available},
		Collected: {},
		Cancelled: {Available},
	}
}

// StatusFromString parses a status name as it appears in API payloads and
// audit entries. The match is exact; unknown names are invalid.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the four valid batch states.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return len(getAllowedTransitions()[s]) == 0 && s.Validate() == nil
}

// AllowedNextStatuses returns the statuses reachable from s, in table order.
// The result is a fresh slice; callers may mutate it freely. An invalid
// status has no reachable statuses.
func (s Status) AllowedNextStatuses() []Status {
	allowed := getAllowedTransitions()[s]
	next := make([]Status, len(allowed))
	copy(next, allowed)
	return next
}

// CanTransition reports whether the table permits moving from s to target.
// A same-status change is never a transition and always returns false.
func (s Status) CanTransition(target Status) bool {
	if target == s {
		return false
	}
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Transition validates the move from s to target against the table and
// returns the new status. Rejections come back as InvalidTransitionError so
// callers can distinguish rule violations from other failures.
func (s Status) Transition(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransition(target) {
		return 0, errs.NewInvalidTransitionError("batch", s.String(), target.String())
	}
	return target, nil
}
