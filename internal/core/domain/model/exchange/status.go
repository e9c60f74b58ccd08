package exchange

import (
	"fmt"

	"exchange/internal/pkg/errs"
)

// Status represents the lifecycle state of a bilateral exchange order.
//
// State transitions:
//
//	Pending ──┬──> Accepted ──┬──> Completed
//	          │        │      │
//	          ├──> Rejected   │
//	          │               │
//	          └──> Cancelled <┘
//
// Rejected, Cancelled, and Completed are terminal. Pending means the
// requester has asked for the item but the provider has not committed;
// the underlying batch is only reserved once the order is Accepted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the requester has asked for the item.
	Pending

	// Accepted indicates the provider committed the item to this order.
	Accepted

	// Rejected indicates the provider declined the request. Terminal.
	Rejected

	// Cancelled indicates a participant withdrew the order. Terminal.
	Cancelled

	// Completed indicates the physical exchange happened. Terminal, and the
	// only status from which ratings become possible.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		Rejected:  "Rejected",
		Cancelled: "Cancelled",
		Completed: "Completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		Rejected:  "Rejected",
		Cancelled: "Cancelled",
		Completed: "Completed",
	}
}

// Validate checks if the Status value is one of the five valid order states.
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

// IsTerminal reports whether the order can never change status again.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Cancelled || s == Completed
}

// IsCancellable reports whether a participant may still withdraw the order.
func (s Status) IsCancellable() bool {
	return s == Pending || s == Accepted
}
