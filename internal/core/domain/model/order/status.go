package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	PENDING ──┬──> CONFIRMED ──> PREPARING ──> OUT_FOR_DELIVERY ──> DELIVERED
//	          ├──────────────────^
//	          └──> CANCELED <────┴──── (CONFIRMED and PREPARING may cancel too)
//
// PENDING is the sole initial state. DELIVERED and CANCELED are terminal.
// There are no self-loops: requesting the current status again is rejected.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Confirmed indicates the restaurant has accepted the order.
	Confirmed

	// Preparing indicates the restaurant is preparing the order.
	Preparing

	// OutForDelivery indicates the order has left the restaurant.
	OutForDelivery

	// Delivered indicates the order reached the consumer. Terminal.
	Delivered

	// Canceled indicates the order was canceled before delivery. Terminal.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Confirmed:      "CONFIRMED",
		Preparing:      "PREPARING",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Canceled:       "CANCELED",
	}
}

// getTransitions returns the authoritative transition table.
// A status missing from the map is terminal.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Confirmed, Preparing, Canceled},
		Confirmed:      {Preparing, Canceled},
		Preparing:      {OutForDelivery, Canceled},
		OutForDelivery: {Delivered},
	}
}

// StatusFromString parses the wire representation of a status
// (e.g. "PREPARING"). Returns a validation error for unknown names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined statuses.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, e.g. "OUT_FOR_DELIVERY".
// Invalid values render as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return len(getTransitions()[s]) == 0
}

// CanTransitionTo reports whether the change from s to target is allowed
// by the transition table. Self-transitions are never allowed.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the change from s to target and returns the new
// status. Returns an InvalidTransitionError carrying both statuses when the
// table does not allow the change.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
