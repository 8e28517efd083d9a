package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with role-scoped transitions to ensure
// orders follow the correct business workflow.
//
// State transitions (actor performing each move in brackets):
//
//	pending ──[restaurant]──> accepted ──[restaurant]──> done ──[customer]──> recieved
//	   │                         │
//	   ├─[restaurant]─> failed   ├─[restaurant]─> failed
//	   └─[customer]──> canceled  └─[customer]──> canceled
//
// failed, recieved and canceled are terminal: no transition leaves them.
//
// Status is a value object that provides string representations for
// persistence and the wire contract. The wire spelling "recieved" is kept
// as-is because deployed clients depend on it.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is first created.
	// Orders in this status are waiting for the restaurant's decision.
	StatusPending

	// StatusAccepted indicates the restaurant has accepted the order
	// and preparation is under way.
	StatusAccepted

	// StatusDone indicates the restaurant has finished preparing the order.
	StatusDone

	// StatusFailed indicates the restaurant rejected or could not fulfil
	// the order. Terminal.
	StatusFailed

	// StatusRecieved indicates the customer confirmed receipt. Terminal.
	StatusRecieved

	// StatusCanceled indicates the customer withdrew the order before
	// completion. Terminal.
	StatusCanceled
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusPending:  "pending",
		StatusAccepted: "accepted",
		StatusDone:     "done",
		StatusFailed:   "failed",
		StatusRecieved: "recieved",
		StatusCanceled: "canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:  "pending",
		StatusAccepted: "accepted",
		StatusDone:     "done",
		StatusFailed:   "failed",
		StatusRecieved: "recieved",
		StatusCanceled: "canceled",
	}
}

// StatusFromString parses a wire status string into a Status value.
// Returns an error for unknown strings, including the empty string.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: pending, accepted, done, failed, recieved, canceled.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Terminal statuses are failed, recieved and canceled.
func (s Status) IsTerminal() bool {
	return s == StatusFailed || s == StatusRecieved || s == StatusCanceled
}

// IsCompleted reports whether the order reached the completed subset of
// its lifecycle. Only completed orders may be rated. The subset is
// {done, recieved}: preparation finished, with or without the customer's
// receipt confirmation.
func (s Status) IsCompleted() bool {
	return s == StatusDone || s == StatusRecieved
}
