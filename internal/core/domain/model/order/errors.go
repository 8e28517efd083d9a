package order

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")

	// ErrLineIsNotConstructed is returned when a Line instance was not created
	// through the NewLine factory method.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

	// ErrInvalidTransition classifies state machine violations for errors.Is.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrActorHasNoRole is returned when a role-less actor attempts a transition.
	// Such actors are rejected before the transition table is consulted.
	ErrActorHasNoRole = errors.New("actor has no role to transition orders")
)

// InvalidTransitionError reports a rejected status transition. It always
// carries the order's current status and the full set of statuses the acting
// role could move it to, so callers can self-correct without a second round
// trip. For terminal statuses Allowed is empty.
type InvalidTransitionError struct {
	Current   Status
	Requested Status
	Allowed   []Status
}

func (e *InvalidTransitionError) Error() string {
	if e.Current.IsTerminal() {
		return fmt.Sprintf("order can no longer be modified: status is %s", e.Current)
	}

	names := make([]string, len(e.Allowed))
	for i, status := range e.Allowed {
		names[i] = status.String()
	}
	return fmt.Sprintf("cannot transition order from %s to %s, allowed: [%s]",
		e.Current, e.Requested, strings.Join(names, ", "))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
