package commands

import (
	"errors"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrFailStaleOrdersCommandIsNotConstructed = errors.New(
	"FailStaleOrdersCommand must be created via NewFailStaleOrdersCommand constructor",
)

// FailStaleOrdersCommand triggers the sweep that fails orders left pending
// longer than the acceptance window. This batch operation is run
// periodically by a scheduler.
type FailStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	maxPendingAge time.Duration

	guard guard.ConstructorGuard
}

// NewFailStaleOrdersCommand creates a command to sweep stale pending orders.
// maxPendingAge is how long an order may stay pending before it is failed.
func NewFailStaleOrdersCommand(maxPendingAge time.Duration) (FailStaleOrdersCommand, error) {
	if maxPendingAge <= 0 {
		return FailStaleOrdersCommand{}, errs.NewValueIsRequiredError("maxPendingAge")
	}

	return FailStaleOrdersCommand{
		maxPendingAge: maxPendingAge,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FailStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrFailStaleOrdersCommandIsNotConstructed)
}

// MaxPendingAge returns the acceptance window.
func (c FailStaleOrdersCommand) MaxPendingAge() time.Duration {
	return c.maxPendingAge
}
