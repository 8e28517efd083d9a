package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// Order represents one purchase transaction between a customer and a
// restaurant. It is the aggregate root managing the order lifecycle from
// creation through the role-scoped status state machine to a terminal state.
//
// Order follows these invariants:
//   - Must have valid unique identifiers for itself, its customer and its restaurant
//   - Must contain at least one line
//   - Total and expected duration are computed once, at creation, from the
//     menu item snapshot at that instant; later menu changes never
//     retroactively affect an existing order
//   - Status transitions follow the injected TransitionPolicy and stop at
//     terminal statuses
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the owning customer
	customerID kernel.UUID

	// restaurantID identifies the fulfilling restaurant
	restaurantID kernel.UUID

	// lines is the ordered collection of purchased items, frozen at creation
	lines []Line

	// status is the current state in the order lifecycle
	status Status

	// total is the frozen order price in minor currency units
	total int

	// expectedDuration is the frozen preparation time in seconds,
	// the maximum across line items
	expectedDuration int

	// expectedArrivalTime is the frozen travel estimate in seconds,
	// or 0 when estimation was unavailable
	expectedArrivalTime int

	// start is the creation timestamp
	start time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in pending status with validation. This is the
// only way to create a fresh order, ensuring all business invariants hold.
//
// The total, expected duration and expected arrival time are the frozen
// aggregates produced at creation: they are stored on the order and never
// recomputed from live menu data.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	lines []Line,
	total int,
	expectedDuration int,
	expectedArrivalTime int,
	start time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setLines(lines),
		o.setTotal(total),
		o.setExpectedDuration(expectedDuration),
		o.setExpectedArrivalTime(expectedArrivalTime),
		o.setStart(start),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status.
// It applies the same validation as NewOrder plus status validity, so corrupt
// rows surface as errors instead of invalid aggregates.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	lines []Line,
	status Status,
	total int,
	expectedDuration int,
	expectedArrivalTime int,
	start time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, restaurantID, lines, total, expectedDuration, expectedArrivalTime, start)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the fulfilling restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Lines returns a copy of the order's line items in their original order.
func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the frozen order total in minor currency units.
func (o *Order) Total() int {
	return o.total
}

// ExpectedDuration returns the frozen preparation time in seconds.
func (o *Order) ExpectedDuration() int {
	return o.expectedDuration
}

// ExpectedArrivalTime returns the frozen travel estimate in seconds,
// or 0 when estimation degraded.
func (o *Order) ExpectedArrivalTime() int {
	return o.expectedArrivalTime
}

// Start returns the order creation timestamp.
func (o *Order) Start() time.Time {
	return o.start
}

// OwnedBy reports whether the acting party owns this order: customers own
// through a customer-id match, restaurants through a restaurant-id match.
// Unauthenticated actors own nothing.
func (o *Order) OwnedBy(actor kernel.Actor) bool {
	switch {
	case actor.IsCustomer():
		return o.customerID.IsEqual(actor.ID())
	case actor.IsRestaurant():
		return o.restaurantID.IsEqual(actor.ID())
	default:
		return false
	}
}

// Transition moves the order to the requested status on behalf of the actor,
// enforcing the injected policy.
//
// Business rules:
//   - Role-less actors are rejected before the transition table is consulted
//   - Terminal statuses permit no further transitions
//   - The requested status must be in the policy's allowed-next set for the
//     actor's role and the order's current status
//
// On rejection the returned *InvalidTransitionError carries the current
// status and the full allowed-next set for the actor's role, so callers can
// present the remaining options without a second round trip. On success only
// the status field changes.
//
// Ownership is not checked here; callers resolve ownership before invoking
// the state machine so that "not owned" and "not found" stay indistinguishable.
func (o *Order) Transition(actor kernel.Actor, requested Status, policy TransitionPolicy) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if !actor.IsCustomer() && !actor.IsRestaurant() {
		return ErrActorHasNoRole
	}

	if err := requested.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return &InvalidTransitionError{Current: o.status, Requested: requested}
	}

	allowed := policy.AllowedNext(actor.Role(), o.status)
	if !policy.Allows(actor.Role(), o.status, requested) {
		return &InvalidTransitionError{Current: o.status, Requested: requested, Allowed: allowed}
	}

	o.status = requested
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

// setLines validates and copies the order's line items.
// An order must contain at least one line.
func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = append([]Line(nil), lines...)
	return nil
}

func (o *Order) setTotal(total int) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%d is negative", total))
	}
	o.total = total
	return nil
}

func (o *Order) setExpectedDuration(seconds int) error {
	if seconds < 0 {
		return errs.NewValueIsInvalidErrorWithCause("expected duration",
			fmt.Errorf("%d is negative", seconds))
	}
	o.expectedDuration = seconds
	return nil
}

func (o *Order) setExpectedArrivalTime(seconds int) error {
	if seconds < 0 {
		return errs.NewValueIsInvalidErrorWithCause("expected arrival time",
			fmt.Errorf("%d is negative", seconds))
	}
	o.expectedArrivalTime = seconds
	return nil
}

func (o *Order) setStart(start time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("start")
	}
	o.start = start
	return nil
}
