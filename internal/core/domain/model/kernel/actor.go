package kernel

import (
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when validating a zero-value Actor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via ActorCustomer, ActorRestaurant, or UnauthenticatedActor constructors")

// Role identifies the capability an authenticated caller holds.
type Role int

const (
	// RoleUnauthenticated marks a caller without any resolved profile.
	RoleUnauthenticated Role = iota

	// RoleCustomer marks a caller acting through a customer profile.
	RoleCustomer

	// RoleRestaurant marks a caller acting through a restaurant profile.
	RoleRestaurant
)

// String returns the human-readable name of the role.
func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleRestaurant:
		return "restaurant"
	default:
		return "unauthenticated"
	}
}

// Actor is a closed variant describing who is performing a request:
// a customer, a restaurant, or nobody at all. The identity is resolved once
// per request by the inbound adapter and passed explicitly into every command,
// so domain code never probes attribute presence to discover a caller's role.
//
// The zero value is invalid; use one of the three constructors.
//
// Example:
//
//	actor := kernel.ActorCustomer(customerID)
//	if !actor.IsCustomer() {
//	    return errs.NewValueIsInvalidError("actor")
//	}
type Actor struct {
	role  Role
	id    UUID
	guard guard.ConstructorGuard
}

// ActorCustomer creates an actor holding the customer capability for the given
// customer profile id.
func ActorCustomer(id UUID) Actor {
	return Actor{role: RoleCustomer, id: id, guard: guard.NewConstructorGuard()}
}

// ActorRestaurant creates an actor holding the restaurant capability for the
// given restaurant profile id.
func ActorRestaurant(id UUID) Actor {
	return Actor{role: RoleRestaurant, id: id, guard: guard.NewConstructorGuard()}
}

// UnauthenticatedActor creates an actor with no role. Commands reject it before
// consulting any transition table or repository.
func UnauthenticatedActor() Actor {
	return Actor{role: RoleUnauthenticated, guard: guard.NewConstructorGuard()}
}

// Validate checks if the Actor was created through a constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// Role returns the capability the actor holds.
func (a Actor) Role() Role {
	return a.role
}

// IsCustomer reports whether the actor holds the customer capability.
func (a Actor) IsCustomer() bool {
	return a.role == RoleCustomer
}

// IsRestaurant reports whether the actor holds the restaurant capability.
func (a Actor) IsRestaurant() bool {
	return a.role == RoleRestaurant
}

// ID returns the profile id the actor acts through. For unauthenticated actors
// the returned UUID is the zero value and fails validation.
func (a Actor) ID() UUID {
	return a.id
}
