package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
// UUIDs must be created using one of the constructor functions to ensure
// validity.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes constructors")

// UUID identifies every entity and aggregate in the system: orders, order
// lines, restaurants, menu items, ratings, and the profiles actors act
// through. It wraps github.com/google/uuid as an immutable value object; the
// zero value is invalid and will fail validation - use constructors to create
// instances.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	parsed, err := kernel.UUIDFromString(ctx.Param("id"))
//	if err != nil {
//	    // Handle malformed identifier
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random identifier (UUID version 4).
// This is the only way new entities receive their identity.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses an identifier from its textual representation, as
// received in request paths and identity headers. Returns an error wrapping
// ErrValueIsInvalid for anything that is not a well-formed UUID.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w",
			errs.NewValueIsInvalidErrorWithCause("uuid", err))
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes reconstructs an identifier from its 16-byte binary form, as
// read back from database columns. The nil UUID is rejected the same way the
// zero value is.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w",
			errs.NewValueIsInvalidErrorWithCause("uuid", err))
	}

	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
// Implements fmt.Stringer.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID, for handing identifiers to storage
// DTO columns without a round trip through text.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two identifiers for equality.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate checks if the UUID was properly constructed using a constructor.
// The zero value (the nil UUID) is invalid and will fail this validation.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
