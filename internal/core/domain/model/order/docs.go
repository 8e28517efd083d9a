// Package order implements the order aggregate and its lifecycle state machine.
//
// An Order freezes its pricing and duration aggregates at creation time and
// thereafter changes only through role-scoped status transitions governed by
// an injected TransitionPolicy. Terminal statuses (failed, recieved, canceled)
// permit no further transitions.
//
// The package contains:
//   - Order: the aggregate root with frozen total, duration and arrival estimate
//   - Line: an immutable order line with the unit price captured at order time
//   - Status: the lifecycle enumeration with wire string representations
//   - TransitionPolicy: the immutable role-scoped transition table
package order
