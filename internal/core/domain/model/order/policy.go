package order

import (
	"sort"

	"foodorder/internal/core/domain/model/kernel"
)

// TransitionPolicy describes which status transitions each role may perform.
// It is immutable configuration data injected into the state machine rather
// than hardcoded, so alternate policies can be exercised in tests.
//
// A policy maps (role, current status) to the set of statuses the role may
// move the order to. Any pair absent from the policy permits nothing.
type TransitionPolicy struct {
	allowed map[kernel.Role]map[Status][]Status
}

// NewTransitionPolicy builds a policy from an explicit transition table.
// The table is copied defensively so callers cannot mutate the policy later.
func NewTransitionPolicy(table map[kernel.Role]map[Status][]Status) TransitionPolicy {
	copied := make(map[kernel.Role]map[Status][]Status, len(table))
	for role, byStatus := range table {
		copied[role] = make(map[Status][]Status, len(byStatus))
		for from, next := range byStatus {
			copied[role][from] = append([]Status(nil), next...)
		}
	}
	return TransitionPolicy{allowed: copied}
}

// DefaultTransitionPolicy returns the production transition table:
//
//	customer:   pending  -> canceled
//	            accepted -> canceled
//	            done     -> recieved
//	restaurant: pending  -> accepted, failed
//	            accepted -> done, failed
func DefaultTransitionPolicy() TransitionPolicy {
	return NewTransitionPolicy(map[kernel.Role]map[Status][]Status{
		kernel.RoleCustomer: {
			StatusPending:  {StatusCanceled},
			StatusAccepted: {StatusCanceled},
			StatusDone:     {StatusRecieved},
		},
		kernel.RoleRestaurant: {
			StatusPending:  {StatusAccepted, StatusFailed},
			StatusAccepted: {StatusDone, StatusFailed},
		},
	})
}

// AllowedNext returns the set of statuses the given role may move an order
// in the given status to. The result is a copy sorted by status value, so it
// is stable for error payloads and safe to hand out.
func (p TransitionPolicy) AllowedNext(role kernel.Role, from Status) []Status {
	byStatus, ok := p.allowed[role]
	if !ok {
		return nil
	}

	next := append([]Status(nil), byStatus[from]...)
	sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
	return next
}

// Allows reports whether the given role may transition an order from one
// status to another under this policy.
func (p TransitionPolicy) Allows(role kernel.Role, from Status, to Status) bool {
	for _, status := range p.AllowedNext(role, from) {
		if status == to {
			return true
		}
	}
	return false
}
