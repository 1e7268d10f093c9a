package entities

import "time"

// OrderStatus is an immutable row of the lifecycle status registry. Statuses
// are created at system setup and never mutated once referenced by orders.
type OrderStatus struct {
	ID          uint64
	Code        string
	Label       string
	Description string
	Sequence    int
	IsTerminal  bool
	CreatedAt   time.Time
}

// StatusTransition is one legal edge of the lifecycle graph. AllowedRoles is
// a proper set of role names (text[] in storage), Precondition optionally
// names a business rule that must hold before the edge may be taken.
type StatusTransition struct {
	ID           uint64
	FromStatusID uint64
	ToStatusID   uint64
	AllowedRoles []string
	Precondition *string
	Description  *string
}

// AllowsAnyRole reports whether the actor's role set intersects the edge's
// allowed roles. An edge with no roles configured is open to any actor.
func (t *StatusTransition) AllowsAnyRole(roles []string) bool {
	if len(t.AllowedRoles) == 0 {
		return true
	}
	for _, allowed := range t.AllowedRoles {
		for _, r := range roles {
			if r == allowed {
				return true
			}
		}
	}
	return false
}
