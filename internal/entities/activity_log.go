package entities

import "time"

// ActivityLog is one append-only audit record of a state-changing action.
type ActivityLog struct {
	ID         uint64
	ActorID    uint64
	Action     string
	EntityType string
	EntityID   uint64
	Details    *string
	CreatedAt  time.Time
}
