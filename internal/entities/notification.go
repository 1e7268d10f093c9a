package entities

import "time"

type Notification struct {
	ID         uint64
	UserID     uint64
	Title      string
	Message    string
	EntityType *string
	EntityID   *uint64
	IsRead     bool
	CreatedAt  time.Time
}
