package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trial is one scheduled fitting appointment for an order.
type Trial struct {
	ID            uint64
	OrderID       uint64
	ScheduledAt   time.Time
	Status        string
	Feedback      *string
	ScheduledByID uint64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Alteration is rework requested after a trial. Charge contributes to the
// order bill only once the alteration is approved and not marked as included
// in the original price.
type Alteration struct {
	ID                uint64
	OrderID           uint64
	TrialID           *uint64
	Description       string
	Charge            decimal.Decimal
	IsIncludedInPrice bool
	Status            string
	RequestedByID     uint64
	CompletedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
