package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID                   uint64
	OrderNumber          string
	CustomerID           uint64
	GarmentTypeID        uint64
	CurrentStatusID      uint64
	ExpectedDeliveryDate time.Time
	ActualDeliveryDate   *time.Time
	IsUrgent             bool
	UrgencyMultiplier    decimal.Decimal
	SpecialInstructions  *string
	IsDeleted            bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// OrderWorkType attaches a catalog work type to an order with the charge
// snapshotted at booking time.
type OrderWorkType struct {
	ID          uint64
	OrderID     uint64
	WorkTypeID  uint64
	ExtraCharge decimal.Decimal

	// WorkTypeName is joined in on reads, never stored.
	WorkTypeName string
}

// OrderStatusHistory is one append-only record per accepted transition.
// Rows are never edited or deleted.
type OrderStatusHistory struct {
	ID           uint64
	OrderID      uint64
	FromStatusID uint64
	ToStatusID   uint64
	ChangedByID  uint64
	ChangeReason *string
	ChangedAt    time.Time
}
