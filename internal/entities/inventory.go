package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Fabric struct {
	ID             uint64
	Name           string
	Color          *string
	Material       *string
	PricePerUnit   decimal.Decimal
	Unit           string
	QuantityOnHand decimal.Decimal
	ReorderLevel   decimal.Decimal
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StockMovement is one append-only ledger entry against a fabric. Quantity is
// always positive; Kind decides the sign applied to the on-hand balance.
type StockMovement struct {
	ID           uint64
	FabricID     uint64
	Kind         string
	Quantity     decimal.Decimal
	Reason       *string
	OrderID      *uint64
	RecordedByID uint64
	RecordedAt   time.Time
}

// MaterialAllocation reserves fabric for an order when it enters the
// fabric allocation stage.
type MaterialAllocation struct {
	ID            uint64
	OrderID       uint64
	FabricID      uint64
	Quantity      decimal.Decimal
	AllocatedByID uint64
	AllocatedAt   time.Time
}
