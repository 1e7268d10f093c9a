package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderBill holds the derived price breakdown for an order. Every field
// except AdvanceAmount is recomputed by billing derivation; nothing here is
// hand-edited. At most one bill exists per order.
type OrderBill struct {
	ID                uint64
	OrderID           uint64
	BaseGarmentPrice  decimal.Decimal
	WorkTypeCharges   decimal.Decimal
	AlterationCharges decimal.Decimal
	UrgencySurcharge  decimal.Decimal
	Subtotal          decimal.Decimal
	TaxRate           decimal.Decimal
	TaxAmount         decimal.Decimal
	TotalAmount       decimal.Decimal
	AdvanceAmount     decimal.Decimal
	BalanceAmount     decimal.Decimal
	GeneratedAt       time.Time
	UpdatedAt         time.Time
}

// Invoice is the immutable customer-facing document for a bill, with
// customer details snapshotted at issue time.
type Invoice struct {
	ID            uint64
	InvoiceNumber string
	BillID        uint64
	OrderID       uint64
	InvoiceDate   time.Time
	DueDate       time.Time
	CustomerName  string
	CustomerPhone string
	Status        string
	GeneratedByID uint64
	IssuedAt      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
