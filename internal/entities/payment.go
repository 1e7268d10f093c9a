package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMode struct {
	ID        uint64
	Code      string
	Name      string
	IsActive  bool
	CreatedAt time.Time
}

type Payment struct {
	ID            uint64
	OrderID       uint64
	InvoiceID     *uint64
	PaymentModeID uint64
	Amount        decimal.Decimal
	Status        string
	Reference     *string
	Notes         *string
	ReceivedByID  uint64
	PaidAt        time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
