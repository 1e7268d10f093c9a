package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SystemConfiguration is the singleton row of shop-wide billing parameters.
// Orders snapshot the urgency multiplier at creation, so editing this row
// never rewrites history.
type SystemConfiguration struct {
	ID                uint64
	ShopName          string
	TaxRate           decimal.Decimal
	UrgencyMultiplier decimal.Decimal
	InvoiceDueDays    int
	CurrencyCode      string
	UpdatedByID       *uint64
	UpdatedAt         time.Time
}
