package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// GarmentType is a catalog entry carrying the base stitching price and the
// default number of days the shop needs to produce it.
type GarmentType struct {
	ID            uint64
	Name          string
	Description   *string
	BasePrice     decimal.Decimal
	EstimatedDays int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// WorkType is an optional extra (embroidery, lining, monogram) with its own
// charge on top of the garment base price.
type WorkType struct {
	ID          uint64
	Name        string
	Description *string
	ExtraCharge decimal.Decimal
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GarmentWorkType marks a work type as applicable to a garment type and
// whether its charge is already included in the base price.
type GarmentWorkType struct {
	ID               uint64
	GarmentTypeID    uint64
	WorkTypeID       uint64
	IsIncludedInBase bool
}
