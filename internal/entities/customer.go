package entities

import "time"

type Customer struct {
	ID        uint64
	FullName  string
	Phone     string
	Email     *string
	Address   *string
	Notes     *string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Measurement is one named measurement value for a customer, versioned by
// TakenAt so older records stay available for reference.
type Measurement struct {
	ID         uint64
	CustomerID uint64
	Name       string
	Value      string
	Unit       string
	TakenAt    time.Time
	TakenByID  uint64
}
