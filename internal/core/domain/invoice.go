package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents an amount billed to a company.
type Invoice struct {
	ID       int64  // Assigned by the database
	CompCode string // Owning company, immutable
	Amt      decimal.Decimal
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time
	// Company is populated by reads that join the owning company.
	Company *Company
}

// InvoiceUpdate carries the mutable invoice fields. Only the amount can change.
type InvoiceUpdate struct {
	Amt *decimal.Decimal
}
