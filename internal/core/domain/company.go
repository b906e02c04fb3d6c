package domain

// Company represents a business that issues invoices.
type Company struct {
	Code        string // Primary Key, immutable once created
	Name        string
	Description *string // nil when stored as NULL
	// InvoiceIDs is only populated on single-company reads.
	InvoiceIDs []int64
}

// CompanyUpdate carries the mutable company fields. Nil fields are left unchanged.
type CompanyUpdate struct {
	Name        *string
	Description *string
}
