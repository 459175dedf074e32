package app

import "github.com/shopspring/decimal"

// ListInventoryRequest carries the three grid predicates as raw query values.
// Empty strings mean "match everything".
type ListInventoryRequest struct {
	Search   string
	Category string
	Stock    string
}

// ItemInput is the full record supplied on add and update. Partial updates
// are not supported.
type ItemInput struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	ReorderLevel int             `json:"reorderLevel"`
	Image        string          `json:"image"`
}

// SignupRequest is the input for owner account creation. Name is optional.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}
