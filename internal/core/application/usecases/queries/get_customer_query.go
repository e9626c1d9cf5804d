package queries

import (
	"errors"

	"smartpack/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// GetCustomerQuery retrieves a single customer by identity.
type GetCustomerQuery struct {
	customerID int64

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates a query for the customer with the given identity.
func NewGetCustomerQuery(customerID int64) GetCustomerQuery {
	return GetCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerQueryIsNotConstructed if validation fails.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// CustomerID returns the identity of the customer to load.
func (q GetCustomerQuery) CustomerID() int64 {
	return q.customerID
}
