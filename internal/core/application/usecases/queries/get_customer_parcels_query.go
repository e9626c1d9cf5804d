package queries

import (
	"errors"

	"smartpack/internal/pkg/guard"
)

var ErrGetCustomerParcelsQueryIsNotConstructed = errors.New(
	"GetCustomerParcelsQuery must be created via NewGetCustomerParcelsQuery constructor",
)

// GetCustomerParcelsQuery retrieves every parcel registered for one customer.
type GetCustomerParcelsQuery struct {
	customerID int64

	guard guard.ConstructorGuard
}

// NewGetCustomerParcelsQuery creates a query for the parcels of the customer
// with the given identity.
func NewGetCustomerParcelsQuery(customerID int64) GetCustomerParcelsQuery {
	return GetCustomerParcelsQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerParcelsQueryIsNotConstructed if validation fails.
func (q GetCustomerParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerParcelsQueryIsNotConstructed)
}

// CustomerID returns the identity of the customer whose parcels are loaded.
func (q GetCustomerParcelsQuery) CustomerID() int64 {
	return q.customerID
}
