package commands

import (
	"errors"

	"smartpack/internal/core/domain/model/customer"
	"smartpack/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a request to overwrite the customer row
// identified by the path id with a full set of new field values. Whatever id
// the body carried is discarded in favor of the path id.
type UpdateCustomerCommand struct {
	customerID int64
	customer   *customer.Customer

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand validates the wire-level fields and builds the
// replacement customer aggregate. The returned error joins every
// independently failing field.
func NewUpdateCustomerCommand(customerID int64, name, phoneNumber, email, city string, zipCode int, address string,
) (UpdateCustomerCommand, error) {
	c, err := customer.New(name, phoneNumber, email, city, zipCode, address)
	if err != nil {
		return UpdateCustomerCommand{}, err
	}

	return UpdateCustomerCommand{
		customerID: customerID,
		customer:   c,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateCustomerCommandIsNotConstructed if validation fails.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the target identity taken from the request path.
func (c UpdateCustomerCommand) CustomerID() int64 {
	return c.customerID
}

// Customer returns the validated replacement aggregate.
func (c UpdateCustomerCommand) Customer() *customer.Customer {
	return c.customer
}
