package commands

import (
	"errors"

	"smartpack/internal/pkg/guard"
)

var ErrDeleteCustomerCommandIsNotConstructed = errors.New(
	"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
)

// DeleteCustomerCommand represents a request to remove a customer together
// with every parcel it owns.
type DeleteCustomerCommand struct {
	customerID int64

	guard guard.ConstructorGuard
}

// NewDeleteCustomerCommand creates a command to remove the customer with the
// given identity. Whether the customer exists is decided by the store at
// execution time.
func NewDeleteCustomerCommand(customerID int64) DeleteCustomerCommand {
	return DeleteCustomerCommand{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteCustomerCommandIsNotConstructed if validation fails.
func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

// CustomerID returns the identity of the customer to remove.
func (c DeleteCustomerCommand) CustomerID() int64 {
	return c.customerID
}
