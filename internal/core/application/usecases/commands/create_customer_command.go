package commands

import (
	"errors"

	"smartpack/internal/core/domain/model/customer"
	"smartpack/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new customer.
// Any identity sent by the client is ignored; the store assigns one.
//
// Example:
//
//	cmd, err := commands.NewCreateCustomerCommand(
//	    "Nagy Tibor", "+36201234567", "nagy.tibor@example.com",
//	    "Budapest", 1023, "Bem rakpart 16-19.")
//	if err != nil {
//	    // err joins one entry per violated field rule
//	}
type CreateCustomerCommand struct {
	customer *customer.Customer

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand validates the wire-level fields and builds the
// customer aggregate to be persisted. All field rules are checked before any
// store interaction; the returned error joins every independently failing
// field.
func NewCreateCustomerCommand(name, phoneNumber, email, city string, zipCode int, address string,
) (CreateCustomerCommand, error) {
	c, err := customer.New(name, phoneNumber, email, city, zipCode, address)
	if err != nil {
		return CreateCustomerCommand{}, err
	}

	return CreateCustomerCommand{
		customer: c,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCustomerCommandIsNotConstructed if validation fails.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// Customer returns the validated, not-yet-persisted customer aggregate.
func (c CreateCustomerCommand) Customer() *customer.Customer {
	return c.customer
}
