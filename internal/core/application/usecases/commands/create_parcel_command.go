package commands

import (
	"errors"

	"smartpack/internal/core/domain/model/parcel"
	"smartpack/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a request to register a new parcel for a
// customer. Any identity sent by the client is ignored, and whatever status
// the client submitted is replaced with NEW by the handler. The submitted
// tag only has to be a member of the fixed set to pass validation.
type CreateParcelCommand struct {
	parcel *parcel.Parcel

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand validates the wire-level fields, including the size
// and status tags, and builds the parcel aggregate to be persisted. The
// returned error joins every independently failing field.
func NewCreateParcelCommand(customerID int64, recipientName, recipientPhoneNumber, recipientEmail,
	recipientCity string, recipientZipCode int, recipientAddress string, cashOnDelivery int,
	sizeTag, statusTag string,
) (CreateParcelCommand, error) {
	p, err := parcel.New(customerID, recipientName, recipientPhoneNumber, recipientEmail,
		recipientCity, recipientZipCode, recipientAddress, cashOnDelivery, sizeTag, statusTag)
	if err != nil {
		return CreateParcelCommand{}, err
	}

	return CreateParcelCommand{
		parcel: p,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// Parcel returns the validated, not-yet-persisted parcel aggregate.
func (c CreateParcelCommand) Parcel() *parcel.Parcel {
	return c.parcel
}
