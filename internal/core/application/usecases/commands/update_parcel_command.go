package commands

import (
	"errors"

	"smartpack/internal/core/domain/model/parcel"
	"smartpack/internal/pkg/guard"
)

var ErrUpdateParcelCommandIsNotConstructed = errors.New(
	"UpdateParcelCommand must be created via NewUpdateParcelCommand constructor",
)

// UpdateParcelCommand represents a request to overwrite the parcel row
// identified by the path id with a full set of new field values. Unlike
// creation, the submitted status is stored verbatim; any member of the fixed
// set is reachable from any other.
type UpdateParcelCommand struct {
	parcelID int64
	parcel   *parcel.Parcel

	guard guard.ConstructorGuard
}

// NewUpdateParcelCommand validates the wire-level fields, including the size
// and status tags, and builds the replacement parcel aggregate. The returned
// error joins every independently failing field.
func NewUpdateParcelCommand(parcelID, customerID int64, recipientName, recipientPhoneNumber, recipientEmail,
	recipientCity string, recipientZipCode int, recipientAddress string, cashOnDelivery int,
	sizeTag, statusTag string,
) (UpdateParcelCommand, error) {
	p, err := parcel.New(customerID, recipientName, recipientPhoneNumber, recipientEmail,
		recipientCity, recipientZipCode, recipientAddress, cashOnDelivery, sizeTag, statusTag)
	if err != nil {
		return UpdateParcelCommand{}, err
	}

	return UpdateParcelCommand{
		parcelID: parcelID,
		parcel:   p,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateParcelCommandIsNotConstructed if validation fails.
func (c UpdateParcelCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelCommandIsNotConstructed)
}

// ParcelID returns the target identity taken from the request path.
func (c UpdateParcelCommand) ParcelID() int64 {
	return c.parcelID
}

// Parcel returns the validated replacement aggregate.
func (c UpdateParcelCommand) Parcel() *parcel.Parcel {
	return c.parcel
}
