package commands

import (
	"errors"

	"smartpack/internal/pkg/guard"
)

var ErrDeleteParcelCommandIsNotConstructed = errors.New(
	"DeleteParcelCommand must be created via NewDeleteParcelCommand constructor",
)

// DeleteParcelCommand represents a request to remove a single parcel.
type DeleteParcelCommand struct {
	parcelID int64

	guard guard.ConstructorGuard
}

// NewDeleteParcelCommand creates a command to remove the parcel with the
// given identity. Whether the parcel exists is decided by the store at
// execution time.
func NewDeleteParcelCommand(parcelID int64) DeleteParcelCommand {
	return DeleteParcelCommand{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteParcelCommandIsNotConstructed if validation fails.
func (c DeleteParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeleteParcelCommandIsNotConstructed)
}

// ParcelID returns the identity of the parcel to remove.
func (c DeleteParcelCommand) ParcelID() int64 {
	return c.parcelID
}
