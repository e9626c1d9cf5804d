package queries

import (
	"errors"

	"smartpack/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery retrieves a single parcel by identity.
type GetParcelQuery struct {
	parcelID int64

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a query for the parcel with the given identity.
func NewGetParcelQuery(parcelID int64) GetParcelQuery {
	return GetParcelQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelQueryIsNotConstructed if validation fails.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// ParcelID returns the identity of the parcel to load.
func (q GetParcelQuery) ParcelID() int64 {
	return q.parcelID
}
