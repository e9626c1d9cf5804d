package ports

import (
	"context"

	"smartpack/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel and returns the reloaded aggregate with its
	// store-assigned identity populated. The owning customer is not pre-checked;
	// a dangling reference fails at the store's foreign key constraint.
	Add(ctx context.Context, aggregate *parcel.Parcel) (*parcel.Parcel, error)

	// Update overwrites the row identified by id with the aggregate's fields,
	// ignoring any identity carried by the aggregate itself, and returns the
	// reloaded aggregate. A row that does not exist yet is created with the
	// given id (full-overwrite upsert semantics).
	Update(ctx context.Context, id int64, aggregate *parcel.Parcel) (*parcel.Parcel, error)

	// Get retrieves a parcel by its identifier.
	// Returns errs.ObjectNotFoundError when no such row exists.
	Get(ctx context.Context, id int64) (*parcel.Parcel, error)

	// Delete removes a parcel by its identifier.
	// Returns errs.ObjectNotFoundError when no such row exists.
	Delete(ctx context.Context, id int64) error

	// DeleteByCustomerID removes every parcel owned by the given customer.
	// Removing zero rows is not an error.
	DeleteByCustomerID(ctx context.Context, customerID int64) error
}
