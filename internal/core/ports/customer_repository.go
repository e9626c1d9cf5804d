// Package ports defines repository interfaces for the parcel service domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"smartpack/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer and returns the reloaded aggregate with its
	// store-assigned identity populated.
	Add(ctx context.Context, aggregate *customer.Customer) (*customer.Customer, error)

	// Update overwrites the row identified by id with the aggregate's fields,
	// ignoring any identity carried by the aggregate itself, and returns the
	// reloaded aggregate. A row that does not exist yet is created with the
	// given id (full-overwrite upsert semantics).
	Update(ctx context.Context, id int64, aggregate *customer.Customer) (*customer.Customer, error)

	// Get retrieves a customer by its identifier.
	// Returns errs.ObjectNotFoundError when no such row exists.
	Get(ctx context.Context, id int64) (*customer.Customer, error)

	// Delete removes a customer by its identifier.
	// Returns errs.ObjectNotFoundError when no such row exists.
	Delete(ctx context.Context, id int64) error
}
