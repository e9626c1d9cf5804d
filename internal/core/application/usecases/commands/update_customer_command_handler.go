package commands

import (
	"context"

	"smartpack/internal/core/domain/model/customer"
)

// UpdateCustomerCommandHandler handles full overwrites of existing customers.
// The target row is identified by the path id; a missing row is created with
// that id (upsert semantics, matching the store's save behavior).
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer updates.
// Requires a CustomerUoWFactory for transactional persistence.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer update command and returns the reloaded
// representation.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	updated, err := uow.CustomerRepository().Update(ctx, cmd.CustomerID(), cmd.Customer())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
