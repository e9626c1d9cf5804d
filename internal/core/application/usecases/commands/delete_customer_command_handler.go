package commands

import (
	"context"
)

// DeleteCustomerCommandHandler removes a customer and cascades to its parcels.
// Both deletes happen inside one transaction, so the cascade is atomic from
// the caller's perspective: either the customer and all of its parcels are
// gone, or nothing changed.
type DeleteCustomerCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteCustomerCommandHandler creates a handler for the customer delete cascade.
// Requires a UoWFactory spanning both repositories.
func NewDeleteCustomerCommandHandler(uowFactory UoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the customer's parcels and then the customer itself.
// A missing customer surfaces as errs.ObjectNotFoundError and rolls the
// parcel delete back.
func (h *DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ParcelRepository().DeleteByCustomerID(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	if err := uow.CustomerRepository().Delete(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
