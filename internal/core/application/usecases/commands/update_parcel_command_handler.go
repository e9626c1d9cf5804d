package commands

import (
	"context"

	"smartpack/internal/core/domain/model/parcel"
)

// UpdateParcelCommandHandler handles full overwrites of existing parcels.
// The target row is identified by the path id; a missing row is created with
// that id (upsert semantics, matching the store's save behavior).
type UpdateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewUpdateParcelCommandHandler creates a handler for parcel updates.
// Requires a ParcelUoWFactory for transactional persistence.
func NewUpdateParcelCommandHandler(uowFactory ParcelUoWFactory) UpdateParcelCommandHandler {
	return UpdateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel update command and returns the reloaded
// representation. The validated status is stored verbatim.
func (h *UpdateParcelCommandHandler) Handle(ctx context.Context, cmd UpdateParcelCommand) (*parcel.Parcel, error) {
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

	updated, err := uow.ParcelRepository().Update(ctx, cmd.ParcelID(), cmd.Parcel())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
