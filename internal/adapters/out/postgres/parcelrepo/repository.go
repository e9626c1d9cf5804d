package parcelrepo

import (
	"context"
	"errors"

	"smartpack/internal/core/domain/model/parcel"
	"smartpack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database. The identity supplied by the
// caller is discarded and a fresh one is generated on insert. Returns the
// persisted aggregate with its generated identity. The customer association
// is omitted so the referenced customer row is never touched.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) (*parcel.Parcel, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return nil, err
	}

	created, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(created.ID(), created)
	return created, nil
}

// Update saves a parcel under the given identity, inserting the row when
// it does not exist yet. Returns the persisted aggregate.
func (r *GormParcelRepository) Update(ctx context.Context, id int64, aggregate *parcel.Parcel) (*parcel.Parcel, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	dto.ID = id
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(&dto).Error; err != nil {
		return nil, err
	}

	updated, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(updated.ID(), updated)
	return updated, nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id int64) (*parcel.Parcel, error) {
	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcelId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a parcel by ID. Returns errs.ObjectNotFoundError when
// no row matches.
func (r *GormParcelRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&ParcelDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcelId", id)
	}

	return nil
}

// DeleteByCustomerID removes every parcel registered for the given customer.
// A customer without parcels is not an error.
func (r *GormParcelRepository) DeleteByCustomerID(ctx context.Context, customerID int64) error {
	return r.db.WithContext(ctx).Delete(&ParcelDTO{}, "customer_id = ?", customerID).Error
}
