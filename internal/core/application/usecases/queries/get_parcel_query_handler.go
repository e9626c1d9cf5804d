package queries

import (
	"context"

	"smartpack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelQueryHandler retrieves a single parcel row from the database.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for single-parcel queries.
// Requires a GORM database connection for query execution.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no
// parcel with the given identity exists.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (ParcelReadModel, error) {
	if err := query.Validate(); err != nil {
		return ParcelReadModel{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			recipient_name,
			recipient_phone_number,
			recipient_email,
			recipient_city,
			recipient_zip_code,
			recipient_address,
			cash_on_delivery,
			parcel_size,
			status
		FROM parcel
		WHERE id = ?
	`, query.ParcelID()).Rows()
	if err != nil {
		return ParcelReadModel{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ParcelReadModel{}, err
		}
		return ParcelReadModel{}, errs.NewObjectNotFoundError("parcelId", query.ParcelID())
	}

	var p ParcelReadModel
	err = rows.Scan(
		&p.ID,
		&p.CustomerID,
		&p.RecipientName,
		&p.RecipientPhoneNumber,
		&p.RecipientEmail,
		&p.RecipientCity,
		&p.RecipientZipCode,
		&p.RecipientAddress,
		&p.CashOnDelivery,
		&p.ParcelSize,
		&p.Status,
	)
	if err != nil {
		return ParcelReadModel{}, err
	}

	return p, nil
}
