package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllParcelsQueryHandler retrieves every parcel row from the database.
type GetAllParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllParcelsQueryHandler creates a handler for parcel listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllParcelsQueryHandler(db *gorm.DB) GetAllParcelsQueryHandler {
	return GetAllParcelsQueryHandler{db: db}
}

// Handle executes the query. Parcels are returned in insertion order.
func (h GetAllParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetAllParcelsQuery,
) ([]ParcelReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
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
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := []ParcelReadModel{}
	for rows.Next() {
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
			return nil, err
		}
		parcels = append(parcels, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
