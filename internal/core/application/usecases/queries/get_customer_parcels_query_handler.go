package queries

import (
	"context"

	"smartpack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerParcelsQueryHandler retrieves the parcels of one customer.
type GetCustomerParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerParcelsQueryHandler creates a handler for per-customer
// parcel listing queries. Requires a GORM database connection for query
// execution.
func NewGetCustomerParcelsQueryHandler(db *gorm.DB) GetCustomerParcelsQueryHandler {
	return GetCustomerParcelsQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the
// customer does not exist. A customer without parcels yields an empty slice.
func (h GetCustomerParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerParcelsQuery,
) ([]ParcelReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var customerExists bool
	err := h.db.WithContext(ctx).Raw(
		"SELECT EXISTS (SELECT 1 FROM customer WHERE id = ?)", query.CustomerID(),
	).Scan(&customerExists).Error
	if err != nil {
		return nil, err
	}
	if !customerExists {
		return nil, errs.NewObjectNotFoundError("customerId", query.CustomerID())
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
		WHERE customer_id = ?
		ORDER BY id
	`, query.CustomerID()).Rows()
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
