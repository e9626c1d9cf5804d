package queries

import (
	"context"

	"smartpack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerQueryHandler retrieves a single customer row from the database.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates a handler for single-customer queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no
// customer with the given identity exists.
func (h GetCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerQuery,
) (CustomerReadModel, error) {
	if err := query.Validate(); err != nil {
		return CustomerReadModel{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone_number,
			email,
			city,
			zip_code,
			address
		FROM customer
		WHERE id = ?
	`, query.CustomerID()).Rows()
	if err != nil {
		return CustomerReadModel{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CustomerReadModel{}, err
		}
		return CustomerReadModel{}, errs.NewObjectNotFoundError("customerId", query.CustomerID())
	}

	var c CustomerReadModel
	err = rows.Scan(
		&c.ID,
		&c.Name,
		&c.PhoneNumber,
		&c.Email,
		&c.City,
		&c.ZipCode,
		&c.Address,
	)
	if err != nil {
		return CustomerReadModel{}, err
	}

	return c, nil
}
