package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllCustomersQueryHandler retrieves all customer rows from the database.
// Uses direct SQL for the read side of the CQRS split.
type GetAllCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCustomersQueryHandler creates a handler for customer list queries.
// Requires a GORM database connection for query execution.
func NewGetAllCustomersQueryHandler(db *gorm.DB) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{db: db}
}

// Handle executes the query and returns customers in insertion order.
func (h GetAllCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCustomersQuery,
) ([]CustomerReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]CustomerReadModel, 0)

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
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
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
			return nil, err
		}
		customers = append(customers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
