// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
// This package implements the repository pattern for the customer domain aggregate, handling
// the conversion between domain entities and database representations.
package customerrepo

import (
	"smartpack/internal/core/domain/model/customer"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
// Identities are generated by the database on insert.
type CustomerDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	Name        string
	PhoneNumber string
	Email       string
	City        string
	ZipCode     int
	Address     string
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customer".
func (CustomerDTO) TableName() string {
	return "customer"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		PhoneNumber: aggregate.PhoneNumber(),
		Email:       aggregate.Email(),
		City:        aggregate.City(),
		ZipCode:     aggregate.ZipCode(),
		Address:     aggregate.Address(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
// Reconstructs the complete aggregate using Restore.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	return customer.Restore(
		dto.ID,
		dto.Name,
		dto.PhoneNumber,
		dto.Email,
		dto.City,
		dto.ZipCode,
		dto.Address,
	)
}
