// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
// This package implements the repository pattern for the parcel domain aggregate, handling
// the conversion between domain entities and database representations.
package parcelrepo

import (
	"errors"

	"smartpack/internal/adapters/out/postgres/customerrepo"
	"smartpack/internal/core/domain/model/parcel"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The customer reference carries a foreign key with cascading delete so a
// customer's parcels are removed together with the customer at the database
// level as well.
type ParcelDTO struct {
	ID                   int64                    `gorm:"primaryKey;autoIncrement"`
	CustomerID           int64                    `gorm:"index"`
	Customer             customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	RecipientName        string
	RecipientPhoneNumber string
	RecipientEmail       string
	RecipientCity        string
	RecipientZipCode     int
	RecipientAddress     string
	CashOnDelivery       int
	ParcelSize           string
	Status               string
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcel".
func (ParcelDTO) TableName() string {
	return "parcel"
}

// fromDomain converts a parcel domain aggregate to its database representation.
// Size and status are stored as their string tags.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:                   aggregate.ID(),
		CustomerID:           aggregate.CustomerID(),
		RecipientName:        aggregate.RecipientName(),
		RecipientPhoneNumber: aggregate.RecipientPhoneNumber(),
		RecipientEmail:       aggregate.RecipientEmail(),
		RecipientCity:        aggregate.RecipientCity(),
		RecipientZipCode:     aggregate.RecipientZipCode(),
		RecipientAddress:     aggregate.RecipientAddress(),
		CashOnDelivery:       aggregate.CashOnDelivery(),
		ParcelSize:           aggregate.Size().String(),
		Status:               aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
// Reconstructs the complete aggregate using Restore.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	size, sizeErr := parcel.SizeFromTag(dto.ParcelSize)
	status, statusErr := parcel.StatusFromTag(dto.Status)
	if err := errors.Join(sizeErr, statusErr); err != nil {
		return nil, err
	}

	return parcel.Restore(
		dto.ID,
		dto.CustomerID,
		dto.RecipientName,
		dto.RecipientPhoneNumber,
		dto.RecipientEmail,
		dto.RecipientCity,
		dto.RecipientZipCode,
		dto.RecipientAddress,
		dto.CashOnDelivery,
		size,
		status,
	)
}
