// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models scanned straight from SQL, bypassing the
// aggregates; listing order is the store's natural (insertion) order.
package queries

// CustomerReadModel represents a customer row in the read model.
type CustomerReadModel struct {
	ID          int64
	Name        string
	PhoneNumber string
	Email       string
	City        string
	ZipCode     int
	Address     string
}

// ParcelReadModel represents a parcel row in the read model. Size and status
// are carried as their wire tags.
type ParcelReadModel struct {
	ID                   int64
	CustomerID           int64
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
