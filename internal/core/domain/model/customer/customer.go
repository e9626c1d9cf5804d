// Package customer contains the Customer aggregate. A customer owns zero or
// more parcels; removing a customer removes its parcels as well (the cascade
// itself is coordinated by the delete command and the store).
package customer

import (
	"errors"

	"smartpack/internal/core/domain/model/kernel"
	"smartpack/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the New or Restore factory functions.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via New or Restore constructor")

// Customer represents a sender registered with the parcel service.
//
// Customer follows these invariants:
//   - name, email, city, zip code, and address satisfy the kernel rules
//   - phone number, when present, is a Hungarian mobile number
//   - the identity is assigned by the store and never changes afterwards
//   - can only be created through New (identity not yet assigned) or
//     Restore (identity known)
type Customer struct {
	id          int64
	name        string
	phoneNumber string
	email       string
	city        string
	zipCode     int
	address     string

	// isConstructed ensures the customer was created via New or Restore
	isConstructed bool
}

// New creates a Customer that has not been persisted yet; its ID is zero until
// the store assigns one. All field rules are checked and every violation is
// reported, joined into a single error, so callers can count the independently
// failing fields.
//
// Example:
//
//	c, err := customer.New("Nagy Tibor", "+36201234567", "nagy.tibor@example.com",
//	    "Budapest", 1023, "Bem rakpart 16-19.")
//	if err != nil {
//	    // err joins one entry per violated rule
//	}
func New(name, phoneNumber, email, city string, zipCode int, address string) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setName(name),
		c.setPhoneNumber(phoneNumber),
		c.setEmail(email),
		c.setCity(city),
		c.setZipCode(zipCode),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Restore reconstructs a persisted Customer, including its store-assigned
// identity. The same field rules apply as in New.
func Restore(id int64, name, phoneNumber, email, city string, zipCode int, address string) (*Customer, error) {
	c, err := New(name, phoneNumber, email, city, zipCode, address)
	if err != nil {
		return nil, err
	}

	if err := c.setID(id); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}

	return nil
}

// IsEqual compares two customers by their store-assigned identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id == other.id
}

// ID returns the store-assigned identifier, or zero for an unpersisted customer.
func (c *Customer) ID() int64 {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// PhoneNumber returns the customer's phone number, empty when absent.
func (c *Customer) PhoneNumber() string {
	return c.phoneNumber
}

// Email returns the customer's email address.
func (c *Customer) Email() string {
	return c.email
}

// City returns the customer's city.
func (c *Customer) City() string {
	return c.city
}

// ZipCode returns the customer's postal code.
func (c *Customer) ZipCode() int {
	return c.zipCode
}

// Address returns the customer's street address.
func (c *Customer) Address() string {
	return c.address
}

func (c *Customer) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if err := kernel.ValidateName("name", name); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *Customer) setPhoneNumber(phoneNumber string) error {
	if err := kernel.ValidatePhoneNumber("phoneNumber", phoneNumber); err != nil {
		return err
	}
	c.phoneNumber = phoneNumber
	return nil
}

func (c *Customer) setEmail(email string) error {
	if err := kernel.ValidateEmail("email", email); err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *Customer) setCity(city string) error {
	if err := kernel.ValidateCity("city", city); err != nil {
		return err
	}
	c.city = city
	return nil
}

func (c *Customer) setZipCode(zipCode int) error {
	if err := kernel.ValidateZipCode("zipCode", zipCode); err != nil {
		return err
	}
	c.zipCode = zipCode
	return nil
}

func (c *Customer) setAddress(address string) error {
	if err := kernel.ValidateAddress("address", address); err != nil {
		return err
	}
	c.address = address
	return nil
}
