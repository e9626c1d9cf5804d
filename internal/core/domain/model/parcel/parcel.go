// Package parcel contains the Parcel aggregate and the fixed Size and Status
// sets with their static metadata.
package parcel

import (
	"errors"

	"smartpack/internal/core/domain/model/kernel"
	"smartpack/internal/pkg/errs"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not
// created through the New or Restore factory functions.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via New or Restore constructor")

// Parcel represents a shipment belonging to exactly one customer.
//
// Parcel follows these invariants:
//   - the owning customer reference is set at creation and never reassigned
//   - recipient fields satisfy the kernel rules
//   - size and status are members of their fixed sets
//   - the identity is assigned by the store and never changes afterwards
//   - can only be created through New or Restore
type Parcel struct {
	id                   int64
	customerID           int64
	recipientName        string
	recipientPhoneNumber string
	recipientEmail       string
	recipientCity        string
	recipientZipCode     int
	recipientAddress     string
	cashOnDelivery       int
	size                 Size
	status               Status

	// isConstructed ensures the parcel was created via New or Restore
	isConstructed bool
}

// New creates a Parcel from wire-level values; its ID is zero until the store
// assigns one. Size and status arrive as their string tags and are converted
// here, so an unknown tag is reported alongside any other field violations.
// All rules are checked and every failure is joined into a single error.
//
// The supplied status tag must be a member of the fixed set even though a
// freshly created parcel is forced to StatusNew before persistence; callers
// force the initial state with MarkNew.
func New(customerID int64, recipientName, recipientPhoneNumber, recipientEmail, recipientCity string,
	recipientZipCode int, recipientAddress string, cashOnDelivery int, sizeTag, statusTag string,
) (*Parcel, error) {
	p := &Parcel{isConstructed: true}

	if err := errors.Join(
		p.setCustomerID(customerID),
		p.setRecipientName(recipientName),
		p.setRecipientPhoneNumber(recipientPhoneNumber),
		p.setRecipientEmail(recipientEmail),
		p.setRecipientCity(recipientCity),
		p.setRecipientZipCode(recipientZipCode),
		p.setRecipientAddress(recipientAddress),
		p.setCashOnDelivery(cashOnDelivery),
		p.setSize(sizeTag),
		p.setStatus(statusTag),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Restore reconstructs a persisted Parcel from typed values, including its
// store-assigned identity. The same field rules apply as in New.
func Restore(id, customerID int64, recipientName, recipientPhoneNumber, recipientEmail, recipientCity string,
	recipientZipCode int, recipientAddress string, cashOnDelivery int, size Size, status Status,
) (*Parcel, error) {
	p := &Parcel{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setCustomerID(customerID),
		p.setRecipientName(recipientName),
		p.setRecipientPhoneNumber(recipientPhoneNumber),
		p.setRecipientEmail(recipientEmail),
		p.setRecipientCity(recipientCity),
		p.setRecipientZipCode(recipientZipCode),
		p.setRecipientAddress(recipientAddress),
		p.setCashOnDelivery(cashOnDelivery),
		size.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	p.size = size
	p.status = status
	return p, nil
}

// Validate ensures the Parcel instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}

	return nil
}

// IsEqual compares two parcels by their store-assigned identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id == other.id
}

// MarkNew forces the status to StatusNew. Every parcel enters the registry as
// NEW regardless of the status the client submitted; the submitted value only
// has to be a member of the fixed set.
func (p *Parcel) MarkNew() {
	p.status = StatusNew
}

// ID returns the store-assigned identifier, or zero for an unpersisted parcel.
func (p *Parcel) ID() int64 {
	return p.id
}

// CustomerID returns the identifier of the owning customer.
func (p *Parcel) CustomerID() int64 {
	return p.customerID
}

// RecipientName returns the recipient's name.
func (p *Parcel) RecipientName() string {
	return p.recipientName
}

// RecipientPhoneNumber returns the recipient's phone number, empty when absent.
func (p *Parcel) RecipientPhoneNumber() string {
	return p.recipientPhoneNumber
}

// RecipientEmail returns the recipient's email address.
func (p *Parcel) RecipientEmail() string {
	return p.recipientEmail
}

// RecipientCity returns the recipient's city.
func (p *Parcel) RecipientCity() string {
	return p.recipientCity
}

// RecipientZipCode returns the recipient's postal code.
func (p *Parcel) RecipientZipCode() int {
	return p.recipientZipCode
}

// RecipientAddress returns the recipient's street address.
func (p *Parcel) RecipientAddress() string {
	return p.recipientAddress
}

// CashOnDelivery returns the amount to collect on delivery in minor currency units.
func (p *Parcel) CashOnDelivery() int {
	return p.cashOnDelivery
}

// Size returns the parcel's size category.
func (p *Parcel) Size() Size {
	return p.size
}

// Status returns the parcel's delivery status.
func (p *Parcel) Status() Status {
	return p.status
}

func (p *Parcel) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	p.id = id
	return nil
}

func (p *Parcel) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsRequiredError("customerId")
	}
	p.customerID = customerID
	return nil
}

func (p *Parcel) setRecipientName(name string) error {
	if err := kernel.ValidateName("recipientName", name); err != nil {
		return err
	}
	p.recipientName = name
	return nil
}

func (p *Parcel) setRecipientPhoneNumber(phoneNumber string) error {
	if err := kernel.ValidatePhoneNumber("recipientPhoneNumber", phoneNumber); err != nil {
		return err
	}
	p.recipientPhoneNumber = phoneNumber
	return nil
}

func (p *Parcel) setRecipientEmail(email string) error {
	if err := kernel.ValidateEmail("recipientEmail", email); err != nil {
		return err
	}
	p.recipientEmail = email
	return nil
}

func (p *Parcel) setRecipientCity(city string) error {
	if err := kernel.ValidateCity("recipientCity", city); err != nil {
		return err
	}
	p.recipientCity = city
	return nil
}

func (p *Parcel) setRecipientZipCode(zipCode int) error {
	if err := kernel.ValidateZipCode("recipientZipCode", zipCode); err != nil {
		return err
	}
	p.recipientZipCode = zipCode
	return nil
}

func (p *Parcel) setRecipientAddress(address string) error {
	if err := kernel.ValidateAddress("recipientAddress", address); err != nil {
		return err
	}
	p.recipientAddress = address
	return nil
}

func (p *Parcel) setCashOnDelivery(amount int) error {
	if err := kernel.ValidateCashOnDelivery("cashOnDelivery", amount); err != nil {
		return err
	}
	p.cashOnDelivery = amount
	return nil
}

func (p *Parcel) setSize(tag string) error {
	size, err := SizeFromTag(tag)
	if err != nil {
		return err
	}
	p.size = size
	return nil
}

func (p *Parcel) setStatus(tag string) error {
	status, err := StatusFromTag(tag)
	if err != nil {
		return err
	}
	p.status = status
	return nil
}
