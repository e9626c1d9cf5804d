// Package kernel contains the shared validation rules of the domain model.
// Customer and Parcel apply the same field-level constraints to their own
// fields (a customer's name and a parcel's recipient name follow one rule),
// so the predicates live here and are parameterized by field name only.
//
// All predicates are pure: they inspect the value, never touch the store,
// and return an error from the errs taxonomy carrying the offending field
// name. A nil return means the value satisfies the rule.
package kernel

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"smartpack/internal/pkg/errs"
)

// Field length and range limits. Names are validated against rune counts so
// accented Hungarian names are measured the way a person would count letters.
const (
	NameMinLen = 5
	NameMaxLen = 40

	CityMinLen = 2
	CityMaxLen = 25

	AddressMinLen = 5
	AddressMaxLen = 50

	ZipCodeMin = 1000
	ZipCodeMax = 9985

	CashOnDeliveryMin = 0
	CashOnDeliveryMax = 150000
)

// phoneNumberPattern matches Hungarian mobile numbers: +36, one of the carrier
// prefixes 20/30/70, then seven digits.
var phoneNumberPattern = regexp.MustCompile(`^\+36[237]0\d{7}$`)

// ValidateName checks that a personal name is present and within length limits.
func ValidateName(paramName, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if n := utf8.RuneCountInString(value); n < NameMinLen || n > NameMaxLen {
		return errs.NewValueIsOutOfRangeError(paramName, n, NameMinLen, NameMaxLen)
	}
	return nil
}

// ValidatePhoneNumber checks an optional Hungarian mobile number.
// An empty value is treated as absent and passes.
func ValidatePhoneNumber(paramName, value string) error {
	if value == "" {
		return nil
	}
	if !phoneNumberPattern.MatchString(value) {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%q is not a Hungarian mobile number", value))
	}
	return nil
}

// ValidateEmail checks that an email address is present and syntactically valid.
func ValidateEmail(paramName, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return nil
}

// ValidateCity checks that a city name is present and within length limits.
func ValidateCity(paramName, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if n := utf8.RuneCountInString(value); n < CityMinLen || n > CityMaxLen {
		return errs.NewValueIsOutOfRangeError(paramName, n, CityMinLen, CityMaxLen)
	}
	return nil
}

// ValidateZipCode checks that a postal code is a valid Hungarian one.
func ValidateZipCode(paramName string, value int) error {
	if value < ZipCodeMin || value > ZipCodeMax {
		return errs.NewValueIsOutOfRangeError(paramName, value, ZipCodeMin, ZipCodeMax)
	}
	return nil
}

// ValidateAddress checks that a street address is present and within length limits.
func ValidateAddress(paramName, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if n := utf8.RuneCountInString(value); n < AddressMinLen || n > AddressMaxLen {
		return errs.NewValueIsOutOfRangeError(paramName, n, AddressMinLen, AddressMaxLen)
	}
	return nil
}

// ValidateCashOnDelivery checks a cash-on-delivery amount in minor currency units.
func ValidateCashOnDelivery(paramName string, value int) error {
	if value < CashOnDeliveryMin || value > CashOnDeliveryMax {
		return errs.NewValueIsOutOfRangeError(paramName, value, CashOnDeliveryMin, CashOnDeliveryMax)
	}
	return nil
}
