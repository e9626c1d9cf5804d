package parcel

import (
	"fmt"

	"smartpack/internal/pkg/errs"
)

// Status represents the delivery state of a parcel.
//
// A parcel always enters the system as StatusNew; after that every status is
// freely reachable through updates. There is deliberately no transition graph
// beyond the forced initial state.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusNew is the initial status of every parcel.
	StatusNew

	// StatusInTransit indicates the parcel is on its way.
	StatusInTransit

	// StatusDelivered indicates the parcel reached its recipient.
	StatusDelivered

	// StatusUndelivered indicates a failed delivery attempt.
	StatusUndelivered
)

// statusSpec holds the wire tag and human-readable description of a status.
type statusSpec struct {
	tag         string
	description string
}

// getStatusSpecs returns the metadata for every valid status.
// StatusUnknown is intentionally excluded so the map doubles as the
// validity check.
func getStatusSpecs() map[Status]statusSpec {
	return map[Status]statusSpec{
		StatusNew:         {tag: "NEW", description: "Package received"},
		StatusInTransit:   {tag: "IN_TRANSIT", description: "Package is in transit"},
		StatusDelivered:   {tag: "DELIVERED", description: "Package was delivered successfully"},
		StatusUndelivered: {tag: "UNDELIVERED", description: "Package was attempted for delivery but failed"},
	}
}

// StatusFromTag converts a wire tag into its Status. The match is exact and
// case-sensitive; an unknown tag is a conversion failure, never silently
// mapped.
func StatusFromTag(tag string) (Status, error) {
	for status, spec := range getStatusSpecs() {
		if spec.tag == tag {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not one of NEW, IN_TRANSIT, DELIVERED, UNDELIVERED", tag))
}

// Validate checks that the Status is one of the fixed states.
func (s Status) Validate() error {
	if _, ok := getStatusSpecs()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire tag of the status, or "Unknown" for invalid values.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if spec, ok := getStatusSpecs()[s]; ok {
		return spec.tag
	}
	return "Unknown"
}

// Description returns the human-readable description of the status.
func (s Status) Description() string {
	return getStatusSpecs()[s].description
}
