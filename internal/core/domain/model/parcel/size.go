package parcel

import (
	"fmt"

	"smartpack/internal/pkg/errs"
)

// Size classifies a parcel into one of the fixed size categories. Each
// category carries static metadata (dimension limit, weight limit, price)
// exposed through lookup methods; only the tag itself is ever persisted.
type Size int

const (
	// SizeUnknown represents an invalid or undefined size.
	// This value (0) helps catch uninitialized Size values.
	SizeUnknown Size = iota

	// SizeS is the small category.
	SizeS

	// SizeM is the medium category.
	SizeM

	// SizeL is the large category.
	SizeL

	// SizeXL is the extra-large category.
	SizeXL
)

// sizeSpec holds the static metadata attached to a size category.
type sizeSpec struct {
	tag         string
	sizeLimit   string
	weightLimit int
	price       int
}

// getSizeSpecs returns the metadata for every valid size category.
// SizeUnknown is intentionally excluded so the map doubles as the
// validity check.
func getSizeSpecs() map[Size]sizeSpec {
	return map[Size]sizeSpec{
		SizeS:  {tag: "S", sizeLimit: "10cm x 40cm x 60cm", weightLimit: 15, price: 1099},
		SizeM:  {tag: "M", sizeLimit: "20cm x 40cm x 60cm", weightLimit: 25, price: 1199},
		SizeL:  {tag: "L", sizeLimit: "40cm x 40cm x 60cm", weightLimit: 25, price: 1699},
		SizeXL: {tag: "XL", sizeLimit: "60cm x 40cm x 60cm", weightLimit: 25, price: 2299},
	}
}

// SizeFromTag converts a wire tag into its Size category. The match is exact
// and case-sensitive; an unknown tag is a conversion failure, never silently
// mapped.
func SizeFromTag(tag string) (Size, error) {
	for size, spec := range getSizeSpecs() {
		if spec.tag == tag {
			return size, nil
		}
	}
	return SizeUnknown, errs.NewValueIsInvalidErrorWithCause("parcelSize",
		fmt.Errorf("%q is not one of S, M, L, XL", tag))
}

// Validate checks that the Size is one of the fixed categories.
func (s Size) Validate() error {
	if _, ok := getSizeSpecs()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("parcelSize",
			fmt.Errorf("%d is not a valid parcel size", s))
	}
	return nil
}

// String returns the wire tag of the size, or "Unknown" for invalid values.
// This method implements the fmt.Stringer interface.
func (s Size) String() string {
	if spec, ok := getSizeSpecs()[s]; ok {
		return spec.tag
	}
	return "Unknown"
}

// SizeLimit returns the maximum dimensions allowed for the category.
func (s Size) SizeLimit() string {
	return getSizeSpecs()[s].sizeLimit
}

// WeightLimit returns the maximum weight in kilograms allowed for the category.
func (s Size) WeightLimit() int {
	return getSizeSpecs()[s].weightLimit
}

// Price returns the delivery price of the category in minor currency units.
func (s Size) Price() int {
	return getSizeSpecs()[s].price
}
