package parcel_test

import (
	"testing"

	"smartpack/internal/core/domain/model/parcel"
	"smartpack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromTag(t *testing.T) {
	t.Run("should convert every valid tag", func(t *testing.T) {
		tests := []struct {
			tag  string
			want parcel.Status
		}{
			{"NEW", parcel.StatusNew},
			{"IN_TRANSIT", parcel.StatusInTransit},
			{"DELIVERED", parcel.StatusDelivered},
			{"UNDELIVERED", parcel.StatusUndelivered},
		}

		for _, tt := range tests {
			status, err := parcel.StatusFromTag(tt.tag)

			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		}
	})

	t.Run("should reject unknown tags", func(t *testing.T) {
		for _, tag := range []string{"INVALID_STATUS", "new", "RETURNED", ""} {
			status, err := parcel.StatusFromTag(tag)

			require.Error(t, err, "tag %q", tag)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, parcel.StatusUnknown, status)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	valid := []parcel.Status{
		parcel.StatusNew, parcel.StatusInTransit,
		parcel.StatusDelivered, parcel.StatusUndelivered,
	}
	for _, status := range valid {
		assert.NoError(t, status.Validate())
	}

	assert.Error(t, parcel.StatusUnknown.Validate())
	assert.Error(t, parcel.Status(99).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "NEW", parcel.StatusNew.String())
	assert.Equal(t, "IN_TRANSIT", parcel.StatusInTransit.String())
	assert.Equal(t, "DELIVERED", parcel.StatusDelivered.String())
	assert.Equal(t, "UNDELIVERED", parcel.StatusUndelivered.String())
	assert.Equal(t, "Unknown", parcel.StatusUnknown.String())
}

func TestStatus_Description(t *testing.T) {
	assert.Equal(t, "Package received", parcel.StatusNew.Description())
	assert.Equal(t, "Package is in transit", parcel.StatusInTransit.Description())
	assert.Equal(t, "Package was delivered successfully", parcel.StatusDelivered.Description())
	assert.Equal(t, "Package was attempted for delivery but failed", parcel.StatusUndelivered.Description())
}
