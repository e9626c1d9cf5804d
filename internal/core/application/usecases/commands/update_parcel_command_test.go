package commands_test

import (
	"testing"

	"smartpack/internal/core/application/usecases/commands"
	"smartpack/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateParcelCommand(t *testing.T) {
	t.Run("should create command carrying the target identity", func(t *testing.T) {
		cmd, err := commands.NewUpdateParcelCommand(3, 1, "Kiss Ilona", "",
			"kiss.ilona@example.com", "Debrecen", 4024, "Piac utca 20.", 0, "L", "IN_TRANSIT")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, int64(3), cmd.ParcelID())
		require.NotNil(t, cmd.Parcel())
		assert.Equal(t, parcel.SizeL, cmd.Parcel().Size())
		assert.Equal(t, parcel.StatusInTransit, cmd.Parcel().Status())
	})

	t.Run("should keep any valid status verbatim", func(t *testing.T) {
		for _, tag := range []string{"NEW", "IN_TRANSIT", "DELIVERED", "UNDELIVERED"} {
			cmd, err := commands.NewUpdateParcelCommand(3, 1, "Kiss Ilona", "",
				"kiss.ilona@example.com", "Debrecen", 4024, "Piac utca 20.", 0, "S", tag)

			require.NoError(t, err)
			assert.Equal(t, tag, cmd.Parcel().Status().String())
		}
	})

	t.Run("should apply the same field rules as create", func(t *testing.T) {
		cmd, err := commands.NewUpdateParcelCommand(3, 1, "Kiss Ilona", "",
			"kiss.ilona@example.com", "Debrecen", 4024, "Piac utca 20.", 0, "XXL", "NEW")

		require.Error(t, err)
		assert.Error(t, cmd.Validate())
	})
}

func TestUpdateParcelCommand_Validate(t *testing.T) {
	var cmd commands.UpdateParcelCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateParcelCommandIsNotConstructed)
}
