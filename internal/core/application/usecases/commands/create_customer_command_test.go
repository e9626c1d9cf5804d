package commands_test

import (
	"testing"

	"smartpack/internal/core/application/usecases/commands"
	"smartpack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCustomerCommand(t *testing.T) {
	t.Run("should create command with valid fields", func(t *testing.T) {
		cmd, err := commands.NewCreateCustomerCommand("Nagy Tibor", "+36201234567",
			"nagy.tibor@example.com", "Budapest", 1023, "Bem rakpart 16-19.")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.NotNil(t, cmd.Customer())
		assert.Equal(t, "Nagy Tibor", cmd.Customer().Name())
		assert.Equal(t, int64(0), cmd.Customer().ID())
	})

	t.Run("should propagate joined field violations", func(t *testing.T) {
		cmd, err := commands.NewCreateCustomerCommand("", "bad", "not-an-email",
			"B", 10, "")

		require.Error(t, err)
		assert.Error(t, cmd.Validate())

		joined, ok := err.(interface{ Unwrap() []error })
		require.True(t, ok)
		assert.Len(t, joined.Unwrap(), 6)
	})

	t.Run("should report a single violation on its own", func(t *testing.T) {
		_, err := commands.NewCreateCustomerCommand("Nagy Tibor", "+36201234567",
			"nagy.tibor@example.com", "Budapest", 10230, "Bem rakpart 16-19.")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		joined, ok := err.(interface{ Unwrap() []error })
		require.True(t, ok)
		assert.Len(t, joined.Unwrap(), 1)
	})
}

func TestCreateCustomerCommand_Validate(t *testing.T) {
	t.Run("should fail for zero value command", func(t *testing.T) {
		var cmd commands.CreateCustomerCommand

		err := cmd.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrCreateCustomerCommandIsNotConstructed)
	})
}
