package commands_test

import (
	"testing"

	"smartpack/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteParcelCommand(t *testing.T) {
	cmd := commands.NewDeleteParcelCommand(3)

	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(3), cmd.ParcelID())
}

func TestDeleteParcelCommand_Validate(t *testing.T) {
	var cmd commands.DeleteParcelCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDeleteParcelCommandIsNotConstructed)
}
