package commands_test

import (
	"errors"
	"testing"

	"smartpack/internal/core/application/usecases/commands"
	"smartpack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteCustomerCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := commands.NewDeleteCustomerCommand(7)

	mockCustomerRepo := new(MockCustomerRepository)
	mockParcelRepo := new(MockParcelRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	// The parcels go first so the foreign key never blocks the customer delete
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ParcelRepository").Return(mockParcelRepo).Once(),
		mockParcelRepo.On("DeleteByCustomerID", ctx, int64(7)).Return(nil).Once(),
		mockUoW.On("CustomerRepository").Return(mockCustomerRepo).Once(),
		mockCustomerRepo.On("Delete", ctx, int64(7)).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeleteCustomerCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockCustomerRepo.AssertExpectations(t)
	mockParcelRepo.AssertExpectations(t)
}

func TestDeleteCustomerCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.DeleteCustomerCommand // zero value command

	mockFactory := new(MockUoWFactory)
	handler := commands.NewDeleteCustomerCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDeleteCustomerCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}

func TestDeleteCustomerCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := commands.NewDeleteCustomerCommand(404)

	notFound := errs.NewObjectNotFoundError("customerId", int64(404))
	mockCustomerRepo := new(MockCustomerRepository)
	mockParcelRepo := new(MockParcelRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	// The parcel delete succeeds with zero rows, then the missing customer
	// rolls the whole transaction back
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ParcelRepository").Return(mockParcelRepo).Once(),
		mockParcelRepo.On("DeleteByCustomerID", ctx, int64(404)).Return(nil).Once(),
		mockUoW.On("CustomerRepository").Return(mockCustomerRepo).Once(),
		mockCustomerRepo.On("Delete", ctx, int64(404)).Return(notFound).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeleteCustomerCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockCustomerRepo.AssertExpectations(t)
	mockParcelRepo.AssertExpectations(t)
}

func TestDeleteCustomerCommandHandler_Handle_ParcelDeleteError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := commands.NewDeleteCustomerCommand(7)

	expectedError := errors.New("parcel delete failed")
	mockParcelRepo := new(MockParcelRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ParcelRepository").Return(mockParcelRepo).Once(),
		mockParcelRepo.On("DeleteByCustomerID", ctx, int64(7)).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeleteCustomerCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockParcelRepo.AssertExpectations(t)
}
