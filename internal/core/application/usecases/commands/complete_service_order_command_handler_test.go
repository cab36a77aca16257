package commands_test

import (
	"testing"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/application/usecases/commands"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteServiceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	order := testScheduledOrder(t, nil, []string{"sign delivery receipt"})
	vehicleID := kernel.NewUUID()
	require.NoError(t, order.AssignVehicle(vehicleID))
	require.NoError(t, order.Start())
	require.NoError(t, order.SetChecklistItem(serviceorder.PostService, "sign delivery receipt", true))

	cmd, err := commands.NewCompleteServiceOrderCommand(order.ID())
	require.NoError(t, err)

	orderRepo := new(MockServiceOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Release", ctx, vehicleID).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*serviceorder.ServiceOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteServiceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, serviceorder.Completed, order.Status())
	assert.Nil(t, order.VehicleID())
	vehicleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteServiceOrderCommandHandler_Handle_ChecklistIncomplete(t *testing.T) {
	ctx := t.Context()

	order := testScheduledOrder(t, nil, []string{"sign delivery receipt", "return keys"})
	require.NoError(t, order.Start())
	require.NoError(t, order.SetChecklistItem(serviceorder.PostService, "sign delivery receipt", true))

	cmd, err := commands.NewCompleteServiceOrderCommand(order.ID())
	require.NoError(t, err)

	orderRepo := new(MockServiceOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteServiceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, serviceorder.ErrPostChecklistIncomplete)
	assert.Equal(t, serviceorder.InProgress, order.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCompleteServiceOrderCommandHandler_Handle_NotStarted(t *testing.T) {
	ctx := t.Context()

	order := testScheduledOrder(t, nil, nil)
	cmd, err := commands.NewCompleteServiceOrderCommand(order.ID())
	require.NoError(t, err)

	orderRepo := new(MockServiceOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteServiceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, serviceorder.Scheduled, order.Status())
}

func TestCompleteServiceOrderCommandHandler_Handle_NoVehicle(t *testing.T) {
	ctx := t.Context()

	order := testScheduledOrder(t, nil, nil)
	require.NoError(t, order.Start())

	cmd, err := commands.NewCompleteServiceOrderCommand(order.ID())
	require.NoError(t, err)

	orderRepo := new(MockServiceOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*serviceorder.ServiceOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteServiceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, serviceorder.Completed, order.Status())
	uow.AssertNotCalled(t, "VehicleRepository")
}
