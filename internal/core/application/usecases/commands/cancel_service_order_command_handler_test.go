package commands_test

import (
	"testing"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/application/usecases/commands"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/material"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelServiceOrderCommandHandler_Handle_ReturnsAllResources(t *testing.T) {
	ctx := t.Context()

	materialID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()

	order := testScheduledOrder(t, nil, nil)
	require.NoError(t, order.SetMaterialLines(
		[]serviceorder.MaterialLine{testMaterialLine(t, materialID, 10)}))
	require.NoError(t, order.AssignVehicle(vehicleID))

	// The entry reflects stock after the original reservation of 10.
	entry := testStockEntry(t, materialID, 40)
	reservation, err := material.NewStockMovement(materialID, order.ID(), -10, material.ReasonReserved)
	require.NoError(t, err)

	cmd, err := commands.NewCancelServiceOrderCommand(order.ID())
	require.NoError(t, err)

	orderRepo := new(MockServiceOrderRepository)
	stockRepo := new(MockStockRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Release", ctx, vehicleID).Return(nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("GetMovementsForOrder", ctx, order.ID()).
			Return([]material.StockMovement{reservation}, nil).Once(),
		stockRepo.On("Get", ctx, materialID).Return(entry, nil).Once(),
		stockRepo.On("Update", ctx, entry).Return(nil).Once(),
		stockRepo.On("AppendMovement", ctx, mock.AnythingOfType("material.StockMovement")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*serviceorder.ServiceOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelServiceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, serviceorder.Cancelled, order.Status())
	assert.Nil(t, order.VehicleID())
	assert.Equal(t, 50, entry.Available())

	var movement material.StockMovement
	for _, call := range stockRepo.Calls {
		if call.Method == "AppendMovement" {
			movement = call.Arguments[1].(material.StockMovement)
		}
	}
	assert.Equal(t, 10, movement.Quantity())
	assert.Equal(t, material.ReasonOrderCancelled, movement.Reason())
	assert.Equal(t, order.ID(), movement.OrderID())

	uow.AssertExpectations(t)
	stockRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
}

func TestCancelServiceOrderCommandHandler_Handle_ReturnsOnlyOutstandingQuantity(t *testing.T) {
	ctx := t.Context()

	materialID := kernel.NewUUID()

	// The order reserved 10, then an update already returned 4 of them.
	order := testScheduledOrder(t, nil, nil)
	require.NoError(t, order.SetMaterialLines(
		[]serviceorder.MaterialLine{testMaterialLine(t, materialID, 6)}))

	reservation, err := material.NewStockMovement(
		materialID, order.ID(), -10, material.ReasonReserved)
	require.NoError(t, err)
	decrease, err := material.NewStockMovement(
		materialID, order.ID(), 4, material.ReasonReservationDecrease)
	require.NoError(t, err)

	entry := testStockEntry(t, materialID, 44)

	cmd, err := commands.NewCancelServiceOrderCommand(order.ID())
	require.NoError(t, err)

	orderRepo := new(MockServiceOrderRepository)
	stockRepo := new(MockStockRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("GetMovementsForOrder", ctx, order.ID()).
			Return([]material.StockMovement{reservation, decrease}, nil).Once(),
		stockRepo.On("Get", ctx, materialID).Return(entry, nil).Once(),
		stockRepo.On("Update", ctx, entry).Return(nil).Once(),
		stockRepo.On("AppendMovement", ctx, mock.AnythingOfType("material.StockMovement")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*serviceorder.ServiceOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelServiceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	// Only the net outstanding 6 comes back, never the original 10.
	require.NoError(t, err)
	assert.Equal(t, 50, entry.Available())

	var movement material.StockMovement
	for _, call := range stockRepo.Calls {
		if call.Method == "AppendMovement" {
			movement = call.Arguments[1].(material.StockMovement)
		}
	}
	assert.Equal(t, 6, movement.Quantity())
	assert.Equal(t, material.ReasonOrderCancelled, movement.Reason())

	uow.AssertExpectations(t)
	stockRepo.AssertExpectations(t)
}

func TestCancelServiceOrderCommandHandler_Handle_SecondCancelFailsBeforeResources(t *testing.T) {
	ctx := t.Context()

	order := testScheduledOrder(t, nil, nil)
	require.NoError(t, order.SetMaterialLines(
		[]serviceorder.MaterialLine{testMaterialLine(t, kernel.NewUUID(), 5)}))
	require.NoError(t, order.Cancel())

	cmd, err := commands.NewCancelServiceOrderCommand(order.ID())
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

	handler := commands.NewCancelServiceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	// The transition fails first, so stock is never double-credited.
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "StockRepository")
	uow.AssertNotCalled(t, "VehicleRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelServiceOrderCommandHandler_Handle_InProgressOrder(t *testing.T) {
	ctx := t.Context()

	order := testScheduledOrder(t, nil, []string{"unchecked item"})
	require.NoError(t, order.Start())

	cmd, err := commands.NewCancelServiceOrderCommand(order.ID())
	require.NoError(t, err)

	orderRepo := new(MockServiceOrderRepository)
	stockRepo := new(MockStockRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("GetMovementsForOrder", ctx, order.ID()).
			Return([]material.StockMovement{}, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*serviceorder.ServiceOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelServiceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	// Cancelling in progress works regardless of checklist state.
	require.NoError(t, err)
	assert.Equal(t, serviceorder.Cancelled, order.Status())
}

func TestCancelServiceOrderCommandHandler_Handle_CompletedOrder(t *testing.T) {
	ctx := t.Context()

	order := testScheduledOrder(t, nil, nil)
	require.NoError(t, order.Start())
	require.NoError(t, order.Complete())

	cmd, err := commands.NewCancelServiceOrderCommand(order.ID())
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

	handler := commands.NewCancelServiceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, serviceorder.Completed, order.Status())
}
