package commands

import (
	"context"
)

// CompleteServiceOrderCommandHandler performs the InProgress -> Completed
// transition: the post-service checklist must be fully done, the vehicle
// (if any) is released back to Available, and reserved materials stay
// consumed, no stock is returned.
type CompleteServiceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteServiceOrderCommandHandler creates a handler for completing
// orders.
func NewCompleteServiceOrderCommandHandler(uowFactory UoWFactory) CompleteServiceOrderCommandHandler {
	return CompleteServiceOrderCommandHandler{uowFactory: uowFactory}
}

// Handle loads the order, verifies the completion gate, releases the
// vehicle, and persists the terminal status in one unit of work.
func (h CompleteServiceOrderCommandHandler) Handle(ctx context.Context, cmd CompleteServiceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.ServiceOrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Capture before Complete clears the reference.
	vehicleID := order.VehicleID()

	if err = order.Complete(); err != nil {
		return err
	}

	if vehicleID != nil {
		if err = uow.VehicleRepository().Release(ctx, *vehicleID); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
