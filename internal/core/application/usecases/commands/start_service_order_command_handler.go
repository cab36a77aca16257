package commands

import (
	"context"
)

// StartServiceOrderCommandHandler performs the Scheduled -> InProgress
// transition. Starting has no resource side effects; the transition table
// on the aggregate guards legality.
type StartServiceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartServiceOrderCommandHandler creates a handler for starting orders.
func NewStartServiceOrderCommandHandler(uowFactory OrderUoWFactory) StartServiceOrderCommandHandler {
	return StartServiceOrderCommandHandler{uowFactory: uowFactory}
}

// Handle loads the order, transitions it, and persists the new status.
func (h StartServiceOrderCommandHandler) Handle(ctx context.Context, cmd StartServiceOrderCommand) error {
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

	if err = order.Start(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
