package commands

import (
	"context"
)

// UpdateChecklistCommandHandler flips checklist items on an order.
// Unknown labels fail the whole request so a typo never silently drops
// an update.
type UpdateChecklistCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateChecklistCommandHandler creates a handler for checklist updates.
func NewUpdateChecklistCommandHandler(uowFactory OrderUoWFactory) UpdateChecklistCommandHandler {
	return UpdateChecklistCommandHandler{uowFactory: uowFactory}
}

// Handle loads the order, applies each item update, and persists the result.
func (h UpdateChecklistCommandHandler) Handle(ctx context.Context, cmd UpdateChecklistCommand) error {
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

	for _, item := range cmd.Items() {
		if err = order.SetChecklistItem(cmd.Kind(), item.Label, item.Done); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
