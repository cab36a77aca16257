package commands

import (
	"context"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/material"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/ports"
)

// CancelServiceOrderCommandHandler performs the transition to Cancelled:
// every still-reserved material quantity is returned to stock with a
// compensating ledger movement, the vehicle (if any) goes back to Available,
// and crew assignments remain as historical record. A second cancel fails on
// the transition table before any resource is touched, so stock is never
// double-credited.
type CancelServiceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelServiceOrderCommandHandler creates a handler for cancelling
// orders.
func NewCancelServiceOrderCommandHandler(uowFactory UoWFactory) CancelServiceOrderCommandHandler {
	return CancelServiceOrderCommandHandler{uowFactory: uowFactory}
}

// Handle loads the order, transitions it to Cancelled, releases every
// reserved resource, and commits as one unit of work.
func (h CancelServiceOrderCommandHandler) Handle(ctx context.Context, cmd CancelServiceOrderCommand) error {
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

	// Capture before Cancel clears the vehicle reference.
	vehicleID := order.VehicleID()

	if err = order.Cancel(); err != nil {
		return err
	}

	if vehicleID != nil {
		if err = uow.VehicleRepository().Release(ctx, *vehicleID); err != nil {
			return err
		}
	}

	if err = h.returnMaterials(ctx, uow.StockRepository(), order.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// returnMaterials credits every outstanding reservation back to stock, one
// compensating movement per material. The movement ledger is the source of
// truth for how much the order still holds: reservations are negative
// movements, releases positive, so the outstanding quantity is the negated
// net per material.
func (h CancelServiceOrderCommandHandler) returnMaterials(
	ctx context.Context,
	stockRepo ports.StockRepository,
	orderID kernel.UUID,
) error {
	movements, err := stockRepo.GetMovementsForOrder(ctx, orderID)
	if err != nil {
		return err
	}

	materialIDs := make([]kernel.UUID, 0, len(movements))
	net := make(map[kernel.UUID]int, len(movements))
	for _, movement := range movements {
		if _, seen := net[movement.MaterialID()]; !seen {
			materialIDs = append(materialIDs, movement.MaterialID())
		}
		net[movement.MaterialID()] += movement.Quantity()
	}

	for _, materialID := range materialIDs {
		outstanding := -net[materialID]
		if outstanding <= 0 {
			continue
		}

		entry, err := stockRepo.Get(ctx, materialID)
		if err != nil {
			return err
		}

		movement, err := entry.Release(orderID, outstanding, material.ReasonOrderCancelled)
		if err != nil {
			return err
		}

		if err = stockRepo.Update(ctx, entry); err != nil {
			return err
		}
		if err = stockRepo.AppendMovement(ctx, movement); err != nil {
			return err
		}
	}
	return nil
}
