package commands

import (
	"context"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/material"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/services"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/ports"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
)

// UpdateServiceOrderCommandHandler applies a partial update to a non-terminal
// order. Material changes go through the resource reconciler (validate every
// delta before applying any), vehicle changes release-then-allocate with
// compare-and-set semantics, and crew changes are explicit assign/unassign
// operations. Everything runs inside one unit of work.
type UpdateServiceOrderCommandHandler struct {
	uowFactory    UoWFactory
	crewDirectory ports.CrewDirectory
	reconciler    *services.ResourceReconciler
}

// NewUpdateServiceOrderCommandHandler creates a handler for order updates.
func NewUpdateServiceOrderCommandHandler(
	uowFactory UoWFactory,
	crewDirectory ports.CrewDirectory,
) UpdateServiceOrderCommandHandler {
	return UpdateServiceOrderCommandHandler{
		uowFactory:    uowFactory,
		crewDirectory: crewDirectory,
		reconciler:    services.NewResourceReconciler(),
	}
}

// Handle loads the order, applies every requested change, and commits. Any
// failed reservation aborts the whole update, leaving the previous resource
// state intact.
func (h UpdateServiceOrderCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateServiceOrderCommand,
) (*serviceorder.ServiceOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	for _, assignment := range cmd.AssignCrew() {
		exists, err := h.crewDirectory.EmployeeExists(ctx, assignment.EmployeeID())
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errs.NewObjectNotFoundError("employee", assignment.EmployeeID().String())
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.ServiceOrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if order.Status().IsTerminal() {
		return nil, errs.NewInvalidStateError("service order", order.Status().String(), "")
	}

	if err = h.applySimpleChanges(order, cmd); err != nil {
		return nil, err
	}
	if err = h.applyCrewChanges(order, cmd); err != nil {
		return nil, err
	}
	if cmd.HasMaterials() {
		if err = h.applyMaterialChanges(ctx, uow.StockRepository(), order, cmd.Materials()); err != nil {
			return nil, err
		}
	}
	if cmd.ChangeVehicle() {
		if err = h.applyVehicleChange(ctx, uow.VehicleRepository(), order, cmd.VehicleID()); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}

func (h UpdateServiceOrderCommandHandler) applySimpleChanges(
	order *serviceorder.ServiceOrder,
	cmd UpdateServiceOrderCommand,
) error {
	if window := cmd.Window(); window != nil {
		if err := order.Reschedule(*window); err != nil {
			return err
		}
	}
	if origin := cmd.Origin(); origin != nil {
		if err := order.SetAddresses(*origin, *cmd.Destination()); err != nil {
			return err
		}
	}
	if notes := cmd.Notes(); notes != nil {
		if err := order.SetNotes(*notes); err != nil {
			return err
		}
	}
	return nil
}

func (h UpdateServiceOrderCommandHandler) applyCrewChanges(
	order *serviceorder.ServiceOrder,
	cmd UpdateServiceOrderCommand,
) error {
	for _, employeeID := range cmd.UnassignCrew() {
		if err := order.UnassignCrewMember(employeeID); err != nil {
			return err
		}
	}
	for _, assignment := range cmd.AssignCrew() {
		if err := order.AssignCrewMember(assignment); err != nil {
			return err
		}
	}
	return nil
}

// applyMaterialChanges reconciles the current reservation lines against the
// desired set: diff, validate every delta against available stock, then
// apply and append the resulting ledger movements. An insufficient-stock
// delta aborts before any ledger mutation is applied.
func (h UpdateServiceOrderCommandHandler) applyMaterialChanges(
	ctx context.Context,
	stockRepo ports.StockRepository,
	order *serviceorder.ServiceOrder,
	newLines []serviceorder.MaterialLine,
) error {
	deltas := h.reconciler.DiffMaterialLines(order.Materials(), newLines)
	if len(deltas) == 0 {
		return order.SetMaterialLines(newLines)
	}

	entries := make(map[kernel.UUID]*material.StockEntry, len(deltas))
	for _, d := range deltas {
		entry, err := stockRepo.Get(ctx, d.MaterialID)
		if err != nil {
			return err
		}
		entries[d.MaterialID] = entry
	}

	if err := h.reconciler.Validate(deltas, entries); err != nil {
		return err
	}

	movements, err := h.reconciler.Apply(order.ID(), deltas, entries)
	if err != nil {
		return err
	}

	for _, d := range deltas {
		if err = stockRepo.Update(ctx, entries[d.MaterialID]); err != nil {
			return err
		}
	}
	for _, movement := range movements {
		if err = stockRepo.AppendMovement(ctx, movement); err != nil {
			return err
		}
	}

	return order.SetMaterialLines(newLines)
}

// applyVehicleChange swaps the vehicle assignment: the old vehicle (if any)
// is released before the new one is allocated. If allocating the new vehicle
// fails the transaction rolls back, so the old assignment is preserved
// unchanged.
func (h UpdateServiceOrderCommandHandler) applyVehicleChange(
	ctx context.Context,
	vehicleRepo ports.VehicleRepository,
	order *serviceorder.ServiceOrder,
	newVehicleID *kernel.UUID,
) error {
	current := order.VehicleID()
	if current != nil && newVehicleID != nil && current.IsEqual(*newVehicleID) {
		return nil
	}

	if current != nil {
		if err := vehicleRepo.Release(ctx, *current); err != nil {
			return err
		}
		if err := order.ClearVehicle(); err != nil {
			return err
		}
	}

	if newVehicleID != nil {
		if err := vehicleRepo.Allocate(ctx, *newVehicleID); err != nil {
			return err
		}
		if err := order.AssignVehicle(*newVehicleID); err != nil {
			return err
		}
	}

	return nil
}
