package commands

import (
	"context"
	"errors"
	"time"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/ports"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
)

// ErrContractIsNotActive rejects creation against a contract that exists but
// is no longer active.
var ErrContractIsNotActive = errors.New("contract is not active")

// CreateServiceOrderCommandHandler turns a signed contract into a Scheduled
// service order, reserving every requested resource (material lines, the
// optional vehicle, and crew assignments) inside one unit of work. If any
// single reservation cannot be satisfied the transaction rolls back and no
// partial state is left reserved.
type CreateServiceOrderCommandHandler struct {
	uowFactory      UoWFactory
	clientDirectory ports.ClientDirectory
	crewDirectory   ports.CrewDirectory
	materialCatalog ports.MaterialCatalog
}

// NewCreateServiceOrderCommandHandler creates a handler for order creation.
func NewCreateServiceOrderCommandHandler(
	uowFactory UoWFactory,
	clientDirectory ports.ClientDirectory,
	crewDirectory ports.CrewDirectory,
	materialCatalog ports.MaterialCatalog,
) CreateServiceOrderCommandHandler {
	return CreateServiceOrderCommandHandler{
		uowFactory:      uowFactory,
		clientDirectory: clientDirectory,
		crewDirectory:   crewDirectory,
		materialCatalog: materialCatalog,
	}
}

// Handle validates the collaborator references, assigns the next year-scoped
// order number, reserves all resources, and persists the new order. Returns
// the created aggregate so the transport layer can render it.
func (h CreateServiceOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateServiceOrderCommand,
) (*serviceorder.ServiceOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	clientID, err := h.checkCollaborators(ctx, cmd)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	year := time.Now().UTC().Year()
	sequence, err := uow.OrderNumberSequence().Next(ctx, year)
	if err != nil {
		return nil, err
	}
	number, err := serviceorder.NewOrderNumber(year, sequence)
	if err != nil {
		return nil, err
	}

	preChecklist, err := serviceorder.NewChecklist(cmd.PreChecklist())
	if err != nil {
		return nil, err
	}
	postChecklist, err := serviceorder.NewChecklist(cmd.PostChecklist())
	if err != nil {
		return nil, err
	}

	order, err := serviceorder.NewServiceOrder(
		kernel.NewUUID(),
		number,
		cmd.ContractID(),
		clientID,
		cmd.Window(),
		cmd.Origin(),
		cmd.Destination(),
		preChecklist,
		postChecklist,
		cmd.Notes(),
	)
	if err != nil {
		return nil, err
	}

	for _, assignment := range cmd.Crew() {
		if err = order.AssignCrewMember(assignment); err != nil {
			return nil, err
		}
	}

	if err = h.reserveMaterials(ctx, uow.StockRepository(), order, cmd.Materials()); err != nil {
		return nil, err
	}

	if vehicleID := cmd.VehicleID(); vehicleID != nil {
		if err = uow.VehicleRepository().Allocate(ctx, *vehicleID); err != nil {
			return nil, err
		}
		if err = order.AssignVehicle(*vehicleID); err != nil {
			return nil, err
		}
	}

	if err = uow.ServiceOrderRepository().Add(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}

// checkCollaborators verifies the contract, employees, and materials exist
// before any mutation is attempted.
func (h CreateServiceOrderCommandHandler) checkCollaborators(
	ctx context.Context,
	cmd CreateServiceOrderCommand,
) (kernel.UUID, error) {
	clientID, err := h.clientDirectory.ClientForContract(ctx, cmd.ContractID())
	if err != nil {
		return kernel.UUID{}, err
	}

	active, err := h.clientDirectory.ContractIsActive(ctx, cmd.ContractID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if !active {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("contractId", ErrContractIsNotActive)
	}

	for _, assignment := range cmd.Crew() {
		exists, existsErr := h.crewDirectory.EmployeeExists(ctx, assignment.EmployeeID())
		if existsErr != nil {
			return kernel.UUID{}, existsErr
		}
		if !exists {
			return kernel.UUID{}, errs.NewObjectNotFoundError("employee", assignment.EmployeeID().String())
		}
	}

	for _, line := range cmd.Materials() {
		exists, existsErr := h.materialCatalog.MaterialExists(ctx, line.MaterialID())
		if existsErr != nil {
			return kernel.UUID{}, existsErr
		}
		if !exists {
			return kernel.UUID{}, errs.NewObjectNotFoundError("material", line.MaterialID().String())
		}
	}

	return clientID, nil
}

// reserveMaterials reserves every requested line, appending one ledger
// movement per reservation, and records the lines on the aggregate.
func (h CreateServiceOrderCommandHandler) reserveMaterials(
	ctx context.Context,
	stockRepo ports.StockRepository,
	order *serviceorder.ServiceOrder,
	lines []serviceorder.MaterialLine,
) error {
	for _, line := range lines {
		entry, err := stockRepo.Get(ctx, line.MaterialID())
		if err != nil {
			return err
		}

		movement, err := entry.Reserve(order.ID(), line.Quantity())
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

	return order.SetMaterialLines(lines)
}
