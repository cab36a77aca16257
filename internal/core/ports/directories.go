package ports

import (
	"context"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
)

// Collaborator directories consumed by the service order core. The client,
// crew, and material registries are owned by other subsystems of the back
// office; the core only needs these narrow existence/activity checks.
type (
	// ClientDirectory answers contract questions against the client and
	// contract registry.
	ClientDirectory interface {
		// ContractIsActive reports whether the contract exists and is
		// in an active state.
		ContractIsActive(ctx context.Context, contractID kernel.UUID) (bool, error)

		// ClientForContract resolves the client a contract belongs to.
		// Returns ObjectNotFoundError for unknown contracts.
		ClientForContract(ctx context.Context, contractID kernel.UUID) (kernel.UUID, error)
	}

	// CrewDirectory answers employee questions against the staff
	// registry.
	CrewDirectory interface {
		// EmployeeExists reports whether the employee is registered.
		EmployeeExists(ctx context.Context, employeeID kernel.UUID) (bool, error)
	}

	// MaterialCatalog answers material questions against the inventory
	// catalog backing the stock entries.
	MaterialCatalog interface {
		// MaterialExists reports whether the material is registered.
		MaterialExists(ctx context.Context, materialID kernel.UUID) (bool, error)
	}
)
