package material

import (
	"errors"
	"time"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
)

// Movement reasons recorded in the ledger. Free text is allowed; these cover
// the lifecycle paths of the service order core.
const (
	ReasonReserved            = "reserved for order"
	ReasonReservationIncrease = "reservation increased"
	ReasonReservationDecrease = "reservation decreased"
	ReasonOrderCancelled      = "order cancelled"
)

// StockMovement is one immutable ledger entry: a signed quantity change
// against a material, attributed to the order that caused it. Negative
// quantities are reservations (stock out), positive quantities are returns
// (stock in). A zero quantity is never recorded.
type StockMovement struct {
	id         kernel.UUID
	materialID kernel.UUID
	orderID    kernel.UUID
	quantity   int
	reason     string
	occurredAt time.Time
}

// NewStockMovement creates a ledger entry with a fresh identifier.
func NewStockMovement(materialID, orderID kernel.UUID, quantity int, reason string) (StockMovement, error) {
	if err := materialID.Validate(); err != nil {
		return StockMovement{}, err
	}
	if err := orderID.Validate(); err != nil {
		return StockMovement{}, err
	}
	if quantity == 0 {
		return StockMovement{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			errors.New("movement quantity must be non-zero"))
	}
	if reason == "" {
		return StockMovement{}, errs.NewValueIsRequiredError("reason")
	}

	return StockMovement{
		id:         kernel.NewUUID(),
		materialID: materialID,
		orderID:    orderID,
		quantity:   quantity,
		reason:     reason,
		occurredAt: time.Now().UTC(),
	}, nil
}

// RestoreStockMovement rebuilds a ledger entry from persistence.
func RestoreStockMovement(
	id, materialID, orderID kernel.UUID,
	quantity int,
	reason string,
	occurredAt time.Time,
) (StockMovement, error) {
	if err := errors.Join(id.Validate(), materialID.Validate(), orderID.Validate()); err != nil {
		return StockMovement{}, err
	}
	if quantity == 0 {
		return StockMovement{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			errors.New("movement quantity must be non-zero"))
	}

	return StockMovement{
		id:         id,
		materialID: materialID,
		orderID:    orderID,
		quantity:   quantity,
		reason:     reason,
		occurredAt: occurredAt,
	}, nil
}

// ID returns the movement's unique identifier.
func (m StockMovement) ID() kernel.UUID { return m.id }

// MaterialID returns the material the movement applies to.
func (m StockMovement) MaterialID() kernel.UUID { return m.materialID }

// OrderID returns the service order that caused the movement.
func (m StockMovement) OrderID() kernel.UUID { return m.orderID }

// Quantity returns the signed quantity change.
func (m StockMovement) Quantity() int { return m.quantity }

// Reason returns the recorded reason.
func (m StockMovement) Reason() string { return m.reason }

// OccurredAt returns when the movement happened (UTC).
func (m StockMovement) OccurredAt() time.Time { return m.occurredAt }
