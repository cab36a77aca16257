package material

import (
	"errors"
	"fmt"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
)

// ErrStockEntryIsNotConstructed is returned when a StockEntry was not created
// through NewStockEntry or RestoreStockEntry.
var ErrStockEntryIsNotConstructed = errors.New(
	"StockEntry must be created via NewStockEntry or RestoreStockEntry")

// StockEntry tracks the available quantity of one material and its minimum
// threshold. The available level is a derived value: every mutation returns
// the StockMovement that must be appended to the ledger in the same unit of
// work, keeping entry and ledger consistent.
//
// Invariants:
//   - available quantity is never negative
//   - every quantity change produces exactly one signed movement
//
// The version counter backs optimistic concurrency in the persistence layer:
// writes are conditional on the version read at validation time, and a
// mismatch aborts the whole operation with a ConflictError.
type StockEntry struct {
	id        kernel.UUID
	name      string
	available int
	minimum   int
	version   int

	isConstructed bool
}

// NewStockEntry creates a stock entry for a new material.
func NewStockEntry(id kernel.UUID, name string, available, minimum int) (*StockEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if available < 0 {
		return nil, errs.NewValueIsOutOfRangeError("available", available, 0, int(^uint(0)>>1))
	}
	if minimum < 0 {
		return nil, errs.NewValueIsOutOfRangeError("minimum", minimum, 0, int(^uint(0)>>1))
	}

	return &StockEntry{
		id:            id,
		name:          name,
		available:     available,
		minimum:       minimum,
		isConstructed: true,
	}, nil
}

// RestoreStockEntry rebuilds a stock entry from persistence, including its
// optimistic-concurrency version.
func RestoreStockEntry(id kernel.UUID, name string, available, minimum, version int) (*StockEntry, error) {
	entry, err := NewStockEntry(id, name, available, minimum)
	if err != nil {
		return nil, err
	}

	entry.version = version
	return entry, nil
}

// Validate ensures the entry was built through a constructor.
func (e *StockEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrStockEntryIsNotConstructed
	}
	return nil
}

// ID returns the material's identifier.
func (e *StockEntry) ID() kernel.UUID { return e.id }

// Name returns the material's display name.
func (e *StockEntry) Name() string { return e.name }

// Available returns the current available quantity.
func (e *StockEntry) Available() int { return e.available }

// Minimum returns the low-stock threshold.
func (e *StockEntry) Minimum() int { return e.minimum }

// Version returns the optimistic-concurrency version read from storage.
func (e *StockEntry) Version() int { return e.version }

// IsLowStock reports whether the available quantity is at or below the
// minimum threshold.
func (e *StockEntry) IsLowStock() bool {
	return e.available <= e.minimum
}

// Reserve commits qty units of the material to the given order. Fails with a
// ConflictError ("insufficient stock") and performs no mutation when the
// available quantity is below qty. On success the available level drops by
// qty and the returned movement carries -qty.
func (e *StockEntry) Reserve(orderID kernel.UUID, qty int) (StockMovement, error) {
	return e.reserve(orderID, qty, ReasonReserved)
}

func (e *StockEntry) reserve(orderID kernel.UUID, qty int, reason string) (StockMovement, error) {
	if qty <= 0 {
		return StockMovement{}, errs.NewValueIsOutOfRangeError("quantity", qty, 1, 99999)
	}
	if e.available < qty {
		return StockMovement{}, errs.NewConflictErrorWithCause("material", e.id.String(),
			"insufficient stock",
			fmt.Errorf("requested %d, available %d", qty, e.available))
	}

	movement, err := NewStockMovement(e.id, orderID, -qty, reason)
	if err != nil {
		return StockMovement{}, err
	}

	e.available -= qty
	return movement, nil
}

// Release returns qty units of the material to stock with a compensating
// movement of +qty. Releasing always succeeds for positive quantities.
func (e *StockEntry) Release(orderID kernel.UUID, qty int, reason string) (StockMovement, error) {
	if qty <= 0 {
		return StockMovement{}, errs.NewValueIsOutOfRangeError("quantity", qty, 1, 99999)
	}

	movement, err := NewStockMovement(e.id, orderID, qty, reason)
	if err != nil {
		return StockMovement{}, err
	}

	e.available += qty
	return movement, nil
}

// ApplyDelta applies a signed reservation change: a positive delta reserves
// additional units, a negative delta returns units. A zero delta is a no-op
// and records no movement.
func (e *StockEntry) ApplyDelta(orderID kernel.UUID, delta int) (*StockMovement, error) {
	switch {
	case delta == 0:
		return nil, nil
	case delta > 0:
		movement, err := e.reserve(orderID, delta, ReasonReservationIncrease)
		if err != nil {
			return nil, err
		}
		return &movement, nil
	default:
		movement, err := e.Release(orderID, -delta, ReasonReservationDecrease)
		if err != nil {
			return nil, err
		}
		return &movement, nil
	}
}
