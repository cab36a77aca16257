package services

import (
	"fmt"
	"sort"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/material"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
)

// MaterialDelta is one signed reservation change for a material, produced by
// diffing an order's old and new material lines.
type MaterialDelta struct {
	MaterialID kernel.UUID
	Delta      int
}

// ResourceReconciler computes the minimal set of reserve/release operations
// needed to move an order's material reservations from one line set to
// another. It is a stateless domain service: Diff produces deltas, Validate
// checks every positive delta against available stock before anything is
// applied, and Apply mutates the stock entries and collects the resulting
// ledger movements.
type ResourceReconciler struct{}

// NewResourceReconciler creates the reconciler.
func NewResourceReconciler() *ResourceReconciler {
	return &ResourceReconciler{}
}

// DiffMaterialLines maps each material to its signed quantity delta between
// the old and new line sets. A material only in newLines yields +newQty, only
// in oldLines yields -oldQty, in both yields newQty-oldQty. Zero deltas are
// omitted. The result is sorted by material ID so repeated reconciliations
// apply in a deterministic order.
func (r *ResourceReconciler) DiffMaterialLines(
	oldLines, newLines []serviceorder.MaterialLine,
) []MaterialDelta {
	deltas := make(map[kernel.UUID]int, len(oldLines)+len(newLines))
	for _, line := range oldLines {
		deltas[line.MaterialID()] -= line.Quantity()
	}
	for _, line := range newLines {
		deltas[line.MaterialID()] += line.Quantity()
	}

	result := make([]MaterialDelta, 0, len(deltas))
	for materialID, delta := range deltas {
		if delta == 0 {
			continue
		}
		result = append(result, MaterialDelta{MaterialID: materialID, Delta: delta})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].MaterialID.String() < result[j].MaterialID.String()
	})
	return result
}

// Validate checks every delta against the loaded stock entries before any of
// them is applied: a positive delta needs that much available stock, and
// every referenced material must be present in entries. Returns the first
// violation; the caller must not apply any delta if Validate fails.
func (r *ResourceReconciler) Validate(
	deltas []MaterialDelta,
	entries map[kernel.UUID]*material.StockEntry,
) error {
	for _, d := range deltas {
		entry, ok := entries[d.MaterialID]
		if !ok {
			return errs.NewObjectNotFoundError("material", d.MaterialID.String())
		}
		if d.Delta > 0 && entry.Available() < d.Delta {
			return errs.NewConflictErrorWithCause("material", d.MaterialID.String(),
				"insufficient stock",
				fmt.Errorf("requested %d, available %d", d.Delta, entry.Available()))
		}
	}
	return nil
}

// Apply performs every delta against its stock entry and returns the ledger
// movements to append, in delta order. Callers must run Validate first; a
// failure here still aborts with no partial state because the surrounding
// unit of work rolls back.
func (r *ResourceReconciler) Apply(
	orderID kernel.UUID,
	deltas []MaterialDelta,
	entries map[kernel.UUID]*material.StockEntry,
) ([]material.StockMovement, error) {
	movements := make([]material.StockMovement, 0, len(deltas))
	for _, d := range deltas {
		entry, ok := entries[d.MaterialID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("material", d.MaterialID.String())
		}

		movement, err := entry.ApplyDelta(orderID, d.Delta)
		if err != nil {
			return nil, err
		}
		if movement != nil {
			movements = append(movements, *movement)
		}
	}
	return movements, nil
}
