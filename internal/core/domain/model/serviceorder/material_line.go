package serviceorder

import (
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
)

// MaterialLine is one material reservation of the order: a material and the
// quantity reserved for the job. Quantity is always positive; releases are
// expressed as deltas by the resource reconciler, never as negative lines.
type MaterialLine struct {
	materialID kernel.UUID
	quantity   int
}

// NewMaterialLine creates a validated material reservation line.
func NewMaterialLine(materialID kernel.UUID, quantity int) (MaterialLine, error) {
	if err := materialID.Validate(); err != nil {
		return MaterialLine{}, err
	}
	if quantity <= 0 {
		return MaterialLine{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, 99999)
	}

	return MaterialLine{materialID: materialID, quantity: quantity}, nil
}

// MaterialID returns the reserved material's identifier.
func (l MaterialLine) MaterialID() kernel.UUID {
	return l.materialID
}

// Quantity returns the reserved quantity.
func (l MaterialLine) Quantity() int {
	return l.quantity
}

// Validate returns a validation error for the zero value.
func (l MaterialLine) Validate() error {
	if err := l.materialID.Validate(); err != nil {
		return err
	}
	if l.quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", l.quantity, 1, 99999)
	}
	return nil
}
