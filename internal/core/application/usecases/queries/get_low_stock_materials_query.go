package queries

import (
	"errors"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/guard"
)

var ErrGetLowStockMaterialsQueryIsNotConstructed = errors.New(
	"GetLowStockMaterialsQuery must be created via NewGetLowStockMaterialsQuery constructor")

// GetLowStockMaterialsQuery retrieves every material whose available
// quantity sits at or below its minimum threshold. Feeds the purchasing
// report and the periodic low-stock job.
type GetLowStockMaterialsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLowStockMaterialsQuery creates a query for materials below
// threshold.
func NewGetLowStockMaterialsQuery() GetLowStockMaterialsQuery {
	return GetLowStockMaterialsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLowStockMaterialsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockMaterialsQueryIsNotConstructed)
}

// GetLowStockMaterialsQueryResponse is one material running low.
type GetLowStockMaterialsQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Available int
	Minimum   int
}
