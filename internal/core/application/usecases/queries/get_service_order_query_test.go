package queries_test

import (
	"testing"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/application/usecases/queries"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetServiceOrderQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetServiceOrderQuery(orderID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.OrderID().IsEqual(orderID))
}

func TestNewGetServiceOrderQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetServiceOrderQuery(kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "orderId")
}

func TestGetServiceOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetServiceOrderQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetServiceOrderQueryIsNotConstructed)
}
