package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockServiceOrderRepository struct{ mock.Mock }

func (m *MockServiceOrderRepository) Add(ctx context.Context, o *serviceorder.ServiceOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockServiceOrderRepository) Update(ctx context.Context, o *serviceorder.ServiceOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockServiceOrderRepository) Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serviceorder.ServiceOrder), args.Error(1)
}

func (m *MockServiceOrderRepository) GetAllActive(ctx context.Context) ([]*serviceorder.ServiceOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*serviceorder.ServiceOrder), args.Error(1)
}

func testOrderWithWindow(t *testing.T, sequence int, start, end time.Time) *serviceorder.ServiceOrder {
	t.Helper()

	number, err := serviceorder.NewOrderNumber(2026, sequence)
	require.NoError(t, err)
	window, err := kernel.NewTimeWindow(start, end)
	require.NoError(t, err)
	origin, err := serviceorder.NewAddress("Rua Augusta 100", "Sao Paulo", "SP", "", "")
	require.NoError(t, err)
	destination, err := serviceorder.NewAddress("Av Paulista 900", "Sao Paulo", "SP", "", "")
	require.NoError(t, err)
	pre, err := serviceorder.NewChecklist(nil)
	require.NoError(t, err)
	post, err := serviceorder.NewChecklist(nil)
	require.NoError(t, err)

	order, err := serviceorder.NewServiceOrder(
		kernel.NewUUID(), number, kernel.NewUUID(), kernel.NewUUID(),
		window, origin, destination, pre, post, "")
	require.NoError(t, err)
	return order
}

func TestOverdueOrdersReportJob_Report_WarnsOnlyPastWindows(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	overdue := testOrderWithWindow(t, 1,
		now.Add(-26*time.Hour), now.Add(-24*time.Hour))
	upcoming := testOrderWithWindow(t, 2,
		now.Add(24*time.Hour), now.Add(26*time.Hour))

	orders := new(MockServiceOrderRepository)
	orders.On("GetAllActive", ctx).
		Return([]*serviceorder.ServiceOrder{overdue, upcoming}, nil).Once()

	var buf bytes.Buffer
	job := NewOverdueOrdersReportJob(orders, slog.New(slog.NewJSONHandler(&buf, nil)))

	job.report(ctx, now)

	logged := buf.String()
	assert.Contains(t, logged, overdue.ID().String())
	assert.Contains(t, logged, overdue.Number().String())
	assert.NotContains(t, logged, upcoming.ID().String())
	orders.AssertExpectations(t)
}

func TestOverdueOrdersReportJob_Report_LogsRepositoryFailure(t *testing.T) {
	ctx := context.Background()

	orders := new(MockServiceOrderRepository)
	orders.On("GetAllActive", ctx).
		Return(nil, errors.New("connection refused")).Once()

	var buf bytes.Buffer
	job := NewOverdueOrdersReportJob(orders, slog.New(slog.NewJSONHandler(&buf, nil)))

	job.report(ctx, time.Now().UTC())

	assert.Contains(t, buf.String(), "Overdue order report job failed")
	orders.AssertExpectations(t)
}
