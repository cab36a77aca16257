package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/application/usecases/commands"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/material"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/vehicle"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/ports"

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

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) Add(ctx context.Context, e *material.StockEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockStockRepository) Update(ctx context.Context, e *material.StockEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockStockRepository) Get(ctx context.Context, id kernel.UUID) (*material.StockEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*material.StockEntry), args.Error(1)
}

func (m *MockStockRepository) AppendMovement(ctx context.Context, movement material.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockStockRepository) GetMovementsForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]material.StockMovement, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]material.StockMovement), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Allocate(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVehicleRepository) Release(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderNumberSequence struct{ mock.Mock }

func (m *MockOrderNumberSequence) Next(ctx context.Context, year int) (int, error) {
	args := m.Called(ctx, year)
	return args.Int(0), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ServiceOrderRepository() ports.ServiceOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceOrderRepository)
}

func (m *MockUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) OrderNumberSequence() ports.OrderNumberSequence {
	args := m.Called()
	return args.Get(0).(ports.OrderNumberSequence)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) ServiceOrderRepository() ports.ServiceOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceOrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockClientDirectory struct{ mock.Mock }

func (m *MockClientDirectory) ContractIsActive(ctx context.Context, contractID kernel.UUID) (bool, error) {
	args := m.Called(ctx, contractID)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientDirectory) ClientForContract(ctx context.Context, contractID kernel.UUID) (kernel.UUID, error) {
	args := m.Called(ctx, contractID)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockCrewDirectory struct{ mock.Mock }

func (m *MockCrewDirectory) EmployeeExists(ctx context.Context, employeeID kernel.UUID) (bool, error) {
	args := m.Called(ctx, employeeID)
	return args.Bool(0), args.Error(1)
}

type MockMaterialCatalog struct{ mock.Mock }

func (m *MockMaterialCatalog) MaterialExists(ctx context.Context, materialID kernel.UUID) (bool, error) {
	args := m.Called(ctx, materialID)
	return args.Bool(0), args.Error(1)
}

// Shared fixtures.

func testWindow(t *testing.T) kernel.TimeWindow {
	t.Helper()
	start := time.Date(2026, time.March, 12, 8, 0, 0, 0, time.UTC)
	window, err := kernel.NewTimeWindow(start, start.Add(6*time.Hour))
	require.NoError(t, err)
	return window
}

func testAddress(t *testing.T, street string) serviceorder.Address {
	t.Helper()
	addr, err := serviceorder.NewAddress(street, "São Paulo", "SP", "01310-100", "")
	require.NoError(t, err)
	return addr
}

func testCrew(t *testing.T, employeeID kernel.UUID, role string) serviceorder.CrewAssignment {
	t.Helper()
	assignment, err := serviceorder.NewCrewAssignment(employeeID, role)
	require.NoError(t, err)
	return assignment
}

func testMaterialLine(t *testing.T, materialID kernel.UUID, qty int) serviceorder.MaterialLine {
	t.Helper()
	line, err := serviceorder.NewMaterialLine(materialID, qty)
	require.NoError(t, err)
	return line
}

func testStockEntry(t *testing.T, id kernel.UUID, available int) *material.StockEntry {
	t.Helper()
	entry, err := material.NewStockEntry(id, "moving boxes", available, 5)
	require.NoError(t, err)
	return entry
}

// testScheduledOrder builds an order in Scheduled status with one crew
// member and the given checklists.
func testScheduledOrder(t *testing.T, preLabels, postLabels []string) *serviceorder.ServiceOrder {
	t.Helper()

	number, err := serviceorder.NewOrderNumber(2026, 17)
	require.NoError(t, err)
	pre, err := serviceorder.NewChecklist(preLabels)
	require.NoError(t, err)
	post, err := serviceorder.NewChecklist(postLabels)
	require.NoError(t, err)

	order, err := serviceorder.NewServiceOrder(
		kernel.NewUUID(),
		number,
		kernel.NewUUID(),
		kernel.NewUUID(),
		testWindow(t),
		testAddress(t, "Rua Augusta 100"),
		testAddress(t, "Av. Paulista 900"),
		pre,
		post,
		"",
	)
	require.NoError(t, err)
	require.NoError(t, order.AssignCrewMember(testCrew(t, kernel.NewUUID(), "driver")))
	return order
}
