package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker satisfies the repositories' tracker parameter when
// tests drive them outside a unit of work.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// startPostgres spins up a disposable database and returns a connected GORM
// handle plus the container for teardown.
func startPostgres(t require.TestingT) (*postgres.PostgresContainer, *gorm.DB) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	return container, db
}

type orderSpec struct {
	window     kernel.TimeWindow
	vehicleID  *kernel.UUID
	crew       []serviceorder.CrewAssignment
	materials  []serviceorder.MaterialLine
	preLabels  []string
	postLabels []string
	notes      string
	sequence   int
}

// buildOrder assembles a scheduled order for seeding through the repository.
func buildOrder(t require.TestingT, spec orderSpec) *serviceorder.ServiceOrder {
	if spec.sequence == 0 {
		spec.sequence = 1
	}
	number, err := serviceorder.NewOrderNumber(2026, spec.sequence)
	require.NoError(t, err)

	origin, err := serviceorder.NewAddress("Av. Paulista, 1000", "São Paulo", "SP", "01310-100", "")
	require.NoError(t, err)
	destination, err := serviceorder.NewAddress("Rua Augusta, 500", "São Paulo", "SP", "01305-000", "apt 12")
	require.NoError(t, err)

	pre, err := serviceorder.NewChecklist(spec.preLabels)
	require.NoError(t, err)
	post, err := serviceorder.NewChecklist(spec.postLabels)
	require.NoError(t, err)

	o, err := serviceorder.NewServiceOrder(
		kernel.NewUUID(), number, kernel.NewUUID(), kernel.NewUUID(),
		spec.window, origin, destination, pre, post, spec.notes)
	require.NoError(t, err)

	if spec.vehicleID != nil {
		require.NoError(t, o.AssignVehicle(*spec.vehicleID))
	}
	for _, assignment := range spec.crew {
		require.NoError(t, o.AssignCrewMember(assignment))
	}
	if len(spec.materials) > 0 {
		require.NoError(t, o.SetMaterialLines(spec.materials))
	}
	return o
}

func window(t require.TestingT, start time.Time, hours int) kernel.TimeWindow {
	w, err := kernel.NewTimeWindow(start, start.Add(time.Duration(hours)*time.Hour))
	require.NoError(t, err)
	return w
}

func crewMember(t *testing.T, employeeID kernel.UUID, role string) serviceorder.CrewAssignment {
	t.Helper()
	assignment, err := serviceorder.NewCrewAssignment(employeeID, role)
	require.NoError(t, err)
	return assignment
}
