package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/adapters/out/postgres/orderrepo"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/application/usecases/queries"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetActiveOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveOrdersQueryHandler
	orderRepo *orderrepo.GormServiceOrderRepository
}

func (s *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
	s.container, s.db = startPostgres(s.T())

	err := s.db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.CrewAssignmentDTO{},
		&orderrepo.MaterialLineDTO{},
		&orderrepo.ChecklistItemDTO{},
	)
	s.Require().NoError(err)

	s.handler = queries.NewGetActiveOrdersQueryHandler(s.db)
	s.orderRepo = orderrepo.NewGormServiceOrderRepository(s.db, &mockAggregateTracker{})
}

func (s *GetActiveOrdersQueryHandlerTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *GetActiveOrdersQueryHandlerTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE TABLE orders, crew_assignments, material_lines, checklist_items CASCADE").Error)
}

func (s *GetActiveOrdersQueryHandlerTestSuite) seed(sequence int, start time.Time) *serviceorder.ServiceOrder {
	o := buildOrder(s.T(), orderSpec{window: window(s.T(), start, 6), sequence: sequence})
	s.Require().NoError(s.orderRepo.Add(context.Background(), o))
	return o
}

func (s *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := s.handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())

	s.Require().NoError(err)
	s.NotNil(result)
	s.Empty(result)
}

func (s *GetActiveOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := s.handler.Handle(context.Background(), queries.GetActiveOrdersQuery{})

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func (s *GetActiveOrdersQueryHandlerTestSuite) TestHandle_ExcludesTerminalOrders() {
	base := time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC)

	scheduled := s.seed(1, base)

	inProgress := buildOrder(s.T(), orderSpec{window: window(s.T(), base.Add(24*time.Hour), 6), sequence: 2})
	s.Require().NoError(inProgress.Start())
	s.Require().NoError(s.orderRepo.Add(context.Background(), inProgress))

	cancelled := buildOrder(s.T(), orderSpec{window: window(s.T(), base.Add(48*time.Hour), 6), sequence: 3})
	s.Require().NoError(cancelled.Cancel())
	s.Require().NoError(s.orderRepo.Add(context.Background(), cancelled))

	completed := buildOrder(s.T(), orderSpec{window: window(s.T(), base.Add(72*time.Hour), 6), sequence: 4})
	s.Require().NoError(completed.Start())
	s.Require().NoError(completed.Complete())
	s.Require().NoError(s.orderRepo.Add(context.Background(), completed))

	result, err := s.handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())

	s.Require().NoError(err)
	s.Require().Len(result, 2)

	ids := map[string]string{
		result[0].ID.String(): result[0].Status,
		result[1].ID.String(): result[1].Status,
	}
	s.Equal("Scheduled", ids[scheduled.ID().String()])
	s.Equal("InProgress", ids[inProgress.ID().String()])
}

func (s *GetActiveOrdersQueryHandlerTestSuite) TestHandle_SortsByWindowStart() {
	base := time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC)

	later := s.seed(1, base.Add(48*time.Hour))
	earliest := s.seed(2, base)
	middle := s.seed(3, base.Add(24*time.Hour))

	result, err := s.handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())

	s.Require().NoError(err)
	s.Require().Len(result, 3)
	s.True(result[0].ID.IsEqual(earliest.ID()))
	s.True(result[1].ID.IsEqual(middle.ID()))
	s.True(result[2].ID.IsEqual(later.ID()))
}

func (s *GetActiveOrdersQueryHandlerTestSuite) TestHandle_MapsVehicleAndWindow() {
	base := time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC)
	vehicleID := kernel.NewUUID()

	o := buildOrder(s.T(), orderSpec{
		window:    window(s.T(), base, 6),
		vehicleID: &vehicleID,
		sequence:  5,
	})
	s.Require().NoError(s.orderRepo.Add(context.Background(), o))

	result, err := s.handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal("2026-00005", result[0].Number)
	s.True(result[0].ClientID.IsEqual(o.ClientID()))
	s.True(result[0].WindowStart.Equal(base))
	s.True(result[0].WindowEnd.Equal(base.Add(6*time.Hour)))
	s.Require().NotNil(result[0].VehicleID)
	s.True(result[0].VehicleID.IsEqual(vehicleID))
}

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}
