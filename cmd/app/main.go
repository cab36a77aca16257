package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/wevertonvip010/vipmudancas-api-sub000/cmd"
	httpin "github.com/wevertonvip010/vipmudancas-api-sub000/internal/adapters/in/http"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/adapters/out/postgres/directory"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/adapters/out/postgres/orderrepo"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/adapters/out/postgres/stockrepo"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/adapters/out/postgres/vehiclerepo"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// .env is a local development convenience, production reads the
	// environment directly.
	_ = godotenv.Load(".env")

	var config cmd.Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	return config
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	db, err := gorm.Open(gormpostgres.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func mustMigrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.CrewAssignmentDTO{},
		&orderrepo.MaterialLineDTO{},
		&orderrepo.ChecklistItemDTO{},
		&orderrepo.OrderNumberSequenceDTO{},
		&stockrepo.StockEntryDTO{},
		&stockrepo.StockMovementDTO{},
		&vehiclerepo.VehicleDTO{},
		&directory.ContractDTO{},
		&directory.EmployeeDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateGetLowStockMaterialsQueryHandler(),
		app.CreateServiceOrderRepository(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateServiceOrderCommandHandler(),
		app.CreateUpdateServiceOrderCommandHandler(),
		app.CreateStartServiceOrderCommandHandler(),
		app.CreateCompleteServiceOrderCommandHandler(),
		app.CreateCancelServiceOrderCommandHandler(),
		app.CreateUpdateChecklistCommandHandler(),
		app.CreateGetServiceOrderQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetLowStockMaterialsQueryHandler(),
		app.CreateGetCrewAvailabilityQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
