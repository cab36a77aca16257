package jobs

import (
	"fmt"
	"log/slog"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/application/usecases/queries"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lowStockReportJob      *LowStockReportJob
	overdueOrdersReportJob *OverdueOrdersReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the job dependencies to wire up the job execution.
func NewJobManager(
	lowStockHandler queries.GetLowStockMaterialsQueryHandler,
	orders ports.ServiceOrderRepository,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lowStockReportJob:      NewLowStockReportJob(lowStockHandler, logger),
		overdueOrdersReportJob: NewOverdueOrdersReportJob(orders, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock report job: %w", err)
	}

	if err := jm.overdueOrdersReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.lowStockReportJob.Stop()
		return fmt.Errorf("failed to start overdue order report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueOrdersReportJob.Stop()
	jm.lowStockReportJob.Stop()
}
