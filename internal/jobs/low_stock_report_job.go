package jobs

import (
	"context"
	"log/slog"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockReportJob periodically reports materials that are running low.
// Runs every hour and logs one warning per material at or below its minimum.
type LowStockReportJob struct {
	handler queries.GetLowStockMaterialsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLowStockReportJob creates a new job for reporting low stock levels.
// Uses GetLowStockMaterialsQueryHandler to read current stock every hour.
func NewLowStockReportJob(handler queries.GetLowStockMaterialsQueryHandler, logger *slog.Logger) *LowStockReportJob {
	return &LowStockReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "low_stock_report_job"),
	}
}

// Start begins the low-stock report job to run at the top of every hour.
func (j *LowStockReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetLowStockMaterialsQuery()

		materials, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock report job failed", "error", err)
			return
		}

		for _, m := range materials {
			j.logger.WarnContext(ctx, "Material below minimum stock level",
				"materialId", m.ID.String(),
				"name", m.Name,
				"available", m.Available,
				"minimum", m.Minimum)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock report job started (running every hour)")
	return nil
}

// Stop stops the low-stock report job.
func (j *LowStockReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}
