package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OverdueOrdersReportJob periodically reports orders whose schedule window
// has ended without the order reaching a terminal status.
// Runs every hour and logs one warning per overdue order.
type OverdueOrdersReportJob struct {
	orders ports.ServiceOrderRepository
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOverdueOrdersReportJob creates a new job for reporting overdue orders.
// Uses the service order repository to scan active orders every hour.
func NewOverdueOrdersReportJob(orders ports.ServiceOrderRepository, logger *slog.Logger) *OverdueOrdersReportJob {
	return &OverdueOrdersReportJob{
		orders: orders,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "overdue_orders_report_job"),
	}
}

// Start begins the overdue order report job to run at half past every hour.
func (j *OverdueOrdersReportJob) Start() error {
	_, err := j.cron.AddFunc("0 30 * * * *", func() {
		j.report(context.Background(), time.Now().UTC())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue order report job started (running every hour)")
	return nil
}

// report warns once per active order whose schedule window ended before now.
func (j *OverdueOrdersReportJob) report(ctx context.Context, now time.Time) {
	active, err := j.orders.GetAllActive(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue order report job failed", "error", err)
		return
	}

	for _, order := range active {
		if order.Window().End().Before(now) {
			j.logger.WarnContext(ctx, "Service order past its schedule window",
				"orderId", order.ID().String(),
				"number", order.Number().String(),
				"status", order.Status().String(),
				"windowEnd", order.Window().End())
		}
	}
}

// Stop stops the overdue order report job.
func (j *OverdueOrdersReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue order report job stopped")
}
