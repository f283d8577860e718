package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AutomationJob runs the automation scanner on a fixed schedule. Every
// entry point, including the immediate scan at startup, goes through the
// same SkipIfStillRunning wrapper, so a scan that outlives its interval
// suppresses the next tick instead of overlapping it.
type AutomationJob struct {
	handler commands.RunAutomationChecksCommandHandler
	scan    cron.Job
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAutomationJob creates a job that runs the automation checks every
// minute.
func NewAutomationJob(handler commands.RunAutomationChecksCommandHandler, logger *slog.Logger) *AutomationJob {
	job := &AutomationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "automation_job"),
	}
	job.scan = cron.NewChain(
		cron.SkipIfStillRunning(cron.DiscardLogger),
	).Then(cron.FuncJob(job.run))
	return job
}

// Start schedules the scan every minute and runs one scan immediately so a
// restart does not wait a full interval before catching stuck orders. The
// startup scan shares the in-flight guard with the scheduled ticks.
func (j *AutomationJob) Start() error {
	_, err := j.cron.AddJob("* * * * *", j.scan)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Automation job started (running every minute)")

	go j.scan.Run()
	return nil
}

// Stop stops the automation job. A scan already in flight finishes.
func (j *AutomationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Automation job stopped")
}

func (j *AutomationJob) run() {
	ctx := context.Background()
	cmd := commands.NewRunAutomationChecksCommand()

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Automation scan finished with errors", "error", err)
	}

	if result.OverduePayments > 0 || result.DelayedShipments > 0 {
		j.logger.InfoContext(ctx, "Automation scan raised alerts",
			"overdue_payments", result.OverduePayments,
			"delayed_shipments", result.DelayedShipments,
		)
	}
}
