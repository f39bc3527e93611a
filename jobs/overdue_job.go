package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"laptop-service-center/services"
)

// OverdueSource lists open complaints past their estimated completion and publishes events for them
type OverdueSource interface {
	Overdue(ctx context.Context, now time.Time) ([]services.ComplaintView, error)
	NotifyOverdue(ctx context.Context, v services.ComplaintView)
}

// OverdueJob periodically reports complaints that missed their estimated completion
type OverdueJob struct {
	source OverdueSource
	cron   *cron.Cron
	now    func() time.Time
	logger *zap.Logger
}

// NewOverdueJob schedules the scan with a standard five field cron spec
func NewOverdueJob(source OverdueSource, spec string, logger *zap.Logger) (*OverdueJob, error) {
	j := &OverdueJob{
		source: source,
		cron:   cron.New(),
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}

	if _, err := j.cron.AddFunc(spec, func() {
		if _, err := j.RunOnce(context.Background()); err != nil {
			j.logger.Error("❌ Overdue complaint scan failed", zap.Error(err))
		}
	}); err != nil {
		return nil, fmt.Errorf("invalid OVERDUE_CRON %q: %w", spec, err)
	}
	return j, nil
}

// Start begins the schedule
func (j *OverdueJob) Start() {
	j.cron.Start()
	j.logger.Info("🚀 Overdue job started")
}

// Stop halts the schedule and waits for a running scan to finish or ctx to end
func (j *OverdueJob) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
	}
	j.logger.Info("🛑 Overdue job stopped")
}

// RunOnce scans for overdue complaints, publishes an event for each and returns how many were found
func (j *OverdueJob) RunOnce(ctx context.Context) (int, error) {
	overdue, err := j.source.Overdue(ctx, j.now())
	if err != nil {
		return 0, err
	}

	if len(overdue) > 0 {
		j.logger.Info("⏰ Found overdue complaints", zap.Int("count", len(overdue)))
	}
	for _, v := range overdue {
		j.logger.Warn("⏰ Complaint overdue",
			zap.String("complaint_id", v.ID),
			zap.String("status", string(v.Status)),
			zap.Time("estimated_completion", v.EstimatedCompletion))
		j.source.NotifyOverdue(ctx, v)
	}
	return len(overdue), nil
}
