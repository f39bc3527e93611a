package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"laptop-service-center/models"
	"laptop-service-center/services"
)

type fakeSource struct {
	views    []services.ComplaintView
	err      error
	asked    time.Time
	notified []string
}

func (f *fakeSource) Overdue(_ context.Context, now time.Time) ([]services.ComplaintView, error) {
	f.asked = now
	return f.views, f.err
}

func (f *fakeSource) NotifyOverdue(_ context.Context, v services.ComplaintView) {
	f.notified = append(f.notified, v.ID)
}

func TestRunOnceNotifiesEachOverdueComplaint(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	source := &fakeSource{views: []services.ComplaintView{
		{ID: "TF00001", Status: models.StatusPending},
		{ID: "TF00003", Status: models.StatusUnderRepair},
	}}
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	job, err := NewOverdueJob(source, "0 9 * * *", zap.New(core))
	require.NoError(t, err)
	job.now = func() time.Time { return now }

	n, err := job.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, now, source.asked)
	assert.Equal(t, []string{"TF00001", "TF00003"}, source.notified)
	assert.Equal(t, 2, logs.FilterMessage("⏰ Complaint overdue").Len())
}

func TestRunOnceError(t *testing.T) {
	source := &fakeSource{err: errors.New("db down")}
	job, err := NewOverdueJob(source, "@hourly", zap.NewNop())
	require.NoError(t, err)

	_, err = job.RunOnce(context.Background())
	assert.EqualError(t, err, "db down")
	assert.Empty(t, source.notified)
}

func TestNewOverdueJobRejectsBadSchedule(t *testing.T) {
	_, err := NewOverdueJob(&fakeSource{}, "every day", zap.NewNop())
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	job, err := NewOverdueJob(&fakeSource{}, "0 9 * * *", zap.NewNop())
	require.NoError(t, err)

	job.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	job.Stop(ctx)
}
