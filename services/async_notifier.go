package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// ErrNotifierBusy is returned when the delivery queue is full and the event was dropped
var ErrNotifierBusy = errors.New("notifier queue is full")

const (
	defaultQueueSize       = 64
	defaultDeliveryTimeout = 30 * time.Second
)

// AsyncNotifier queues events and hands them to a slow notifier, such as mail,
// from its own goroutine. Notify never waits on the wrapped notifier.
type AsyncNotifier struct {
	next    Notifier
	queue   chan ComplaintEvent
	done    chan struct{}
	timeout time.Duration
	logger  *zap.Logger
}

func NewAsyncNotifier(next Notifier, queueSize int, logger *zap.Logger) *AsyncNotifier {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &AsyncNotifier{
		next:    next,
		queue:   make(chan ComplaintEvent, queueSize),
		done:    make(chan struct{}),
		timeout: defaultDeliveryTimeout,
		logger:  logger,
	}
}

// Notify queues the event and returns at once
func (n *AsyncNotifier) Notify(_ context.Context, event ComplaintEvent) error {
	select {
	case <-n.done:
		return nil
	default:
	}

	select {
	case n.queue <- event:
		return nil
	default:
		n.logger.Warn("⚠️ Notification queue full, dropping event",
			zap.String("type", string(event.Type)),
			zap.String("complaint_id", event.ComplaintID))
		return ErrNotifierBusy
	}
}

// Run delivers queued events until ctx is done. Events still queued at that
// point are dropped.
func (n *AsyncNotifier) Run(ctx context.Context) {
	defer close(n.done)
	for {
		select {
		case <-ctx.Done():
			if dropped := len(n.queue); dropped > 0 {
				n.logger.Warn("Notifier stopped with undelivered events", zap.Int("dropped", dropped))
			}
			return
		case event := <-n.queue:
			n.deliver(ctx, event)
		}
	}
}

// Done is closed once Run has returned
func (n *AsyncNotifier) Done() <-chan struct{} {
	return n.done
}

func (n *AsyncNotifier) deliver(ctx context.Context, event ComplaintEvent) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	if err := n.next.Notify(ctx, event); err != nil {
		n.logger.Warn("⚠️ Notification delivery failed", zap.Error(err),
			zap.String("type", string(event.Type)),
			zap.String("complaint_id", event.ComplaintID))
	}
}
