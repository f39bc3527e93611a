package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"laptop-service-center/models"
)

// EventType names a complaint lifecycle event
type EventType string

const (
	EventComplaintSubmitted     EventType = "complaint_submitted"
	EventComplaintStatusChanged EventType = "complaint_status_changed"
	EventComplaintOverdue       EventType = "complaint_overdue"
)

// ComplaintEvent is published after a complaint changes
type ComplaintEvent struct {
	Type           EventType              `json:"type"`
	ComplaintID    string                 `json:"complaint_id"`
	Status         models.ComplaintStatus `json:"status"`
	PreviousStatus models.ComplaintStatus `json:"previous_status,omitempty"`
	CustomerName   string                 `json:"customer_name"`
	Email          string                 `json:"email"`
	LaptopModel    string                 `json:"laptop_model"`
	OccurredAt     time.Time              `json:"occurred_at"`
}

// Notifier receives complaint events
type Notifier interface {
	Notify(ctx context.Context, event ComplaintEvent) error
}

// NopNotifier drops every event
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, ComplaintEvent) error { return nil }

// LogNotifier writes every event to the log
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, event ComplaintEvent) error {
	n.logger.Info("complaint event",
		zap.String("type", string(event.Type)),
		zap.String("complaint_id", event.ComplaintID),
		zap.String("status", string(event.Status)),
		zap.String("previous_status", string(event.PreviousStatus)),
	)
	return nil
}

// MultiNotifier fans an event out to every notifier and joins their errors
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, event ComplaintEvent) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
