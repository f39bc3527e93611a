package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"laptop-service-center/models"
	"laptop-service-center/utils"
)

// DefaultTurnaround is added to created_at to estimate completion
const DefaultTurnaround = 3 * 24 * time.Hour

// ComplaintRepository is the storage the complaint service needs
type ComplaintRepository interface {
	Create(ctx context.Context, c *models.Complaint) (uint, error)
	Get(ctx context.Context, id uint) (*models.Complaint, error)
	ListAll(ctx context.Context) ([]models.Complaint, error)
	UpdateStatus(ctx context.Context, id uint, status models.ComplaintStatus) error
	CountByStatus(ctx context.Context) (map[models.ComplaintStatus]int64, error)
	ListOpenCreatedBefore(ctx context.Context, cutoff time.Time) ([]models.Complaint, error)
}

// ComplaintView is a complaint as seen outside the service. It carries the
// public id only.
type ComplaintView struct {
	ID                   string
	CustomerName         string
	Email                string
	Phone                string
	LaptopModel          string
	Issue                string
	ImageURL             *string
	PreferredContactTime string
	Status               models.ComplaintStatus
	CreatedAt            time.Time
	EstimatedCompletion  time.Time
}

// ComplaintStats summarises complaints per status
type ComplaintStats struct {
	Total    int64
	ByStatus map[models.ComplaintStatus]int64
}

type ComplaintService struct {
	repo        ComplaintRepository
	transitions models.TransitionTable
	notifier    Notifier
	turnaround  time.Duration
	logger      *zap.Logger
}

type ComplaintOption func(*ComplaintService)

// WithTransitions replaces the default fully connected transition table
func WithTransitions(table models.TransitionTable) ComplaintOption {
	return func(s *ComplaintService) { s.transitions = table }
}

func WithNotifier(n Notifier) ComplaintOption {
	return func(s *ComplaintService) { s.notifier = n }
}

// WithTurnaround sets the delay used for estimated completion
func WithTurnaround(d time.Duration) ComplaintOption {
	return func(s *ComplaintService) {
		if d > 0 {
			s.turnaround = d
		}
	}
}

func NewComplaintService(repo ComplaintRepository, logger *zap.Logger, opts ...ComplaintOption) *ComplaintService {
	s := &ComplaintService{
		repo:        repo,
		transitions: models.DefaultTransitions(),
		notifier:    NopNotifier{},
		turnaround:  DefaultTurnaround,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate trims the form in place and reports every required field left empty
func (s *ComplaintService) Validate(form *models.ComplaintForm) error {
	form.CustomerName = strings.TrimSpace(form.CustomerName)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)
	form.LaptopBrand = strings.TrimSpace(form.LaptopBrand)
	form.Model = strings.TrimSpace(form.Model)
	form.Issue = strings.TrimSpace(form.Issue)
	form.PreferredContactTime = strings.TrimSpace(form.PreferredContactTime)

	required := []struct {
		name  string
		value string
	}{
		{"customer_name", form.CustomerName},
		{"email", form.Email},
		{"phone", form.Phone},
		{"laptop_brand", form.LaptopBrand},
		{"model", form.Model},
		{"issue", form.Issue},
	}

	var missing []string
	for _, field := range required {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// Submit validates and stores a new complaint and returns its public id
func (s *ComplaintService) Submit(ctx context.Context, form models.ComplaintForm, imageURL *string) (string, error) {
	if err := s.Validate(&form); err != nil {
		return "", err
	}

	complaint := &models.Complaint{
		CustomerName:         form.CustomerName,
		Email:                form.Email,
		Phone:                form.Phone,
		LaptopBrand:          form.LaptopBrand,
		Model:                form.Model,
		Issue:                form.Issue,
		ImageURL:             imageURL,
		PreferredContactTime: form.PreferredContactTime,
	}

	rowID, err := s.repo.Create(ctx, complaint)
	if err != nil {
		return "", err
	}
	publicID := utils.EncodeComplaintID(rowID)

	s.logger.Info("📝 Complaint submitted", zap.String("complaint_id", publicID))
	s.notify(ctx, ComplaintEvent{
		Type:         EventComplaintSubmitted,
		ComplaintID:  publicID,
		Status:       models.StatusPending,
		CustomerName: complaint.CustomerName,
		Email:        complaint.Email,
		LaptopModel:  complaint.LaptopModel(),
	})
	return publicID, nil
}

// Track looks a complaint up by its public or bare numeric id
func (s *ComplaintService) Track(ctx context.Context, publicID string) (*ComplaintView, error) {
	rowID, err := utils.DecodeComplaintID(publicID)
	if err != nil {
		return nil, err
	}

	complaint, err := s.repo.Get(ctx, rowID)
	if err != nil {
		return nil, err
	}

	view := s.view(complaint)
	return &view, nil
}

// List returns every complaint in store order, newest first
func (s *ComplaintService) List(ctx context.Context) ([]ComplaintView, error) {
	complaints, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ComplaintView, 0, len(complaints))
	for i := range complaints {
		views = append(views, s.view(&complaints[i]))
	}
	return views, nil
}

// Search filters List by public id, customer name or laptop model, ignoring case.
// An empty term returns everything.
func (s *ComplaintService) Search(ctx context.Context, term string) ([]ComplaintView, error) {
	views, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return views, nil
	}

	matches := make([]ComplaintView, 0, len(views))
	for _, v := range views {
		if strings.Contains(strings.ToLower(v.ID), term) ||
			strings.Contains(strings.ToLower(v.CustomerName), term) ||
			strings.Contains(strings.ToLower(v.LaptopModel), term) {
			matches = append(matches, v)
		}
	}
	return matches, nil
}

// SetStatus moves a complaint to a new status when the transition table allows it
func (s *ComplaintService) SetStatus(ctx context.Context, publicID, status string) error {
	rowID, err := utils.DecodeComplaintID(publicID)
	if err != nil {
		return err
	}

	next, ok := models.ParseComplaintStatus(status)
	if !ok {
		return ErrInvalidStatus
	}

	current, err := s.repo.Get(ctx, rowID)
	if err != nil {
		return err
	}

	if !s.transitions.Allows(current.Status, next) {
		return ErrTransitionNotAllowed
	}

	if err := s.repo.UpdateStatus(ctx, rowID, next); err != nil {
		return err
	}

	canonicalID := utils.EncodeComplaintID(rowID)
	s.logger.Info("🔄 Complaint status updated",
		zap.String("complaint_id", canonicalID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(next)))
	s.notify(ctx, ComplaintEvent{
		Type:           EventComplaintStatusChanged,
		ComplaintID:    canonicalID,
		Status:         next,
		PreviousStatus: current.Status,
		CustomerName:   current.CustomerName,
		Email:          current.Email,
		LaptopModel:    current.LaptopModel(),
	})
	return nil
}

// Stats returns the total and per status complaint counts
func (s *ComplaintService) Stats(ctx context.Context) (*ComplaintStats, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ComplaintStats{ByStatus: counts}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

// Overdue returns open complaints whose estimated completion is before now
func (s *ComplaintService) Overdue(ctx context.Context, now time.Time) ([]ComplaintView, error) {
	complaints, err := s.repo.ListOpenCreatedBefore(ctx, now.Add(-s.turnaround))
	if err != nil {
		return nil, err
	}

	views := make([]ComplaintView, 0, len(complaints))
	for i := range complaints {
		views = append(views, s.view(&complaints[i]))
	}
	return views, nil
}

// NotifyOverdue publishes an overdue event for a complaint
func (s *ComplaintService) NotifyOverdue(ctx context.Context, v ComplaintView) {
	s.notify(ctx, ComplaintEvent{
		Type:         EventComplaintOverdue,
		ComplaintID:  v.ID,
		Status:       v.Status,
		CustomerName: v.CustomerName,
		Email:        v.Email,
		LaptopModel:  v.LaptopModel,
	})
}

func (s *ComplaintService) view(c *models.Complaint) ComplaintView {
	return ComplaintView{
		ID:                   utils.EncodeComplaintID(c.ID),
		CustomerName:         c.CustomerName,
		Email:                c.Email,
		Phone:                c.Phone,
		LaptopModel:          c.LaptopModel(),
		Issue:                c.Issue,
		ImageURL:             c.ImageURL,
		PreferredContactTime: c.PreferredContactTime,
		Status:               c.Status,
		CreatedAt:            c.CreatedAt,
		EstimatedCompletion:  c.CreatedAt.Add(s.turnaround),
	}
}

func (s *ComplaintService) notify(ctx context.Context, event ComplaintEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	if err := s.notifier.Notify(ctx, event); err != nil {
		s.logger.Warn("⚠️ Failed to deliver complaint event",
			zap.String("type", string(event.Type)),
			zap.String("complaint_id", event.ComplaintID),
			zap.Error(err))
	}
}
