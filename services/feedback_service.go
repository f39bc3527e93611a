package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"laptop-service-center/models"
)

const (
	MinRating = 1
	MaxRating = 5
)

type FeedbackRepository interface {
	Create(ctx context.Context, f *models.Feedback) (uint, error)
	List(ctx context.Context) ([]models.Feedback, error)
}

type FeedbackService struct {
	repo   FeedbackRepository
	logger *zap.Logger
}

func NewFeedbackService(repo FeedbackRepository, logger *zap.Logger) *FeedbackService {
	return &FeedbackService{repo: repo, logger: logger}
}

// Submit validates and stores customer feedback and returns its id
func (s *FeedbackService) Submit(ctx context.Context, input models.FeedbackCreate) (uint, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.Email = strings.TrimSpace(input.Email)
	input.Comments = strings.TrimSpace(input.Comments)

	var missing []string
	if input.CustomerName == "" {
		missing = append(missing, "customer_name")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return 0, &ValidationError{Fields: missing}
	}
	if input.Rating < MinRating || input.Rating > MaxRating {
		return 0, &ValidationError{Fields: []string{"rating"}, Message: "rating must be between 1 and 5"}
	}

	id, err := s.repo.Create(ctx, &models.Feedback{
		CustomerName: input.CustomerName,
		Email:        input.Email,
		Rating:       input.Rating,
		Comments:     input.Comments,
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("⭐ Feedback submitted", zap.Uint("feedback_id", id), zap.Int("rating", input.Rating))
	return id, nil
}

// List returns all feedback, newest first
func (s *FeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	return s.repo.List(ctx)
}
