package store

import (
	"context"

	"gorm.io/gorm"

	"laptop-service-center/models"
)

type FeedbackStore struct {
	db *gorm.DB
}

func NewFeedbackStore(db *gorm.DB) *FeedbackStore {
	return &FeedbackStore{db: db}
}

func (s *FeedbackStore) Create(ctx context.Context, f *models.Feedback) (uint, error) {
	record := *f
	record.ID = 0
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return 0, storageError("create feedback", err)
	}
	return record.ID, nil
}

// List returns all feedback, newest first
func (s *FeedbackStore) List(ctx context.Context) ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&feedback).Error
	if err != nil {
		return nil, storageError("list feedback", err)
	}
	return feedback, nil
}
