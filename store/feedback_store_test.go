package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptop-service-center/models"
)

func TestFeedbackStoreCreateAndList(t *testing.T) {
	ctx := context.Background()
	s := NewFeedbackStore(setupDB(t))
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	first, err := s.Create(ctx, &models.Feedback{CustomerName: "Vikram Singh", Email: "vikram@example.com", Rating: 5, CreatedAt: base})
	require.NoError(t, err)
	second, err := s.Create(ctx, &models.Feedback{CustomerName: "Neha Sharma", Email: "neha@example.com", Rating: 4, CreatedAt: base.Add(time.Minute)})
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0].ID)
	assert.Equal(t, first, list[1].ID)
	assert.Equal(t, "Neha Sharma", list[0].CustomerName)
}

func TestFeedbackStoreRejectsOutOfRangeRating(t *testing.T) {
	s := NewFeedbackStore(setupDB(t))

	_, err := s.Create(context.Background(), &models.Feedback{CustomerName: "A", Email: "a@example.com", Rating: 0})
	assert.ErrorIs(t, err, ErrStorage)
}
