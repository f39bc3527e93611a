package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"laptop-service-center/models"
	"laptop-service-center/store"
)

func TestFeedbackRatingBounds(t *testing.T) {
	ctx := context.Background()
	svc := NewFeedbackService(store.NewFeedbackStore(setupDB(t)), zap.NewNop())

	tests := []struct {
		rating  int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{3, false},
		{5, false},
		{6, true},
		{-1, true},
	}

	for _, tt := range tests {
		_, err := svc.Submit(ctx, models.FeedbackCreate{
			CustomerName: "Vikram Singh",
			Email:        "vikram@example.com",
			Rating:       tt.rating,
			Comments:     "Excellent service!",
		})
		if tt.wantErr {
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "rating %d", tt.rating)
			assert.Equal(t, []string{"rating"}, verr.Fields)
		} else {
			assert.NoError(t, err, "rating %d", tt.rating)
		}
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestFeedbackRequiredFields(t *testing.T) {
	svc := NewFeedbackService(store.NewFeedbackStore(setupDB(t)), zap.NewNop())

	_, err := svc.Submit(context.Background(), models.FeedbackCreate{CustomerName: " ", Rating: 4})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"customer_name", "email"}, verr.Fields)
}

func TestFeedbackListNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := NewFeedbackService(store.NewFeedbackStore(setupDB(t)), zap.NewNop())

	first, err := svc.Submit(ctx, models.FeedbackCreate{CustomerName: "A", Email: "a@example.com", Rating: 5})
	require.NoError(t, err)
	second, err := svc.Submit(ctx, models.FeedbackCreate{CustomerName: "B", Email: "b@example.com", Rating: 4})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0].ID)
	assert.Equal(t, first, list[1].ID)
}
