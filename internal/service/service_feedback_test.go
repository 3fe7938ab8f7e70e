package service

import (
	"context"
	"testing"

	"github.com/kmolchanov/feedback-service/internal/logger"
	"github.com/kmolchanov/feedback-service/internal/store"
	"github.com/kmolchanov/feedback-service/internal/validators"
	"github.com/kmolchanov/feedback-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.FeedbackRepository
// ─────────────────────────────────────────────

type mockFeedbackRepository struct {
	createFn       func(ctx context.Context, feedback models.Feedback) (models.Feedback, error)
	findByIDFn     func(ctx context.Context, id int64) (models.Feedback, error)
	findByUserIDFn func(ctx context.Context, userID int64) ([]models.Feedback, error)
	findAllFn      func(ctx context.Context) ([]models.Feedback, error)
	updateStatusFn func(ctx context.Context, id int64, status models.FeedbackStatus) (models.Feedback, error)
	deleteFn       func(ctx context.Context, id int64) error
}

func (m *mockFeedbackRepository) CreateFeedback(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	if m.createFn != nil {
		return m.createFn(ctx, feedback)
	}
	return feedback, nil
}

func (m *mockFeedbackRepository) FindFeedbackByID(ctx context.Context, id int64) (models.Feedback, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.Feedback{}, nil
}

func (m *mockFeedbackRepository) FindFeedbacksByUserID(ctx context.Context, userID int64) ([]models.Feedback, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockFeedbackRepository) FindAllFeedbacks(ctx context.Context) ([]models.Feedback, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockFeedbackRepository) UpdateFeedbackStatus(ctx context.Context, id int64, status models.FeedbackStatus) (models.Feedback, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status)
	}
	return models.Feedback{}, nil
}

func (m *mockFeedbackRepository) DeleteFeedback(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func newTestFeedbackService(repo *mockFeedbackRepository) FeedbackService {
	return NewFeedbackService(repo, validators.NewFeedbackValidator(), logger.Nop())
}

// ─────────────────────────────────────────────
// CreateFeedback
// ─────────────────────────────────────────────

func TestFeedbackService_CreateFeedback_OwnerFromCaller(t *testing.T) {
	repo := &mockFeedbackRepository{
		createFn: func(_ context.Context, feedback models.Feedback) (models.Feedback, error) {
			assert.Equal(t, int64(3), feedback.UserID)
			feedback.ID = 1
			feedback.Status = models.StatusPending
			return feedback, nil
		},
	}
	svc := newTestFeedbackService(repo)

	created, err := svc.CreateFeedback(context.Background(), 3, models.CreateFeedbackRequest{
		FeedbackText: "Great service",
		Details:      "Everything worked",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, models.StatusPending, created.Status)
}

func TestFeedbackService_CreateFeedback_ValidationError(t *testing.T) {
	svc := newTestFeedbackService(&mockFeedbackRepository{})

	_, err := svc.CreateFeedback(context.Background(), 3, models.CreateFeedbackRequest{
		FeedbackText: "Meh",
		Details:      "too short text",
	})

	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
}

// ─────────────────────────────────────────────
// GetFeedbacksByUserID
// ─────────────────────────────────────────────

func TestFeedbackService_GetFeedbacksByUserID_Success(t *testing.T) {
	repo := &mockFeedbackRepository{
		findByUserIDFn: func(_ context.Context, userID int64) ([]models.Feedback, error) {
			assert.Equal(t, int64(3), userID)
			return []models.Feedback{{ID: 1, UserID: 3}, {ID: 2, UserID: 3}}, nil
		},
	}
	svc := newTestFeedbackService(repo)

	feedbacks, err := svc.GetFeedbacksByUserID(context.Background(), 3)

	require.NoError(t, err)
	assert.Len(t, feedbacks, 2)
}

func TestFeedbackService_GetFeedbacksByUserID_EmptyIsNotFound(t *testing.T) {
	repo := &mockFeedbackRepository{
		findByUserIDFn: func(_ context.Context, _ int64) ([]models.Feedback, error) {
			return []models.Feedback{}, nil
		},
	}
	svc := newTestFeedbackService(repo)

	_, err := svc.GetFeedbacksByUserID(context.Background(), 3)

	require.ErrorIs(t, err, store.ErrFeedbackNotFound)
}

// ─────────────────────────────────────────────
// UpdateFeedbackStatus
// ─────────────────────────────────────────────

func TestFeedbackService_UpdateFeedbackStatus_Success(t *testing.T) {
	repo := &mockFeedbackRepository{
		updateStatusFn: func(_ context.Context, id int64, status models.FeedbackStatus) (models.Feedback, error) {
			assert.Equal(t, models.StatusAccepted, status)
			return models.Feedback{ID: id, Status: status}, nil
		},
	}
	svc := newTestFeedbackService(repo)

	updated, err := svc.UpdateFeedbackStatus(context.Background(), 7, models.FeedbackStatusRequest{Status: "accepted"})

	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)
}

func TestFeedbackService_UpdateFeedbackStatus_InvalidStatus(t *testing.T) {
	svc := newTestFeedbackService(&mockFeedbackRepository{})

	_, err := svc.UpdateFeedbackStatus(context.Background(), 7, models.FeedbackStatusRequest{Status: "approved"})

	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestFeedbackService_UpdateFeedbackStatus_NotFound(t *testing.T) {
	repo := &mockFeedbackRepository{
		updateStatusFn: func(_ context.Context, _ int64, _ models.FeedbackStatus) (models.Feedback, error) {
			return models.Feedback{}, store.ErrFeedbackNotFound
		},
	}
	svc := newTestFeedbackService(repo)

	_, err := svc.UpdateFeedbackStatus(context.Background(), 404, models.FeedbackStatusRequest{Status: "rejected"})

	require.ErrorIs(t, err, store.ErrFeedbackNotFound)
}

// ─────────────────────────────────────────────
// DeleteFeedback
// ─────────────────────────────────────────────

func TestFeedbackService_DeleteFeedback_ReturnsDeletedRecord(t *testing.T) {
	stored := models.Feedback{ID: 7, FeedbackText: "text", UserID: 3}
	repo := &mockFeedbackRepository{
		findByIDFn: func(_ context.Context, _ int64) (models.Feedback, error) {
			return stored, nil
		},
	}
	svc := newTestFeedbackService(repo)

	deleted, err := svc.DeleteFeedback(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, stored, deleted)
}

func TestFeedbackService_DeleteFeedback_NotFound(t *testing.T) {
	repo := &mockFeedbackRepository{
		findByIDFn: func(_ context.Context, _ int64) (models.Feedback, error) {
			return models.Feedback{}, store.ErrFeedbackNotFound
		},
	}
	svc := newTestFeedbackService(repo)

	_, err := svc.DeleteFeedback(context.Background(), 404)

	require.ErrorIs(t, err, store.ErrFeedbackNotFound)
}

// ─────────────────────────────────────────────
// GetFeedbackByID / GetAllFeedbacks
// ─────────────────────────────────────────────

func TestFeedbackService_GetFeedbackByID_NotFound(t *testing.T) {
	repo := &mockFeedbackRepository{
		findByIDFn: func(_ context.Context, _ int64) (models.Feedback, error) {
			return models.Feedback{}, store.ErrFeedbackNotFound
		},
	}
	svc := newTestFeedbackService(repo)

	_, err := svc.GetFeedbackByID(context.Background(), 404)

	require.ErrorIs(t, err, store.ErrFeedbackNotFound)
}

func TestFeedbackService_GetAllFeedbacks_Success(t *testing.T) {
	repo := &mockFeedbackRepository{
		findAllFn: func(_ context.Context) ([]models.Feedback, error) {
			return []models.Feedback{{ID: 1}, {ID: 2}, {ID: 3}}, nil
		},
	}
	svc := newTestFeedbackService(repo)

	feedbacks, err := svc.GetAllFeedbacks(context.Background())

	require.NoError(t, err)
	assert.Len(t, feedbacks, 3)
}
