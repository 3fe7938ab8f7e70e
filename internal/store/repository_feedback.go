package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kmolchanov/feedback-service/internal/logger"
	"github.com/kmolchanov/feedback-service/models"
)

// feedbackRepository is the PostgreSQL-backed implementation of
// [FeedbackRepository] over the "feedbacks" table.
type feedbackRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFeedbackRepository constructs a [FeedbackRepository] backed by the
// provided database connection and logger.
func NewFeedbackRepository(db *DB, logger *logger.Logger) FeedbackRepository {
	logger.Debug().Msg("creating feedback repository")
	return &feedbackRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFeedback persists a new feedback record owned by feedback.UserID.
// The status column defaults to 'pending' at the database level; the
// returned record carries the canonical persisted state.
func (r *feedbackRepository) CreateFeedback(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createFeedback, feedback.FeedbackText, feedback.Details, feedback.UserID)

	var created models.Feedback
	if err := r.scanFeedback(row, &created); err != nil {
		log.Err(err).Str("func", "*feedbackRepository.CreateFeedback").Msg("error: feedback insert failed")
		return models.Feedback{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindFeedbackByID retrieves a feedback record by primary key.
// Returns [ErrFeedbackNotFound] when no record matches.
func (r *feedbackRepository) FindFeedbackByID(ctx context.Context, id int64) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findFeedbackByID, id)

	var found models.Feedback
	if err := r.scanFeedback(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Feedback{}, ErrFeedbackNotFound
		}

		log.Err(err).
			Str("func", "*feedbackRepository.FindFeedbackByID").
			Bool("retryable", r.db.IsRetryable(err)).
			Msg("error: feedback lookup failed")
		return models.Feedback{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindFeedbacksByUserID returns every feedback record owned by the given
// user, ordered by id. An empty result is an empty slice; surfacing it as
// "not found" is an API-level policy, not a storage one.
func (r *feedbackRepository) FindFeedbacksByUserID(ctx context.Context, userID int64) ([]models.Feedback, error) {
	return r.findFeedbacks(ctx, findFeedbacksByUserID, userID)
}

// FindAllFeedbacks returns every feedback record ordered by id.
func (r *feedbackRepository) FindAllFeedbacks(ctx context.Context) ([]models.Feedback, error) {
	return r.findFeedbacks(ctx, findAllFeedbacks)
}

func (r *feedbackRepository) findFeedbacks(ctx context.Context, query string, args ...any) ([]models.Feedback, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*feedbackRepository.findFeedbacks").Msg("error: feedbacks query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	feedbacks := make([]models.Feedback, 0)
	for rows.Next() {
		var feedback models.Feedback
		if err := rows.Scan(&feedback.ID, &feedback.FeedbackText, &feedback.Details, &feedback.Status, &feedback.UserID, &feedback.CreatedAt, &feedback.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*feedbackRepository.findFeedbacks").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		feedbacks = append(feedbacks, feedback)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return feedbacks, nil
}

// UpdateFeedbackStatus sets the moderation status of the record and returns
// the updated row. Returns [ErrFeedbackNotFound] when no record matches.
func (r *feedbackRepository) UpdateFeedbackStatus(ctx context.Context, id int64, status models.FeedbackStatus) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateFeedbackStatus, status, id)

	var updated models.Feedback
	if err := r.scanFeedback(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Feedback{}, ErrFeedbackNotFound
		}

		log.Err(err).Str("func", "*feedbackRepository.UpdateFeedbackStatus").Msg("error: status update failed")
		return models.Feedback{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteFeedback removes the record by primary key.
// Returns [ErrFeedbackNotFound] when no row was deleted.
func (r *feedbackRepository) DeleteFeedback(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteFeedback, id)
	if err != nil {
		log.Err(err).Str("func", "*feedbackRepository.DeleteFeedback").Msg("error: feedback delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFeedbackNotFound
	}

	return nil
}

func (r *feedbackRepository) scanFeedback(row *sql.Row, dst *models.Feedback) error {
	return row.Scan(&dst.ID, &dst.FeedbackText, &dst.Details, &dst.Status, &dst.UserID, &dst.CreatedAt, &dst.UpdatedAt)
}
