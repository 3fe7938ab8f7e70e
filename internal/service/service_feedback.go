package service

import (
	"context"
	"fmt"

	"github.com/kmolchanov/feedback-service/internal/logger"
	"github.com/kmolchanov/feedback-service/internal/store"
	"github.com/kmolchanov/feedback-service/internal/validators"
	"github.com/kmolchanov/feedback-service/models"
)

// feedbackService is the concrete implementation of FeedbackService.
type feedbackService struct {
	feedbackRepository store.FeedbackRepository
	validator          validators.Validator
	logger             *logger.Logger
}

// NewFeedbackService constructs a FeedbackService wired to the given
// repository and validator.
func NewFeedbackService(feedbackRepository store.FeedbackRepository, validator validators.Validator, logger *logger.Logger) FeedbackService {
	return &feedbackService{
		feedbackRepository: feedbackRepository,
		validator:          validator,
		logger:             logger,
	}
}

// CreateFeedback validates and persists a new feedback record. Ownership is
// taken from the authenticated caller, never from the payload.
func (s *feedbackService) CreateFeedback(ctx context.Context, userID int64, request models.CreateFeedbackRequest) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Feedback{}, err
	}

	created, err := s.feedbackRepository.CreateFeedback(ctx, models.Feedback{
		FeedbackText: request.FeedbackText,
		Details:      request.Details,
		UserID:       userID,
	})
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("feedback creation ended with error")
		return models.Feedback{}, fmt.Errorf("feedback creation ended with error: %w", err)
	}

	return created, nil
}

// GetFeedbackByID returns a single feedback record by primary key.
func (s *feedbackService) GetFeedbackByID(ctx context.Context, id int64) (models.Feedback, error) {
	found, err := s.feedbackRepository.FindFeedbackByID(ctx, id)
	if err != nil {
		return models.Feedback{}, fmt.Errorf("feedback search by id failed: %w", err)
	}

	return found, nil
}

// GetFeedbacksByUserID returns every feedback record owned by the given user.
// An empty result yields store.ErrFeedbackNotFound: the listing endpoint
// treats "no feedbacks yet" as a not-found condition.
func (s *feedbackService) GetFeedbacksByUserID(ctx context.Context, userID int64) ([]models.Feedback, error) {
	feedbacks, err := s.feedbackRepository.FindFeedbacksByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("feedbacks search by user id failed: %w", err)
	}
	if len(feedbacks) == 0 {
		return nil, store.ErrFeedbackNotFound
	}

	return feedbacks, nil
}

// GetAllFeedbacks returns every feedback record.
func (s *feedbackService) GetAllFeedbacks(ctx context.Context) ([]models.Feedback, error) {
	feedbacks, err := s.feedbackRepository.FindAllFeedbacks(ctx)
	if err != nil {
		return nil, fmt.Errorf("feedbacks listing failed: %w", err)
	}

	return feedbacks, nil
}

// UpdateFeedbackStatus validates the requested status and applies it,
// returning the updated record.
func (s *feedbackService) UpdateFeedbackStatus(ctx context.Context, id int64, request models.FeedbackStatusRequest) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Feedback{}, err
	}

	updated, err := s.feedbackRepository.UpdateFeedbackStatus(ctx, id, models.FeedbackStatus(request.Status))
	if err != nil {
		log.Err(err).Int64("id", id).Msg("feedback status update ended with error")
		return models.Feedback{}, fmt.Errorf("feedback status update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteFeedback removes the record and returns the deleted feedback.
func (s *feedbackService) DeleteFeedback(ctx context.Context, id int64) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	found, err := s.feedbackRepository.FindFeedbackByID(ctx, id)
	if err != nil {
		return models.Feedback{}, fmt.Errorf("feedback search by id failed: %w", err)
	}

	if err := s.feedbackRepository.DeleteFeedback(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("feedback deletion ended with error")
		return models.Feedback{}, fmt.Errorf("feedback deletion ended with error: %w", err)
	}

	return found, nil
}
