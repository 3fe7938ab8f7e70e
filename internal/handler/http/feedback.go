package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kmolchanov/feedback-service/internal/logger"
	"github.com/kmolchanov/feedback-service/internal/store"
	"github.com/kmolchanov/feedback-service/internal/utils"
	"github.com/kmolchanov/feedback-service/internal/validators"
	"github.com/kmolchanov/feedback-service/models"
)

// feedbackID extracts and parses the {feedbackId} path parameter. Invalid
// values are answered with 400 and ok is false.
func feedbackID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "feedbackId"), 10, 64)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid feedback id in path")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid feedback id"}, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// respondFeedbackError answers feedback endpoint failures. Unlike the user
// endpoints, validation failures here use the error envelope.
func (h *Handler) respondFeedbackError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		utils.WriteJSON(w, models.ErrorResponse{Error: validationErr.Error()}, http.StatusBadRequest)
		return
	}

	h.respondError(w, r, err)
}

func (h *Handler) createFeedback(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var request models.CreateFeedbackRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	createdFeedback, err := h.services.FeedbackService.CreateFeedback(r.Context(), identity.SubjectID, request)
	if err != nil {
		h.respondFeedbackError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", createdFeedback.ID).Int64("userID", identity.SubjectID).Msg("feedback created")

	utils.WriteJSON(w, models.CreateFeedbackResponse{
		CreatedFeedback: createdFeedback,
		Message:         "Feedback sent successfully!",
	}, http.StatusCreated)
}

func (h *Handler) myFeedbacks(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	feedbacks, err := h.services.FeedbackService.GetFeedbacksByUserID(r.Context(), identity.SubjectID)
	if err != nil {
		if errors.Is(err, store.ErrFeedbackNotFound) {
			utils.WriteJSON(w, models.ErrorResponse{Error: "No feedbacks found for the specified user"}, http.StatusNotFound)
			return
		}
		h.respondFeedbackError(w, r, err)
		return
	}

	utils.WriteJSON(w, feedbacks, http.StatusOK)
}

func (h *Handler) allFeedbacks(w http.ResponseWriter, r *http.Request) {
	feedbacks, err := h.services.FeedbackService.GetAllFeedbacks(r.Context())
	if err != nil {
		h.respondFeedbackError(w, r, err)
		return
	}

	utils.WriteJSON(w, feedbacks, http.StatusOK)
}

func (h *Handler) feedbackByID(w http.ResponseWriter, r *http.Request) {
	id, ok := feedbackID(w, r)
	if !ok {
		return
	}

	feedback, err := h.services.FeedbackService.GetFeedbackByID(r.Context(), id)
	if err != nil {
		h.respondFeedbackError(w, r, err)
		return
	}

	utils.WriteJSON(w, feedback, http.StatusOK)
}

func (h *Handler) updateFeedbackStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := feedbackID(w, r)
	if !ok {
		return
	}

	var request models.FeedbackStatusRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	updatedFeedback, err := h.services.FeedbackService.UpdateFeedbackStatus(r.Context(), id, request)
	if err != nil {
		h.respondFeedbackError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", updatedFeedback.ID).Str("status", string(updatedFeedback.Status)).Msg("feedback status updated")

	utils.WriteJSON(w, updatedFeedback, http.StatusOK)
}

func (h *Handler) deleteFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := feedbackID(w, r)
	if !ok {
		return
	}

	deletedFeedback, err := h.services.FeedbackService.DeleteFeedback(r.Context(), id)
	if err != nil {
		h.respondFeedbackError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", deletedFeedback.ID).Msg("feedback deleted")

	utils.WriteJSON(w, models.DeleteFeedbackResponse{
		DeletedFeedback: deletedFeedback,
		Message:         "Feedback deleted successfully!",
	}, http.StatusOK)
}
