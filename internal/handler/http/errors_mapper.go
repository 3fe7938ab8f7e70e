package http

import (
	"errors"
	"net/http"

	"github.com/kmolchanov/feedback-service/internal/logger"
	"github.com/kmolchanov/feedback-service/internal/service"
	"github.com/kmolchanov/feedback-service/internal/store"
	"github.com/kmolchanov/feedback-service/internal/utils"
	"github.com/kmolchanov/feedback-service/internal/validators"
	"github.com/kmolchanov/feedback-service/models"
)

// internalServerErrorMessage is the fixed body of every generic 500 response.
// The underlying error is logged server-side and never leaked to the caller.
const internalServerErrorMessage = "Internal server error."

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrWrongOldPassword:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrUserAlreadyExists:  http.StatusBadRequest,
	store.ErrAdminAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrAdminNotFound:      http.StatusNotFound,
	store.ErrFeedbackNotFound:   http.StatusNotFound,
}

// errorMessageMap holds the client-facing texts for well-known failures.
// The texts are part of the API contract and must not drift.
var errorMessageMap = map[error]string{
	service.ErrInvalidCredentials:      "Invalid email or password.",
	service.ErrWrongOldPassword:        "Old password is incorrect",
	service.ErrTokenIsExpiredOrInvalid: http.StatusText(http.StatusUnauthorized),

	store.ErrUserAlreadyExists:  "Username or email already exists",
	store.ErrAdminAlreadyExists: "Username or email already exists",
	store.ErrUserNotFound:       "User not found.",
	store.ErrAdminNotFound:      "Admin not found.",
	store.ErrFeedbackNotFound:   "Feedback not found.",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return internalServerErrorMessage
}

// respondError maps a service or store failure to its HTTP response.
//
// Validation failures become 400 with the first violated rule's message.
// Well-known sentinels get their mapped status and client-facing text.
// Everything else is the catch-all: the error is logged and the caller
// receives the fixed generic 500 body.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		utils.WriteJSON(w, models.MessageResponse{Message: validationErr.Error()}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
		utils.WriteJSON(w, models.ErrorResponse{Error: internalServerErrorMessage}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err)}, status)
}
