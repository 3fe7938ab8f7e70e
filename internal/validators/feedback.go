package validators

import (
	"context"

	"github.com/kmolchanov/feedback-service/models"
)

// Field name constants of the feedback payloads.
const (
	FieldFeedbackText = "feedbackText"
	FieldDetails      = "details"
	FieldStatus       = "status"
)

var createFeedbackSchema = Schema{
	{
		Field:           FieldFeedbackText,
		Required:        true,
		RequiredMessage: "Feedback is required",
		Checks:          []Check{MinLen(5, "Feedback must be at least 5 characters long")},
	},
	{
		Field:           FieldDetails,
		Required:        true,
		RequiredMessage: "Feedback details is required",
	},
}

var feedbackStatusSchema = Schema{
	{
		Field:           FieldStatus,
		Required:        true,
		RequiredMessage: "Status is required",
		Checks: []Check{
			OneOf(models.AllowedFeedbackStatuses, "Invalid status. Allowed values: pending, accepted, rejected"),
		},
	},
}

// FeedbackValidator implements the Validator interface for the feedback
// payloads: CreateFeedbackRequest and FeedbackStatusRequest.
type FeedbackValidator struct {
}

// NewFeedbackValidator constructs a new FeedbackValidator
// and returns it as the Validator interface.
func NewFeedbackValidator() Validator {
	return &FeedbackValidator{}
}

// Validate dispatches validation to the schema declared for the dynamic type
// of obj. Returns ErrUnsupportedType (wrapped) if obj does not match any
// known payload.
func (v *FeedbackValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.CreateFeedbackRequest:
		return v.validateCreate(value)
	case *models.CreateFeedbackRequest:
		return v.validateCreate(*value)

	case models.FeedbackStatusRequest:
		return v.validateStatus(value)
	case *models.FeedbackStatusRequest:
		return v.validateStatus(*value)

	default:
		return unknownTypeError(obj)
	}
}

func (v *FeedbackValidator) validateCreate(req models.CreateFeedbackRequest) error {
	return createFeedbackSchema.Validate(map[string]string{
		FieldFeedbackText: req.FeedbackText,
		FieldDetails:      req.Details,
	})
}

func (v *FeedbackValidator) validateStatus(req models.FeedbackStatusRequest) error {
	return feedbackStatusSchema.Validate(map[string]string{
		FieldStatus: req.Status,
	})
}
