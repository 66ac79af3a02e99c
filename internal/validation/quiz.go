package validation

import (
	"time"

	apperrors "github.com/yourusername/classroom-api/internal/pkg/errors"
)

// QuizPayload is a candidate quiz submitted by the authoring form.
type QuizPayload struct {
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description"`
	DateOpen        time.Time `json:"date_open"`
	DateClose       time.Time `json:"date_close"`
	DurationMinutes int       `json:"duration_minutes" validate:"gte=0"`
}

// ValidateQuiz checks a quiz payload. The date ordering violation is
// attached to "date_open", matching the original form behavior.
func ValidateQuiz(p QuizPayload) *apperrors.ValidationErrors {
	errs := &apperrors.ValidationErrors{}
	collectTagErrors(p, errs)

	if p.DateOpen.IsZero() {
		errs.Add("date_open", "Date to start is required")
	}
	if p.DateClose.IsZero() {
		errs.Add("date_close", "Date to close is required")
	}
	if !p.DateOpen.IsZero() && !p.DateClose.IsZero() && p.DateOpen.After(p.DateClose) {
		errs.Add("date_open", "Opening date must be earlier than closing date")
	}

	if errs.Empty() {
		return nil
	}
	return errs
}
