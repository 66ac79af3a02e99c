package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuizPayload() QuizPayload {
	open := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	return QuizPayload{
		Title:           "Midterm Quiz",
		Description:     "Chapters 1 through 4",
		DateOpen:        open,
		DateClose:       open.AddDate(0, 0, 7),
		DurationMinutes: 45,
	}
}

func TestValidateQuiz_Valid(t *testing.T) {
	assert.Nil(t, ValidateQuiz(validQuizPayload()))
}

func TestValidateQuiz_TitleRequired(t *testing.T) {
	p := validQuizPayload()
	p.Title = ""

	errs := ValidateQuiz(p)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("title"))
}

func TestValidateQuiz_DateOrdering(t *testing.T) {
	p := validQuizPayload()
	p.DateOpen = p.DateClose.AddDate(0, 0, 1)

	errs := ValidateQuiz(p)
	require.NotNil(t, errs)

	// The ordering violation belongs to the opening date field.
	assert.True(t, errs.Has("date_open"))
	assert.False(t, errs.Has("date_close"))
	assert.Equal(t, "Opening date must be earlier than closing date", errs.Get("date_open"))
}

func TestValidateQuiz_EqualDatesAllowed(t *testing.T) {
	p := validQuizPayload()
	p.DateClose = p.DateOpen

	assert.Nil(t, ValidateQuiz(p))
}

func TestValidateQuiz_ZeroDates(t *testing.T) {
	errs := ValidateQuiz(QuizPayload{Title: "Quiz"})
	require.NotNil(t, errs)
	assert.True(t, errs.Has("date_open"))
	assert.True(t, errs.Has("date_close"))
}

func TestValidateQuiz_NegativeDuration(t *testing.T) {
	p := validQuizPayload()
	p.DurationMinutes = -5

	errs := ValidateQuiz(p)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("duration_minutes"))
}
