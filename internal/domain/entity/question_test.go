package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestion_CorrectAnswers(t *testing.T) {
	question := Question{
		Answers: []QuestionAnswer{
			{Answer: &AnswerOption{Answer: "Mars", IsCorrect: false}},
			{Answer: &AnswerOption{Answer: "Jupiter", IsCorrect: true}},
			{Answer: nil},
		},
	}

	correct := question.CorrectAnswers()
	assert.Len(t, correct, 1)
	assert.Equal(t, "Jupiter", correct[0].Answer)
}
