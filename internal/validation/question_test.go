package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/classroom-api/internal/domain/entity"
)

func multipleChoicePayload() QuestionPayload {
	return QuestionPayload{
		Title:  "Which planet is largest?",
		Type:   entity.QuestionTypeMultipleChoice,
		Points: 2,
		Options: []OptionPayload{
			{Answer: "Mars"},
			{Answer: "Jupiter", IsCorrect: true},
			{Answer: "Venus"},
		},
	}
}

func TestValidateQuestion_Valid(t *testing.T) {
	assert.Nil(t, ValidateQuestion(multipleChoicePayload()))
}

func TestValidateQuestion_TitleAndType(t *testing.T) {
	errs := ValidateQuestion(QuestionPayload{})
	require.NotNil(t, errs)
	assert.True(t, errs.Has("title"))
	assert.True(t, errs.Has("type"))
}

func TestValidateQuestion_UnknownType(t *testing.T) {
	p := multipleChoicePayload()
	p.Type = "Essay"

	errs := ValidateQuestion(p)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("type"))
}

func TestValidateQuestion_EmptyOptionReportsIndex(t *testing.T) {
	p := multipleChoicePayload()
	p.Options[1].Answer = ""

	errs := ValidateQuestion(p)
	require.NotNil(t, errs)

	// Only the empty slot is flagged, by its dotted path.
	assert.True(t, errs.Has("options.1.answer"))
	assert.False(t, errs.Has("options.0.answer"))
	assert.False(t, errs.Has("options.2.answer"))
	assert.Equal(t, "Answer must be provided for each option", errs.Get("options.1.answer"))
}

func TestValidateQuestion_EveryEmptyOptionFlagged(t *testing.T) {
	p := multipleChoicePayload()
	p.Options = []OptionPayload{{}, {}}

	errs := ValidateQuestion(p)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("options.0.answer"))
	assert.True(t, errs.Has("options.1.answer"))
}

func TestValidateQuestion_MultipleChoiceBounds(t *testing.T) {
	p := multipleChoicePayload()
	p.Options = []OptionPayload{{Answer: "Only one"}}

	errs := ValidateQuestion(p)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("options"))

	p.Options = []OptionPayload{
		{Answer: "a"}, {Answer: "b"}, {Answer: "c"},
		{Answer: "d"}, {Answer: "e"}, {Answer: "f"},
	}
	errs = ValidateQuestion(p)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("options"))
}

func TestValidateQuestion_NoCorrectChoiceIsAccepted(t *testing.T) {
	p := multipleChoicePayload()
	for i := range p.Options {
		p.Options[i].IsCorrect = false
	}

	// Submission is not blocked; HasCorrectOption lets callers log it.
	assert.Nil(t, ValidateQuestion(p))
	assert.False(t, HasCorrectOption(p.Options))
	assert.True(t, HasCorrectOption(multipleChoicePayload().Options))
}

func TestValidateQuestion_TrueFalseShape(t *testing.T) {
	p := QuestionPayload{
		Title: "The sun is a star.",
		Type:  entity.QuestionTypeTrueFalse,
		Options: []OptionPayload{
			{Answer: "True", IsCorrect: true},
			{Answer: "False"},
		},
	}
	assert.Nil(t, ValidateQuestion(p))

	p.Options[0].Answer = "Yes"
	errs := ValidateQuestion(p)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("options"))

	p.Options[0].Answer = "True"
	p.Options[1].IsCorrect = true
	errs = ValidateQuestion(p)
	require.NotNil(t, errs)
	assert.Equal(t, "Exactly one of True/False must be marked correct", errs.Get("options"))
}

func TestValidateQuestion_IdentificationShape(t *testing.T) {
	p := QuestionPayload{
		Title:   "What is 2+2?",
		Type:    entity.QuestionTypeIdentification,
		Points:  1,
		Options: []OptionPayload{{Answer: "4", IsCorrect: true}},
	}
	assert.Nil(t, ValidateQuestion(p))

	p.Options[0].IsCorrect = false
	errs := ValidateQuestion(p)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("options"))

	p.Options = append(p.Options, OptionPayload{Answer: "four", IsCorrect: true})
	errs = ValidateQuestion(p)
	require.NotNil(t, errs)
	assert.Equal(t, "Identification requires exactly one answer", errs.Get("options"))
}
