package validation

import (
	"fmt"

	"github.com/yourusername/classroom-api/internal/domain/entity"
	apperrors "github.com/yourusername/classroom-api/internal/pkg/errors"
)

// OptionPayload is one answer slot of a candidate question.
type OptionPayload struct {
	Answer    string `json:"answer"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionPayload is a candidate question submitted by the authoring form.
type QuestionPayload struct {
	Title   string          `json:"title" validate:"required"`
	Type    string          `json:"type" validate:"required"`
	Points  int             `json:"points" validate:"gte=0"`
	Options []OptionPayload `json:"options"`
}

// ValidateQuestion checks a question payload together with its option set.
// Every empty option text reports a distinct error at its index
// ("options.N.answer"), so the form can mark the exact slot.
//
// The "at least one correct answer" rule for Multiple Choice is intentionally
// not enforced here; see HasCorrectOption.
func ValidateQuestion(p QuestionPayload) *apperrors.ValidationErrors {
	errs := &apperrors.ValidationErrors{}
	collectTagErrors(p, errs)

	if p.Type != "" && !entity.ValidQuestionType(p.Type) {
		errs.Add("type", "Question Type is required")
	}

	for i, opt := range p.Options {
		if opt.Answer == "" {
			errs.Add(fmt.Sprintf("options.%d.answer", i), "Answer must be provided for each option")
		}
	}

	// Shape invariants per question type. Skipped when the type itself is
	// already invalid.
	if entity.ValidQuestionType(p.Type) {
		validateOptionShape(p, errs)
	}

	if errs.Empty() {
		return nil
	}
	return errs
}

func validateOptionShape(p QuestionPayload, errs *apperrors.ValidationErrors) {
	switch p.Type {
	case entity.QuestionTypeMultipleChoice:
		if len(p.Options) < entity.MinChoiceCount || len(p.Options) > entity.MaxChoiceCount {
			errs.Add("options", fmt.Sprintf("Multiple Choice requires %d to %d options", entity.MinChoiceCount, entity.MaxChoiceCount))
		}
	case entity.QuestionTypeTrueFalse:
		if len(p.Options) != 2 || p.Options[0].Answer != "True" || p.Options[1].Answer != "False" {
			errs.Add("options", `True or False requires exactly the options "True" and "False"`)
			return
		}
		if correctCount(p.Options) != 1 {
			errs.Add("options", "Exactly one of True/False must be marked correct")
		}
	case entity.QuestionTypeIdentification:
		if len(p.Options) != 1 {
			errs.Add("options", "Identification requires exactly one answer")
			return
		}
		if !p.Options[0].IsCorrect {
			errs.Add("options", "The Identification answer must be marked correct")
		}
	}
}

// HasCorrectOption reports whether any option is flagged correct. The
// original form schema had this rule commented out for Multiple Choice, so
// callers only log when it fails instead of blocking submission.
func HasCorrectOption(options []OptionPayload) bool {
	return correctCount(options) > 0
}

func correctCount(options []OptionPayload) int {
	n := 0
	for _, o := range options {
		if o.IsCorrect {
			n++
		}
	}
	return n
}
