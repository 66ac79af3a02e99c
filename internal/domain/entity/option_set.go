package entity

import (
	"fmt"
)

// OptionSlot is one editable answer slot in an authoring form.
type OptionSlot struct {
	Answer    string `json:"answer"`
	IsCorrect bool   `json:"is_correct"`
}

// OptionSet models the variable-shape answer set of a question while it is
// being authored. The slot template depends on the question type:
//
//   - Identification: one slot, pinned correct, text editable
//   - True or False: two fixed-text slots, correctness toggleable
//   - Multiple Choice: 2-5 empty slots, text and correctness editable
//
// Switching the question type is destructive: all slots are cleared and
// regenerated from the template, never carried over.
type OptionSet struct {
	questionType string
	slots        []OptionSlot
}

// NewOptionSet builds an option set for the given type. choiceCount is only
// consulted for Multiple Choice and is clamped into [MinChoiceCount, MaxChoiceCount].
func NewOptionSet(questionType string, choiceCount int) (*OptionSet, error) {
	s := &OptionSet{}
	if err := s.Regenerate(questionType, choiceCount); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate discards every existing slot and rebuilds the template for the
// given type. Prior entries are never preserved across a type switch.
func (s *OptionSet) Regenerate(questionType string, choiceCount int) error {
	switch questionType {
	case QuestionTypeIdentification:
		s.slots = []OptionSlot{{Answer: "", IsCorrect: true}}
	case QuestionTypeTrueFalse:
		s.slots = []OptionSlot{
			{Answer: "True", IsCorrect: false},
			{Answer: "False", IsCorrect: false},
		}
	case QuestionTypeMultipleChoice:
		if choiceCount < MinChoiceCount {
			choiceCount = MinChoiceCount
		}
		if choiceCount > MaxChoiceCount {
			choiceCount = MaxChoiceCount
		}
		s.slots = make([]OptionSlot, choiceCount)
	default:
		return fmt.Errorf("unknown question type %q", questionType)
	}
	s.questionType = questionType
	return nil
}

// Type returns the question type the set was generated for.
func (s *OptionSet) Type() string {
	return s.questionType
}

// Len returns the number of slots.
func (s *OptionSet) Len() int {
	return len(s.slots)
}

// Slots returns a copy of the current slots.
func (s *OptionSet) Slots() []OptionSlot {
	out := make([]OptionSlot, len(s.slots))
	copy(out, s.slots)
	return out
}

// SetAnswer writes the answer text of slot i. True-or-False slot texts are
// fixed and cannot be edited.
func (s *OptionSet) SetAnswer(i int, text string) error {
	if i < 0 || i >= len(s.slots) {
		return fmt.Errorf("option index %d out of range", i)
	}
	if s.questionType == QuestionTypeTrueFalse {
		return fmt.Errorf("answer text is fixed for %s options", QuestionTypeTrueFalse)
	}
	s.slots[i].Answer = text
	return nil
}

// SetCorrect toggles the correctness flag of slot i. Identification's single
// slot is always correct and cannot be unmarked.
func (s *OptionSet) SetCorrect(i int, correct bool) error {
	if i < 0 || i >= len(s.slots) {
		return fmt.Errorf("option index %d out of range", i)
	}
	if s.questionType == QuestionTypeIdentification {
		if !correct {
			return fmt.Errorf("the %s answer is always correct", QuestionTypeIdentification)
		}
		return nil
	}
	s.slots[i].IsCorrect = correct
	return nil
}
