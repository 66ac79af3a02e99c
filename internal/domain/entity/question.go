package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Question types. The values match the question_type_enum of the database.
const (
	QuestionTypeMultipleChoice = "Multiple Choice"
	QuestionTypeTrueFalse      = "True or False"
	QuestionTypeIdentification = "Identification"
)

// Multiple-choice option count bounds.
const (
	MinChoiceCount = 2
	MaxChoiceCount = 5
)

// Question is one gradable item in a quiz. Position is the persisted display
// ordinal, assigned at authoring time from the count of existing questions.
// The type is immutable once answer options are attached.
type Question struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Title     string           `gorm:"size:500;not null" json:"title"`
	Type      string           `gorm:"size:20;not null" json:"type"`
	Points    int              `gorm:"not null;default:1" json:"points"`
	Position  int              `gorm:"not null;default:1" json:"position"`
	Answers   []QuestionAnswer `gorm:"foreignKey:QuestionID" json:"question_answers,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// TableName sets the GORM table name.
func (Question) TableName() string {
	return "questions"
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// HasAnswers reports whether answer options are already linked.
func (q *Question) HasAnswers() bool {
	return len(q.Answers) > 0
}

// CorrectAnswers returns the linked options flagged correct.
func (q *Question) CorrectAnswers() []AnswerOption {
	var correct []AnswerOption
	for _, link := range q.Answers {
		if link.Answer != nil && link.Answer.IsCorrect {
			correct = append(correct, *link.Answer)
		}
	}
	return correct
}

// ValidQuestionType reports whether the value is one of the three kinds.
func ValidQuestionType(t string) bool {
	switch t {
	case QuestionTypeMultipleChoice, QuestionTypeTrueFalse, QuestionTypeIdentification:
		return true
	}
	return false
}
