package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnswerOption is one candidate answer text with a correctness flag.
// Answer rows are created independently of a question and associated
// through QuestionAnswer afterwards.
type AnswerOption struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Answer    string    `gorm:"size:500;not null;default:''" json:"answer"`
	IsCorrect bool      `gorm:"not null;default:false" json:"is_correct"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the GORM table name.
func (AnswerOption) TableName() string {
	return "answers"
}

// QuestionAnswer associates an AnswerOption with the question it belongs to.
// Modeled as a join table like the original schema, so an answer row is not
// inherently reusable across questions.
type QuestionAnswer struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	QuestionID uuid.UUID     `gorm:"type:uuid;not null;index" json:"question_id"`
	AnswerID   uint          `gorm:"not null;index" json:"answer_id"`
	Answer     *AnswerOption `gorm:"foreignKey:AnswerID" json:"answer,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

// TableName sets the GORM table name.
func (QuestionAnswer) TableName() string {
	return "question_answers"
}
