package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Quiz is a gradable assessment owned by a teacher and scoped to a subject.
// DurationMinutes of 0 means the quiz has no time limit.
type Quiz struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string     `gorm:"size:200;not null" json:"title"`
	Description     string     `gorm:"size:500;not null;default:''" json:"description"`
	DateOpen        time.Time  `gorm:"not null;index" json:"date_open"`
	DateClose       time.Time  `gorm:"not null" json:"date_close"`
	DurationMinutes int        `gorm:"not null;default:0" json:"duration_minutes"`
	SubjectID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"subject_id"`
	TeacherID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Questions       []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TableName sets the GORM table name.
func (Quiz) TableName() string {
	return "quizzes"
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (q *Quiz) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// IsOpenAt reports whether the quiz window covers t.
func (q *Quiz) IsOpenAt(t time.Time) bool {
	return !t.Before(q.DateOpen) && !t.After(q.DateClose)
}

// IsTimed reports whether the quiz has a duration limit.
func (q *Quiz) IsTimed() bool {
	return q.DurationMinutes > 0
}

// OwnedBy reports whether the quiz belongs to the given teacher.
func (q *Quiz) OwnedBy(teacherID uuid.UUID) bool {
	return q.TeacherID == teacherID
}

// TotalPoints sums the points of the loaded questions.
func (q *Quiz) TotalPoints() int {
	total := 0
	for _, question := range q.Questions {
		total += question.Points
	}
	return total
}
