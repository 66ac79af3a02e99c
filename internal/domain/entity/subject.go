package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subject is one course taught by a teacher to a classroom. Quizzes and
// activities hang off a subject.
type Subject struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"size:200;not null" json:"name"`
	ClassroomID uuid.UUID  `gorm:"type:uuid;not null;index" json:"classroom_id"`
	TeacherID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Classroom   *Classroom `gorm:"foreignKey:ClassroomID" json:"classroom,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TableName sets the GORM table name.
func (Subject) TableName() string {
	return "subjects"
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (s *Subject) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// OwnedBy reports whether the subject belongs to the given teacher.
func (s *Subject) OwnedBy(teacherID uuid.UUID) bool {
	return s.TeacherID == teacherID
}
