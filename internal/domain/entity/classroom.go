package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Grade levels offered by the school.
var GradeLevels = []string{
	"Grade 1", "Grade 2", "Grade 3", "Grade 4", "Grade 5", "Grade 6",
}

// Classroom is one grade-level section students are enrolled into.
type Classroom struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GradeLevel string    `gorm:"size:20;not null" json:"grade_level"`
	Section    string    `gorm:"size:100;not null;default:''" json:"section"`
	Subjects   []Subject `gorm:"foreignKey:ClassroomID" json:"subjects,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName sets the GORM table name.
func (Classroom) TableName() string {
	return "classrooms"
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (c *Classroom) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ValidGradeLevel reports whether the value is a known grade level.
func ValidGradeLevel(level string) bool {
	for _, g := range GradeLevels {
		if g == level {
			return true
		}
	}
	return false
}

// Student is a classroom membership record for a student profile.
type Student struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"profile_id"`
	ClassroomID uuid.UUID `gorm:"type:uuid;not null;index" json:"classroom_id"`
	Profile     *Profile  `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName sets the GORM table name.
func (Student) TableName() string {
	return "students"
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
