package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity is a non-quiz graded task posted to a subject: written work,
// a file to hand in, or an external link.
type Activity struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectID uuid.UUID  `gorm:"type:uuid;not null;index" json:"subject_id"`
	TeacherID uuid.UUID  `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Title     string     `gorm:"size:200;not null" json:"title"`
	Content   string     `gorm:"not null;default:''" json:"content"`
	Grade     int        `gorm:"not null;default:100" json:"grade"`
	DateOpen  time.Time  `gorm:"not null" json:"date_open"`
	DateClose *time.Time `json:"date_close,omitempty"`
	FileURL   string     `gorm:"size:500;not null;default:''" json:"file_url,omitempty"`
	LinkURL   string     `gorm:"size:500;not null;default:''" json:"link_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// TableName sets the GORM table name.
func (Activity) TableName() string {
	return "activities"
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// AcceptsSubmissionsAt reports whether the activity is open for hand-ins at t.
// A nil DateClose means the activity never closes.
func (a *Activity) AcceptsSubmissionsAt(t time.Time) bool {
	if t.Before(a.DateOpen) {
		return false
	}
	return a.DateClose == nil || !t.After(*a.DateClose)
}

// ActivitySubmission is one student's hand-in for an activity.
type ActivitySubmission struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	ActivityID uuid.UUID        `gorm:"type:uuid;not null;index" json:"activity_id"`
	StudentID  uuid.UUID        `gorm:"type:uuid;not null;index" json:"student_id"`
	Content    string           `gorm:"not null;default:''" json:"content"`
	FileURL    string           `gorm:"size:500;not null;default:''" json:"file_url,omitempty"`
	LinkURL    string           `gorm:"size:500;not null;default:''" json:"link_url,omitempty"`
	Grade      *SubmissionGrade `gorm:"foreignKey:SubmissionID" json:"grade,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

// TableName sets the GORM table name.
func (ActivitySubmission) TableName() string {
	return "activity_submissions"
}

// IsGraded reports whether a teacher has graded the submission.
func (s *ActivitySubmission) IsGraded() bool {
	return s.Grade != nil
}

// SubmissionGrade is the teacher's mark and comment for one submission.
type SubmissionGrade struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SubmissionID uint      `gorm:"not null;uniqueIndex" json:"submission_id"`
	Grade        int       `gorm:"not null" json:"grade"`
	Comment      string    `gorm:"not null;default:''" json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName sets the GORM table name.
func (SubmissionGrade) TableName() string {
	return "submission_grades"
}
