package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/classroom-api/internal/domain/entity"
	"github.com/yourusername/classroom-api/internal/service"
)

// ActivityRequest is the teacher's activity form.
type ActivityRequest struct {
	Title     string     `json:"title" binding:"required"`
	Content   string     `json:"content"`
	Grade     int        `json:"grade" binding:"required,gt=0"`
	DateOpen  time.Time  `json:"date_open" binding:"required"`
	DateClose *time.Time `json:"date_close"`
	FileURL   string     `json:"file_url"`
	LinkURL   string     `json:"link_url"`
}

// Input converts the request to the service input.
func (r ActivityRequest) Input() service.ActivityInput {
	return service.ActivityInput{
		Title:     r.Title,
		Content:   r.Content,
		Grade:     r.Grade,
		DateOpen:  r.DateOpen,
		DateClose: r.DateClose,
		FileURL:   r.FileURL,
		LinkURL:   r.LinkURL,
	}
}

// SubmissionRequest is the student's hand-in form.
type SubmissionRequest struct {
	Content string `json:"content"`
	FileURL string `json:"file_url"`
	LinkURL string `json:"link_url"`
}

// Input converts the request to the service input.
func (r SubmissionRequest) Input() service.SubmissionInput {
	return service.SubmissionInput{
		Content: r.Content,
		FileURL: r.FileURL,
		LinkURL: r.LinkURL,
	}
}

// GradeRequest is the teacher's grading form.
type GradeRequest struct {
	Grade   int    `json:"grade" binding:"gte=0"`
	Comment string `json:"comment"`
}

// ActivityResponse is the public view of an activity.
type ActivityResponse struct {
	ID        uuid.UUID  `json:"id"`
	SubjectID uuid.UUID  `json:"subject_id"`
	TeacherID uuid.UUID  `json:"teacher_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content,omitempty"`
	Grade     int        `json:"grade"`
	DateOpen  time.Time  `json:"date_open"`
	DateClose *time.Time `json:"date_close,omitempty"`
	FileURL   string     `json:"file_url,omitempty"`
	LinkURL   string     `json:"link_url,omitempty"`
}

// NewActivityResponse builds an ActivityResponse from the entity.
func NewActivityResponse(a *entity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:        a.ID,
		SubjectID: a.SubjectID,
		TeacherID: a.TeacherID,
		Title:     a.Title,
		Content:   a.Content,
		Grade:     a.Grade,
		DateOpen:  a.DateOpen,
		DateClose: a.DateClose,
		FileURL:   a.FileURL,
		LinkURL:   a.LinkURL,
	}
}

// GradeResponse is the recorded mark for a submission.
type GradeResponse struct {
	Grade   int    `json:"grade"`
	Comment string `json:"comment,omitempty"`
}

// SubmissionResponse is one hand-in with its grade when present.
type SubmissionResponse struct {
	ID         uint           `json:"id"`
	ActivityID uuid.UUID      `json:"activity_id"`
	StudentID  uuid.UUID      `json:"student_id"`
	Content    string         `json:"content,omitempty"`
	FileURL    string         `json:"file_url,omitempty"`
	LinkURL    string         `json:"link_url,omitempty"`
	Grade      *GradeResponse `json:"grade,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// NewSubmissionResponse builds a SubmissionResponse from the entity.
func NewSubmissionResponse(s *entity.ActivitySubmission) SubmissionResponse {
	resp := SubmissionResponse{
		ID:         s.ID,
		ActivityID: s.ActivityID,
		StudentID:  s.StudentID,
		Content:    s.Content,
		FileURL:    s.FileURL,
		LinkURL:    s.LinkURL,
		CreatedAt:  s.CreatedAt,
	}
	if s.Grade != nil {
		resp.Grade = &GradeResponse{
			Grade:   s.Grade.Grade,
			Comment: s.Grade.Comment,
		}
	}
	return resp
}
