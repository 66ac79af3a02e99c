package dto

import (
	"github.com/google/uuid"

	"github.com/yourusername/classroom-api/internal/domain/entity"
)

// CreateClassroomRequest is the classroom admin form.
type CreateClassroomRequest struct {
	GradeLevel string `json:"grade_level" binding:"required"`
	Section    string `json:"section" binding:"required"`
}

// ClassroomResponse is the public view of a classroom.
type ClassroomResponse struct {
	ID         uuid.UUID `json:"id"`
	GradeLevel string    `json:"grade_level"`
	Section    string    `json:"section"`
}

// NewClassroomResponse builds a ClassroomResponse from the entity.
func NewClassroomResponse(c *entity.Classroom) ClassroomResponse {
	return ClassroomResponse{
		ID:         c.ID,
		GradeLevel: c.GradeLevel,
		Section:    c.Section,
	}
}

// EnrollmentResponse is one enrolled student with their profile.
type EnrollmentResponse struct {
	StudentID uuid.UUID    `json:"student_id"`
	Profile   UserResponse `json:"profile"`
}

// NewEnrollmentResponse builds an EnrollmentResponse from the entity.
func NewEnrollmentResponse(s *entity.Student) EnrollmentResponse {
	resp := EnrollmentResponse{StudentID: s.ProfileID}
	if s.Profile != nil {
		resp.Profile = NewUserResponse(s.Profile)
	}
	return resp
}

// CreateSubjectRequest is the teacher's subject form.
type CreateSubjectRequest struct {
	Name        string    `json:"name" binding:"required"`
	ClassroomID uuid.UUID `json:"classroom_id" binding:"required"`
}

// RenameSubjectRequest renames an existing subject.
type RenameSubjectRequest struct {
	Name string `json:"name" binding:"required"`
}

// SubjectResponse is the public view of a subject.
type SubjectResponse struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	TeacherID uuid.UUID          `json:"teacher_id"`
	Classroom *ClassroomResponse `json:"classroom,omitempty"`
}

// NewSubjectResponse builds a SubjectResponse, joining the classroom when loaded.
func NewSubjectResponse(s *entity.Subject) SubjectResponse {
	resp := SubjectResponse{
		ID:        s.ID,
		Name:      s.Name,
		TeacherID: s.TeacherID,
	}
	if s.Classroom != nil {
		c := NewClassroomResponse(s.Classroom)
		resp.Classroom = &c
	}
	return resp
}
