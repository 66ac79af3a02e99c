package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/yourusername/classroom-api/internal/domain/entity"
	"github.com/yourusername/classroom-api/internal/domain/repository"
	apperrors "github.com/yourusername/classroom-api/internal/pkg/errors"
)

// ClassroomService handles classroom administration.
type ClassroomService struct {
	classroomRepo repository.ClassroomRepository
	studentRepo   repository.StudentRepository
}

// NewClassroomService creates a new classroom service.
func NewClassroomService(classroomRepo repository.ClassroomRepository, studentRepo repository.StudentRepository) *ClassroomService {
	return &ClassroomService{
		classroomRepo: classroomRepo,
		studentRepo:   studentRepo,
	}
}

// CreateClassroom creates a classroom for a grade level and section.
func (s *ClassroomService) CreateClassroom(gradeLevel, section string) (*entity.Classroom, error) {
	verrs := &apperrors.ValidationErrors{}
	if !entity.ValidGradeLevel(gradeLevel) {
		verrs.Add("grade_level", fmt.Sprintf("Unknown grade level %q", gradeLevel))
	}
	if section == "" {
		verrs.Add("section", "Section is required")
	}
	if !verrs.Empty() {
		return nil, verrs
	}

	classroom := &entity.Classroom{
		GradeLevel: gradeLevel,
		Section:    section,
	}
	if err := s.classroomRepo.Create(classroom); err != nil {
		return nil, err
	}
	return classroom, nil
}

// GetClassroom returns one classroom by ID.
func (s *ClassroomService) GetClassroom(id uuid.UUID) (*entity.Classroom, error) {
	return s.classroomRepo.GetByID(id)
}

// ListClassrooms returns every classroom.
func (s *ClassroomService) ListClassrooms() ([]entity.Classroom, error) {
	return s.classroomRepo.List()
}

// ListStudents returns the enrolled students of a classroom with profiles.
func (s *ClassroomService) ListStudents(classroomID uuid.UUID) ([]entity.Student, error) {
	return s.studentRepo.ListByClassroom(classroomID)
}
