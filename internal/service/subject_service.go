package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/yourusername/classroom-api/internal/domain/entity"
	"github.com/yourusername/classroom-api/internal/domain/repository"
	apperrors "github.com/yourusername/classroom-api/internal/pkg/errors"
)

// SubjectService handles the subjects a teacher runs inside a classroom.
type SubjectService struct {
	subjectRepo   repository.SubjectRepository
	classroomRepo repository.ClassroomRepository
}

// NewSubjectService creates a new subject service.
func NewSubjectService(subjectRepo repository.SubjectRepository, classroomRepo repository.ClassroomRepository) *SubjectService {
	return &SubjectService{
		subjectRepo:   subjectRepo,
		classroomRepo: classroomRepo,
	}
}

// CreateSubject creates a subject owned by the teacher inside a classroom.
func (s *SubjectService) CreateSubject(teacherID, classroomID uuid.UUID, name string) (*entity.Subject, error) {
	if name == "" {
		verrs := &apperrors.ValidationErrors{}
		verrs.Add("name", "Subject name is required")
		return nil, verrs
	}

	if _, err := s.classroomRepo.GetByID(classroomID); err != nil {
		return nil, fmt.Errorf("failed to load classroom %s: %w", classroomID, err)
	}

	subject := &entity.Subject{
		Name:        name,
		ClassroomID: classroomID,
		TeacherID:   teacherID,
	}
	if err := s.subjectRepo.Create(subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// GetSubject returns a subject with its classroom.
func (s *SubjectService) GetSubject(id uuid.UUID) (*entity.Subject, error) {
	return s.subjectRepo.GetWithClassroom(id)
}

// ListByTeacher returns the subjects a teacher runs.
func (s *SubjectService) ListByTeacher(teacherID uuid.UUID) ([]entity.Subject, error) {
	return s.subjectRepo.ListByTeacher(teacherID)
}

// ListByClassroom returns the subjects of a classroom.
func (s *SubjectService) ListByClassroom(classroomID uuid.UUID) ([]entity.Subject, error) {
	return s.subjectRepo.ListByClassroom(classroomID)
}

// RenameSubject updates the subject name, owner only.
func (s *SubjectService) RenameSubject(id, teacherID uuid.UUID, name string) (*entity.Subject, error) {
	if name == "" {
		verrs := &apperrors.ValidationErrors{}
		verrs.Add("name", "Subject name is required")
		return nil, verrs
	}

	subject, err := s.subjectRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !subject.OwnedBy(teacherID) {
		return nil, fmt.Errorf("subject %s is not taught by teacher %s: %w", id, teacherID, apperrors.ErrForbidden)
	}

	subject.Name = name
	if err := s.subjectRepo.Update(subject); err != nil {
		return nil, fmt.Errorf("failed to update subject %s: %w", id, err)
	}
	return subject, nil
}
