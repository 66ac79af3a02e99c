package repository

import (
	"github.com/google/uuid"

	"github.com/yourusername/classroom-api/internal/domain/entity"
)

// ClassroomRepository defines persistence for classrooms.
type ClassroomRepository interface {
	Create(classroom *entity.Classroom) error
	GetByID(id uuid.UUID) (*entity.Classroom, error)
	GetByGradeAndSection(gradeLevel, section string) (*entity.Classroom, error)
	List() ([]entity.Classroom, error)
}

// SubjectRepository defines persistence for subjects.
type SubjectRepository interface {
	Create(subject *entity.Subject) error
	GetByID(id uuid.UUID) (*entity.Subject, error)
	// GetWithClassroom preloads the owning classroom for the subject view.
	GetWithClassroom(id uuid.UUID) (*entity.Subject, error)
	ListByTeacher(teacherID uuid.UUID) ([]entity.Subject, error)
	ListByClassroom(classroomID uuid.UUID) ([]entity.Subject, error)
	Update(subject *entity.Subject) error
}
