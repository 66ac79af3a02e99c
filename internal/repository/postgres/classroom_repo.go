package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourusername/classroom-api/internal/domain/entity"
	apperrors "github.com/yourusername/classroom-api/internal/pkg/errors"
)

// ClassroomRepo implements repository.ClassroomRepository.
type ClassroomRepo struct {
	db *gorm.DB
}

// NewClassroomRepo creates a new classroom repository.
func NewClassroomRepo(db *gorm.DB) *ClassroomRepo {
	return &ClassroomRepo{db: db}
}

// Create persists a new classroom.
func (r *ClassroomRepo) Create(classroom *entity.Classroom) error {
	return r.db.Create(classroom).Error
}

// GetByID returns one classroom by ID.
func (r *ClassroomRepo) GetByID(id uuid.UUID) (*entity.Classroom, error) {
	var classroom entity.Classroom
	err := r.db.First(&classroom, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &classroom, nil
}

// GetByGradeAndSection looks a classroom up by its human identifiers, used
// during student onboarding.
func (r *ClassroomRepo) GetByGradeAndSection(gradeLevel, section string) (*entity.Classroom, error) {
	var classroom entity.Classroom
	err := r.db.First(&classroom, "grade_level = ? AND section = ?", gradeLevel, section).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &classroom, nil
}

// List returns every classroom ordered by grade level and section.
func (r *ClassroomRepo) List() ([]entity.Classroom, error) {
	var classrooms []entity.Classroom
	err := r.db.Order("grade_level ASC, section ASC").Find(&classrooms).Error
	if err != nil {
		return nil, err
	}
	return classrooms, nil
}

// SubjectRepo implements repository.SubjectRepository.
type SubjectRepo struct {
	db *gorm.DB
}

// NewSubjectRepo creates a new subject repository.
func NewSubjectRepo(db *gorm.DB) *SubjectRepo {
	return &SubjectRepo{db: db}
}

// Create persists a new subject.
func (r *SubjectRepo) Create(subject *entity.Subject) error {
	return r.db.Create(subject).Error
}

// GetByID returns one subject by ID.
func (r *SubjectRepo) GetByID(id uuid.UUID) (*entity.Subject, error) {
	var subject entity.Subject
	err := r.db.First(&subject, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &subject, nil
}

// GetWithClassroom returns the subject with its classroom preloaded.
func (r *SubjectRepo) GetWithClassroom(id uuid.UUID) (*entity.Subject, error) {
	var subject entity.Subject
	err := r.db.Preload("Classroom").First(&subject, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &subject, nil
}

// ListByTeacher returns all subjects taught by a teacher.
func (r *SubjectRepo) ListByTeacher(teacherID uuid.UUID) ([]entity.Subject, error) {
	var subjects []entity.Subject
	err := r.db.
		Preload("Classroom").
		Where("teacher_id = ?", teacherID).
		Order("created_at ASC").
		Find(&subjects).Error
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

// ListByClassroom returns all subjects of a classroom.
func (r *SubjectRepo) ListByClassroom(classroomID uuid.UUID) ([]entity.Subject, error) {
	var subjects []entity.Subject
	err := r.db.
		Where("classroom_id = ?", classroomID).
		Order("name ASC").
		Find(&subjects).Error
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

// Update saves the full subject row.
func (r *SubjectRepo) Update(subject *entity.Subject) error {
	return r.db.Save(subject).Error
}
