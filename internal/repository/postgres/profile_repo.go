package postgres

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourusername/classroom-api/internal/domain/entity"
	apperrors "github.com/yourusername/classroom-api/internal/pkg/errors"
)

// ProfileRepo implements repository.ProfileRepository.
type ProfileRepo struct {
	db *gorm.DB
}

// NewProfileRepo creates a new profile repository.
func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Create persists a new profile. A duplicate email maps to ErrConflict.
func (r *ProfileRepo) Create(profile *entity.Profile) error {
	if err := r.db.Create(profile).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %s already registered: %w", profile.Email, apperrors.ErrConflict)
		}
		return err
	}
	return nil
}

// GetByID returns one profile by ID.
func (r *ProfileRepo) GetByID(id uuid.UUID) (*entity.Profile, error) {
	var profile entity.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// GetByEmail returns one profile by email.
func (r *ProfileRepo) GetByEmail(email string) (*entity.Profile, error) {
	var profile entity.Profile
	err := r.db.First(&profile, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Update saves the full profile row.
func (r *ProfileRepo) Update(profile *entity.Profile) error {
	return r.db.Save(profile).Error
}

// StudentRepo implements repository.StudentRepository.
type StudentRepo struct {
	db *gorm.DB
}

// NewStudentRepo creates a new student repository.
func NewStudentRepo(db *gorm.DB) *StudentRepo {
	return &StudentRepo{db: db}
}

// Create persists a classroom membership. A second membership for the same
// profile maps to ErrConflict.
func (r *StudentRepo) Create(student *entity.Student) error {
	if err := r.db.Create(student).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("profile %s already enrolled: %w", student.ProfileID, apperrors.ErrConflict)
		}
		return err
	}
	return nil
}

// GetByProfileID returns the membership of a student profile.
func (r *StudentRepo) GetByProfileID(profileID uuid.UUID) (*entity.Student, error) {
	var student entity.Student
	err := r.db.First(&student, "profile_id = ?", profileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &student, nil
}

// ListByClassroom returns the members of a classroom with profiles loaded.
func (r *StudentRepo) ListByClassroom(classroomID uuid.UUID) ([]entity.Student, error) {
	var students []entity.Student
	err := r.db.
		Preload("Profile").
		Where("classroom_id = ?", classroomID).
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}
