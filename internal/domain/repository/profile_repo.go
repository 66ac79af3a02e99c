package repository

import (
	"github.com/google/uuid"

	"github.com/yourusername/classroom-api/internal/domain/entity"
)

// ProfileRepository defines persistence for user profiles.
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByID(id uuid.UUID) (*entity.Profile, error)
	GetByEmail(email string) (*entity.Profile, error)
	Update(profile *entity.Profile) error
}

// StudentRepository defines persistence for classroom memberships.
type StudentRepository interface {
	Create(student *entity.Student) error
	GetByProfileID(profileID uuid.UUID) (*entity.Student, error)
	ListByClassroom(classroomID uuid.UUID) ([]entity.Student, error)
}
