package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/classroom-api/internal/domain/entity"
	"github.com/yourusername/classroom-api/internal/domain/repository"
	apperrors "github.com/yourusername/classroom-api/internal/pkg/errors"
)

// OnboardingInput is the profile-completion form. Students additionally pick
// the classroom they belong to by grade level and section.
type OnboardingInput struct {
	FirstName  string
	MiddleName string
	LastName   string
	Gender     string
	BirthDate  *time.Time
	AvatarURL  string
	GradeLevel string
	Section    string
}

// UserService handles profile reads and the one-time onboarding step.
type UserService struct {
	profileRepo   repository.ProfileRepository
	studentRepo   repository.StudentRepository
	classroomRepo repository.ClassroomRepository
}

// NewUserService creates a new user service.
func NewUserService(
	profileRepo repository.ProfileRepository,
	studentRepo repository.StudentRepository,
	classroomRepo repository.ClassroomRepository,
) *UserService {
	return &UserService{
		profileRepo:   profileRepo,
		studentRepo:   studentRepo,
		classroomRepo: classroomRepo,
	}
}

// GetProfile returns one profile by ID.
func (s *UserService) GetProfile(id uuid.UUID) (*entity.Profile, error) {
	return s.profileRepo.GetByID(id)
}

// CompleteOnboarding fills in the personal fields of a freshly registered
// profile and flips its onboarded flag. Students are additionally enrolled in
// the classroom matching their grade level and section; an unknown classroom
// is a validation error, not an enrollment in nothing.
func (s *UserService) CompleteOnboarding(profileID uuid.UUID, in OnboardingInput) (*entity.Profile, error) {
	verrs := &apperrors.ValidationErrors{}
	if in.FirstName == "" {
		verrs.Add("first_name", "First name is required")
	}
	if in.LastName == "" {
		verrs.Add("last_name", "Last name is required")
	}

	profile, err := s.profileRepo.GetByID(profileID)
	if err != nil {
		return nil, err
	}
	if profile.Onboarded {
		return nil, fmt.Errorf("profile %s is already onboarded: %w", profileID, apperrors.ErrConflict)
	}

	var classroom *entity.Classroom
	if profile.IsStudent() {
		if !entity.ValidGradeLevel(in.GradeLevel) {
			verrs.Add("grade_level", fmt.Sprintf("Unknown grade level %q", in.GradeLevel))
		}
		if in.Section == "" {
			verrs.Add("section", "Section is required")
		}
		if verrs.Empty() {
			classroom, err = s.classroomRepo.GetByGradeAndSection(in.GradeLevel, in.Section)
			if errors.Is(err, apperrors.ErrNotFound) {
				verrs.Add("section", fmt.Sprintf("No classroom found for %s section %s", in.GradeLevel, in.Section))
			} else if err != nil {
				return nil, err
			}
		}
	}
	if !verrs.Empty() {
		return nil, verrs
	}

	profile.FirstName = in.FirstName
	profile.MiddleName = in.MiddleName
	profile.LastName = in.LastName
	profile.Gender = in.Gender
	profile.BirthDate = in.BirthDate
	profile.AvatarURL = in.AvatarURL
	profile.Onboarded = true

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile %s: %w", profileID, err)
	}

	if classroom != nil {
		student := &entity.Student{
			ProfileID:   profile.ID,
			ClassroomID: classroom.ID,
		}
		if err := s.studentRepo.Create(student); err != nil {
			// Profile already flipped; re-running onboarding would conflict,
			// so report the enrollment miss loudly.
			log.Printf("[UserService] Profile %s onboarded but enrollment failed: %v", profileID, err)
			return nil, fmt.Errorf("profile updated but classroom enrollment failed: %w", err)
		}
	}

	return profile, nil
}

// GetEnrollment returns the student row of a profile, with classroom.
func (s *UserService) GetEnrollment(profileID uuid.UUID) (*entity.Student, error) {
	return s.studentRepo.GetByProfileID(profileID)
}
