package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/classroom-api/internal/domain/entity"
)

// RegisterRequest is the sign-up payload.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=student teacher staff admin"`
}

// LoginRequest is the sign-in payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// OnboardingRequest completes a profile after registration. GradeLevel and
// Section are required for students only; the service enforces that.
type OnboardingRequest struct {
	FirstName  string     `json:"first_name" binding:"required"`
	MiddleName string     `json:"middle_name"`
	LastName   string     `json:"last_name" binding:"required"`
	Gender     string     `json:"gender"`
	BirthDate  *time.Time `json:"birth_date"`
	AvatarURL  string     `json:"avatar_url"`
	GradeLevel string     `json:"grade_level"`
	Section    string     `json:"section"`
}

// UserResponse is the public view of a profile.
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	FullName  string     `json:"full_name"`
	Gender    string     `json:"gender,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	AvatarURL string     `json:"avatar_url,omitempty"`
	Onboarded bool       `json:"onboarded"`
}

// NewUserResponse builds a UserResponse from a profile entity.
func NewUserResponse(p *entity.Profile) UserResponse {
	return UserResponse{
		ID:        p.ID,
		Email:     p.Email,
		Role:      p.Role,
		FullName:  p.FullName(),
		Gender:    p.Gender,
		BirthDate: p.BirthDate,
		AvatarURL: p.AvatarURL,
		Onboarded: p.Onboarded,
	}
}

// AuthResponse carries the access token with the signed-in user.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
