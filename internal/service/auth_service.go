package service

import (
	"errors"
	"fmt"

	"github.com/yourusername/classroom-api/internal/domain/entity"
	"github.com/yourusername/classroom-api/internal/domain/repository"
	apperrors "github.com/yourusername/classroom-api/internal/pkg/errors"
	"github.com/yourusername/classroom-api/pkg/auth"
)

// AuthService handles registration and login.
type AuthService struct {
	profileRepo repository.ProfileRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(profileRepo repository.ProfileRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		profileRepo: profileRepo,
		jwtService:  jwtService,
	}
}

// Register creates a profile with a hashed password. New accounts start
// un-onboarded; the role must be one of the known roles.
func (s *AuthService) Register(email, password, role string) (*entity.Profile, error) {
	if !entity.ValidRole(role) {
		verrs := &apperrors.ValidationErrors{}
		verrs.Add("role", fmt.Sprintf("Unknown role %q", role))
		return nil, verrs
	}
	if len(password) < 8 {
		verrs := &apperrors.ValidationErrors{}
		verrs.Add("password", "Password must be at least 8 characters")
		return nil, verrs
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	profile := &entity.Profile{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Login checks the credentials and returns the profile plus a signed token.
// Wrong email and wrong password produce the same error.
func (s *AuthService) Login(email, password string) (*entity.Profile, string, error) {
	profile, err := s.profileRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", fmt.Errorf("invalid email or password: %w", apperrors.ErrUnauthorized)
		}
		return nil, "", err
	}
	if !auth.CheckPassword(profile.PasswordHash, password) {
		return nil, "", fmt.Errorf("invalid email or password: %w", apperrors.ErrUnauthorized)
	}

	token, err := s.jwtService.GenerateToken(profile.ID, profile.Email, profile.Role, profile.Onboarded)
	if err != nil {
		return nil, "", err
	}
	return profile, token, nil
}
