package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/classroom-api/internal/handler/dto"
	"github.com/yourusername/classroom-api/internal/service"
	"github.com/yourusername/classroom-api/pkg/auth"
)

// UserHandler serves profile reads and onboarding.
type UserHandler struct {
	userService *service.UserService
	jwtService  *auth.JWTService
}

// NewUserHandler creates the handler.
func NewUserHandler(userService *service.UserService, jwtService *auth.JWTService) *UserHandler {
	return &UserHandler{
		userService: userService,
		jwtService:  jwtService,
	}
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(profile))
}

// CompleteOnboarding handles POST /api/users/me/onboarding. The onboarded
// flag travels in the token claims, so a fresh token is returned with the
// updated profile.
func (h *UserHandler) CompleteOnboarding(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dto.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.userService.CompleteOnboarding(userID, service.OnboardingInput{
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Gender:     req.Gender,
		BirthDate:  req.BirthDate,
		AvatarURL:  req.AvatarURL,
		GradeLevel: req.GradeLevel,
		Section:    req.Section,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.jwtService.GenerateToken(profile.ID, profile.Email, profile.Role, profile.Onboarded)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(profile),
	})
}
