package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/classroom-api/internal/handler/dto"
	"github.com/yourusername/classroom-api/internal/middleware"
	"github.com/yourusername/classroom-api/internal/service"
)

// SubjectHandler serves the teacher's subjects.
type SubjectHandler struct {
	subjectService *service.SubjectService
}

// NewSubjectHandler creates the handler.
func NewSubjectHandler(subjectService *service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

// Create handles POST /api/subjects.
func (h *SubjectHandler) Create(c *gin.Context) {
	teacherID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dto.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subject, err := h.subjectService.CreateSubject(teacherID, req.ClassroomID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSubjectResponse(subject))
}

// ListMine handles GET /api/subjects.
func (h *SubjectHandler) ListMine(c *gin.Context) {
	teacherID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	subjects, err := h.subjectService.ListByTeacher(teacherID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.SubjectResponse, 0, len(subjects))
	for i := range subjects {
		resp = append(resp, dto.NewSubjectResponse(&subjects[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/subjects/:subjectID.
func (h *SubjectHandler) Get(c *gin.Context) {
	subjectID, ok := middleware.GetUUID(c, "subjectID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subject ID missing"})
		return
	}

	subject, err := h.subjectService.GetSubject(subjectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSubjectResponse(subject))
}

// Rename handles PUT /api/subjects/:subjectID.
func (h *SubjectHandler) Rename(c *gin.Context) {
	teacherID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	subjectID, ok := middleware.GetUUID(c, "subjectID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subject ID missing"})
		return
	}

	var req dto.RenameSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subject, err := h.subjectService.RenameSubject(subjectID, teacherID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSubjectResponse(subject))
}
