package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/classroom-api/internal/handler/dto"
	"github.com/yourusername/classroom-api/internal/middleware"
	"github.com/yourusername/classroom-api/internal/service"
)

// ClassroomHandler serves classroom administration.
type ClassroomHandler struct {
	classroomService *service.ClassroomService
	subjectService   *service.SubjectService
}

// NewClassroomHandler creates the handler.
func NewClassroomHandler(classroomService *service.ClassroomService, subjectService *service.SubjectService) *ClassroomHandler {
	return &ClassroomHandler{
		classroomService: classroomService,
		subjectService:   subjectService,
	}
}

// Create handles POST /api/classrooms.
func (h *ClassroomHandler) Create(c *gin.Context) {
	var req dto.CreateClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	classroom, err := h.classroomService.CreateClassroom(req.GradeLevel, req.Section)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewClassroomResponse(classroom))
}

// List handles GET /api/classrooms.
func (h *ClassroomHandler) List(c *gin.Context) {
	classrooms, err := h.classroomService.ListClassrooms()
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.ClassroomResponse, 0, len(classrooms))
	for i := range classrooms {
		resp = append(resp, dto.NewClassroomResponse(&classrooms[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/classrooms/:classroomID.
func (h *ClassroomHandler) Get(c *gin.Context) {
	classroomID, ok := middleware.GetUUID(c, "classroomID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "classroom ID missing"})
		return
	}

	classroom, err := h.classroomService.GetClassroom(classroomID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewClassroomResponse(classroom))
}

// ListStudents handles GET /api/classrooms/:classroomID/students.
func (h *ClassroomHandler) ListStudents(c *gin.Context) {
	classroomID, ok := middleware.GetUUID(c, "classroomID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "classroom ID missing"})
		return
	}

	students, err := h.classroomService.ListStudents(classroomID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.EnrollmentResponse, 0, len(students))
	for i := range students {
		resp = append(resp, dto.NewEnrollmentResponse(&students[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// ListSubjects handles GET /api/classrooms/:classroomID/subjects.
func (h *ClassroomHandler) ListSubjects(c *gin.Context) {
	classroomID, ok := middleware.GetUUID(c, "classroomID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "classroom ID missing"})
		return
	}

	subjects, err := h.subjectService.ListByClassroom(classroomID)
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
