package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/classroom-api/internal/handler/dto"
	"github.com/yourusername/classroom-api/internal/middleware"
	"github.com/yourusername/classroom-api/internal/service"
)

// ActivityHandler serves activities, hand-ins, grading, and the gradebook.
type ActivityHandler struct {
	activityService  *service.ActivityService
	gradebookService *service.GradebookService
}

// NewActivityHandler creates the handler.
func NewActivityHandler(activityService *service.ActivityService, gradebookService *service.GradebookService) *ActivityHandler {
	return &ActivityHandler{
		activityService:  activityService,
		gradebookService: gradebookService,
	}
}

// Create handles POST /api/subjects/:subjectID/activities.
func (h *ActivityHandler) Create(c *gin.Context) {
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

	var req dto.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.activityService.CreateActivity(teacherID, subjectID, req.Input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewActivityResponse(activity))
}

// ListBySubject handles GET /api/subjects/:subjectID/activities.
func (h *ActivityHandler) ListBySubject(c *gin.Context) {
	subjectID, ok := middleware.GetUUID(c, "subjectID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subject ID missing"})
		return
	}

	activities, err := h.activityService.ListBySubject(subjectID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.ActivityResponse, 0, len(activities))
	for i := range activities {
		resp = append(resp, dto.NewActivityResponse(&activities[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/activities/:activityID.
func (h *ActivityHandler) Get(c *gin.Context) {
	activityID, ok := middleware.GetUUID(c, "activityID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "activity ID missing"})
		return
	}

	activity, err := h.activityService.GetActivity(activityID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewActivityResponse(activity))
}

// Submit handles POST /api/activities/:activityID/submissions.
func (h *ActivityHandler) Submit(c *gin.Context) {
	studentID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	activityID, ok := middleware.GetUUID(c, "activityID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "activity ID missing"})
		return
	}

	var req dto.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := h.activityService.Submit(activityID, studentID, req.Input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSubmissionResponse(submission))
}

// ListSubmissions handles GET /api/activities/:activityID/submissions.
func (h *ActivityHandler) ListSubmissions(c *gin.Context) {
	activityID, ok := middleware.GetUUID(c, "activityID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "activity ID missing"})
		return
	}

	submissions, err := h.activityService.ListSubmissions(activityID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		resp = append(resp, dto.NewSubmissionResponse(&submissions[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Grade handles PUT /api/submissions/:submissionID/grade.
func (h *ActivityHandler) Grade(c *gin.Context) {
	teacherID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	submissionID := c.GetUint("submissionID")
	if submissionID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "submission ID missing"})
		return
	}

	var req dto.GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grade, err := h.activityService.Grade(submissionID, teacherID, req.Grade, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.GradeResponse{
		Grade:   grade.Grade,
		Comment: grade.Comment,
	})
}

// ExportGradebook handles GET /api/subjects/:subjectID/gradebook/export.
// Renders XLSX by default, CSV with ?format=csv.
func (h *ActivityHandler) ExportGradebook(c *gin.Context) {
	subjectID, ok := middleware.GetUUID(c, "subjectID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subject ID missing"})
		return
	}

	gradebook, err := h.gradebookService.Build(subjectID)
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("format") == "csv" {
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="gradebook-%s.csv"`, subjectID))
		c.Header("Content-Type", "text/csv")
		c.Status(http.StatusOK)
		if err := h.gradebookService.ExportCSV(gradebook, c.Writer); err != nil {
			respondError(c, err)
		}
		return
	}

	data, err := h.gradebookService.ExportXLSX(gradebook)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="gradebook-%s.xlsx"`, subjectID))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
