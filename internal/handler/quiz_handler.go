package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/classroom-api/internal/handler/dto"
	"github.com/yourusername/classroom-api/internal/middleware"
	apperrors "github.com/yourusername/classroom-api/internal/pkg/errors"
	"github.com/yourusername/classroom-api/internal/service"
	"github.com/yourusername/classroom-api/internal/validation"
)

// QuizHandler serves the quiz authoring flow. Each request reconstructs an
// authoring session over the persisted quiz, so the flow survives page
// reloads and interrupted sessions.
type QuizHandler struct {
	quizService     *service.QuizService
	questionService *service.QuestionService
}

// NewQuizHandler creates the handler.
func NewQuizHandler(quizService *service.QuizService, questionService *service.QuestionService) *QuizHandler {
	return &QuizHandler{
		quizService:     quizService,
		questionService: questionService,
	}
}

// Create handles POST /api/subjects/:subjectID/quizzes.
func (h *QuizHandler) Create(c *gin.Context) {
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

	var req dto.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := service.NewAuthoringSession(h.quizService, h.questionService, teacherID, subjectID, nil)
	quiz, err := session.SaveQuiz(req.Payload())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewQuizResponse(quiz))
}

// Update handles PUT /api/quizzes/:quizID.
func (h *QuizHandler) Update(c *gin.Context) {
	teacherID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	quizID, ok := middleware.GetUUID(c, "quizID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quiz ID missing"})
		return
	}

	var req dto.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, err := h.quizService.GetQuiz(quizID)
	if err != nil {
		respondError(c, err)
		return
	}

	session := service.NewAuthoringSession(h.quizService, h.questionService, teacherID, quiz.SubjectID, &quizID)
	updated, err := session.SaveQuiz(req.Payload())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewQuizResponse(updated))
}

// Get handles GET /api/quizzes/:quizID. Questions come back in display order
// with their answer options.
func (h *QuizHandler) Get(c *gin.Context) {
	quizID, ok := middleware.GetUUID(c, "quizID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quiz ID missing"})
		return
	}

	quiz, err := h.quizService.GetQuizWithQuestions(quizID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewQuizResponse(quiz))
}

// ListBySubject handles GET /api/subjects/:subjectID/quizzes.
func (h *QuizHandler) ListBySubject(c *gin.Context) {
	subjectID, ok := middleware.GetUUID(c, "subjectID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subject ID missing"})
		return
	}

	quizzes, err := h.quizService.ListBySubject(subjectID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.QuizResponse, 0, len(quizzes))
	for i := range quizzes {
		resp = append(resp, dto.NewQuizResponse(&quizzes[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// AddQuestion handles POST /api/quizzes/:quizID/questions. Runs the full
// builder sequence through an authoring session resumed over the quiz. A
// partial write (question created, options missing) answers 409 and names
// the dangling question so the author can retry the attach.
func (h *QuizHandler) AddQuestion(c *gin.Context) {
	teacherID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	quizID, ok := middleware.GetUUID(c, "quizID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quiz ID missing"})
		return
	}

	var req dto.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, err := h.quizService.GetQuiz(quizID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !quiz.OwnedBy(teacherID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "quiz is owned by another teacher"})
		return
	}

	session := service.NewAuthoringSession(h.quizService, h.questionService, teacherID, quiz.SubjectID, &quizID)
	question, err := session.AddQuestion(req.Payload())
	if err != nil {
		if errors.Is(err, apperrors.ErrPartialWrite) && question != nil {
			c.JSON(http.StatusConflict, gin.H{
				"error":       err.Error(),
				"question_id": question.ID,
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"question":     dto.NewQuestionResponse(question),
		"next_ordinal": session.Ordinal(),
	})
}

// AttachAnswers handles POST /api/questions/:questionID/answers. The retry
// path after a partial write: links the option set to an existing question
// that has none yet.
func (h *QuizHandler) AttachAnswers(c *gin.Context) {
	questionID, ok := middleware.GetUUID(c, "questionID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question ID missing"})
		return
	}

	var req struct {
		Options []dto.OptionRequest `json:"options" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	options := make([]validation.OptionPayload, len(req.Options))
	for i, opt := range req.Options {
		options[i] = validation.OptionPayload{Answer: opt.Answer, IsCorrect: opt.IsCorrect}
	}

	if _, err := h.questionService.AttachAnswers(questionID, options); err != nil {
		respondError(c, err)
		return
	}

	question, err := h.questionService.GetQuestion(questionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewQuestionResponse(question))
}

// ListQuestions handles GET /api/quizzes/:quizID/questions.
func (h *QuizHandler) ListQuestions(c *gin.Context) {
	quizID, ok := middleware.GetUUID(c, "quizID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quiz ID missing"})
		return
	}

	questions, err := h.questionService.ListQuestions(quizID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		resp = append(resp, dto.NewQuestionResponse(&questions[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// NextOrdinal handles GET /api/quizzes/:quizID/next-ordinal. Also derives the
// authoring navigation routes when the client passes its current path.
func (h *QuizHandler) NextOrdinal(c *gin.Context) {
	quizID, ok := middleware.GetUUID(c, "quizID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quiz ID missing"})
		return
	}

	ordinal, err := h.questionService.NextOrdinal(quizID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"next_ordinal": ordinal}
	if current := c.Query("path"); current != "" {
		resp["add_question_route"] = service.AddQuestionRoute(current)
		resp["exit_route"] = service.ExitRoute(current)
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteQuestion handles DELETE /api/questions/:questionID.
func (h *QuizHandler) DeleteQuestion(c *gin.Context) {
	questionID, ok := middleware.GetUUID(c, "questionID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question ID missing"})
		return
	}

	if err := h.questionService.DeleteQuestion(questionID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
