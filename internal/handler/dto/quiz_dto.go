package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/classroom-api/internal/domain/entity"
	"github.com/yourusername/classroom-api/internal/validation"
)

// QuizRequest is the quiz authoring form.
type QuizRequest struct {
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description"`
	DateOpen        time.Time `json:"date_open" binding:"required"`
	DateClose       time.Time `json:"date_close" binding:"required"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Payload converts the request to the validation payload.
func (r QuizRequest) Payload() validation.QuizPayload {
	return validation.QuizPayload{
		Title:           r.Title,
		Description:     r.Description,
		DateOpen:        r.DateOpen,
		DateClose:       r.DateClose,
		DurationMinutes: r.DurationMinutes,
	}
}

// OptionRequest is one answer slot of the question form.
type OptionRequest struct {
	Answer    string `json:"answer"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionRequest is the question authoring form.
type QuestionRequest struct {
	Title   string          `json:"title" binding:"required"`
	Type    string          `json:"type" binding:"required"`
	Points  int             `json:"points"`
	Options []OptionRequest `json:"options" binding:"required"`
}

// Payload converts the request to the validation payload.
func (r QuestionRequest) Payload() validation.QuestionPayload {
	options := make([]validation.OptionPayload, len(r.Options))
	for i, opt := range r.Options {
		options[i] = validation.OptionPayload{
			Answer:    opt.Answer,
			IsCorrect: opt.IsCorrect,
		}
	}
	return validation.QuestionPayload{
		Title:   r.Title,
		Type:    r.Type,
		Points:  r.Points,
		Options: options,
	}
}

// OptionResponse is one linked answer option.
type OptionResponse struct {
	ID        uint   `json:"id"`
	Answer    string `json:"answer"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionResponse is the authoring view of a question.
type QuestionResponse struct {
	ID       uuid.UUID        `json:"id"`
	QuizID   uuid.UUID        `json:"quiz_id"`
	Title    string           `json:"title"`
	Type     string           `json:"type"`
	Points   int              `json:"points"`
	Position int              `json:"position"`
	Options  []OptionResponse `json:"options"`
}

// NewQuestionResponse builds a QuestionResponse from the entity, flattening
// the join rows into their options.
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	options := make([]OptionResponse, 0, len(q.Answers))
	for _, link := range q.Answers {
		if link.Answer == nil {
			continue
		}
		options = append(options, OptionResponse{
			ID:        link.Answer.ID,
			Answer:    link.Answer.Answer,
			IsCorrect: link.Answer.IsCorrect,
		})
	}
	return QuestionResponse{
		ID:       q.ID,
		QuizID:   q.QuizID,
		Title:    q.Title,
		Type:     q.Type,
		Points:   q.Points,
		Position: q.Position,
		Options:  options,
	}
}

// QuizResponse is the authoring view of a quiz.
type QuizResponse struct {
	ID              uuid.UUID          `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description,omitempty"`
	DateOpen        time.Time          `json:"date_open"`
	DateClose       time.Time          `json:"date_close"`
	DurationMinutes int                `json:"duration_minutes"`
	SubjectID       uuid.UUID          `json:"subject_id"`
	TeacherID       uuid.UUID          `json:"teacher_id"`
	TotalPoints     int                `json:"total_points"`
	Questions       []QuestionResponse `json:"questions,omitempty"`
}

// NewQuizResponse builds a QuizResponse from the entity, including questions
// when they are loaded.
func NewQuizResponse(q *entity.Quiz) QuizResponse {
	resp := QuizResponse{
		ID:              q.ID,
		Title:           q.Title,
		Description:     q.Description,
		DateOpen:        q.DateOpen,
		DateClose:       q.DateClose,
		DurationMinutes: q.DurationMinutes,
		SubjectID:       q.SubjectID,
		TeacherID:       q.TeacherID,
		TotalPoints:     q.TotalPoints(),
	}
	for i := range q.Questions {
		resp.Questions = append(resp.Questions, NewQuestionResponse(&q.Questions[i]))
	}
	return resp
}
