package service

import (
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/yourusername/classroom-api/internal/domain/entity"
	apperrors "github.com/yourusername/classroom-api/internal/pkg/errors"
	"github.com/yourusername/classroom-api/internal/validation"
)

// AuthoringState is the phase an authoring session is in.
type AuthoringState string

const (
	// StateIdle: session opened, quiz form not yet saved.
	StateIdle AuthoringState = "idle"
	// StateQuizSaved: quiz metadata persisted, question flow not started.
	StateQuizSaved AuthoringState = "quiz_saved"
	// StateAwaitingQuestion: question form shown, waiting for a submit.
	StateAwaitingQuestion AuthoringState = "awaiting_question"
	// StateQuestionSubmitted: a question just persisted, before the form resets.
	StateQuestionSubmitted AuthoringState = "question_submitted"
	// StateExiting: author is leaving the flow.
	StateExiting AuthoringState = "exiting"
)

// AuthoringSession drives the teacher's quiz-building flow as a small state
// machine. A session either starts fresh (no quiz yet) or resumes over an
// existing quiz; from there the author saves the quiz form once and then
// submits questions one at a time until exiting.
type AuthoringSession struct {
	quizzes   *QuizService
	questions *QuestionService

	teacherID uuid.UUID
	subjectID uuid.UUID
	quizID    *uuid.UUID

	state   AuthoringState
	prefill *validation.QuizPayload
	list    []entity.Question
	ordinal int
}

// NewAuthoringSession opens a session for a teacher on a subject. Pass a
// quizID to resume authoring an existing quiz, or nil to start a new one.
func NewAuthoringSession(quizzes *QuizService, questions *QuestionService, teacherID, subjectID uuid.UUID, quizID *uuid.UUID) *AuthoringSession {
	s := &AuthoringSession{
		quizzes:   quizzes,
		questions: questions,
		teacherID: teacherID,
		subjectID: subjectID,
		quizID:    quizID,
		state:     StateIdle,
		ordinal:   1,
	}
	if quizID != nil {
		s.resume()
	}
	return s
}

// resume loads the existing quiz and its questions to prefill the forms.
// A fetch failure degrades to an empty session over the same quiz ID rather
// than blocking the author; the miss is logged and authoring continues.
func (s *AuthoringSession) resume() {
	quiz, err := s.quizzes.GetQuizWithQuestions(*s.quizID)
	if err != nil {
		log.Printf("[AuthoringSession] Failed to load quiz %s for resume, continuing with empty forms: %v", *s.quizID, err)
		s.state = StateAwaitingQuestion
		return
	}

	s.prefill = &validation.QuizPayload{
		Title:           quiz.Title,
		Description:     quiz.Description,
		DateOpen:        quiz.DateOpen,
		DateClose:       quiz.DateClose,
		DurationMinutes: quiz.DurationMinutes,
	}
	s.list = quiz.Questions
	s.ordinal = len(quiz.Questions) + 1
	s.state = StateAwaitingQuestion
}

// SaveQuiz persists the quiz form. In a fresh session it creates the quiz and
// moves to StateQuizSaved; in a resumed (or already saved) session it updates
// the existing quiz in place.
func (s *AuthoringSession) SaveQuiz(p validation.QuizPayload) (*entity.Quiz, error) {
	if s.state == StateExiting {
		return nil, fmt.Errorf("session already exiting: %w", apperrors.ErrConflict)
	}

	if s.quizID == nil {
		quiz, err := s.quizzes.CreateQuiz(s.teacherID, s.subjectID, p)
		if err != nil {
			return nil, err
		}
		id := quiz.ID
		s.quizID = &id
		s.state = StateQuizSaved
		s.prefill = &p
		return quiz, nil
	}

	quiz, err := s.quizzes.UpdateQuiz(*s.quizID, s.teacherID, p)
	if err != nil {
		return nil, err
	}
	if s.state == StateIdle {
		s.state = StateQuizSaved
	}
	s.prefill = &p
	return quiz, nil
}

// StartQuestions moves a saved session into the question flow.
func (s *AuthoringSession) StartQuestions() error {
	if s.quizID == nil {
		return fmt.Errorf("quiz must be saved before adding questions: %w", apperrors.ErrConflict)
	}
	switch s.state {
	case StateQuizSaved, StateQuestionSubmitted:
		s.state = StateAwaitingQuestion
		return nil
	case StateAwaitingQuestion:
		return nil
	default:
		return fmt.Errorf("cannot start question flow from state %q: %w", s.state, apperrors.ErrConflict)
	}
}

// AddQuestion submits one question with its options through the builder,
// then refreshes the session's question list from the repository so the
// displayed ordinal stays in step with what is actually persisted. The
// session passes through StateQuestionSubmitted and lands back on
// StateAwaitingQuestion, ready for the next question.
func (s *AuthoringSession) AddQuestion(p validation.QuestionPayload) (*entity.Question, error) {
	if s.state != StateAwaitingQuestion {
		return nil, fmt.Errorf("session is not awaiting a question (state %q): %w", s.state, apperrors.ErrConflict)
	}

	question, err := s.questions.AddQuestion(*s.quizID, p)
	if err != nil {
		return question, err
	}
	s.state = StateQuestionSubmitted

	list, listErr := s.questions.ListQuestions(*s.quizID)
	if listErr != nil {
		log.Printf("[AuthoringSession] Failed to refresh question list for quiz %s: %v", *s.quizID, listErr)
		s.list = append(s.list, *question)
	} else {
		s.list = list
	}
	s.ordinal = len(s.list) + 1

	s.state = StateAwaitingQuestion
	return question, nil
}

// Exit closes the session. Terminal; no further submits are accepted.
func (s *AuthoringSession) Exit() {
	s.state = StateExiting
}

// State reports the current phase.
func (s *AuthoringSession) State() AuthoringState { return s.state }

// QuizID returns the quiz under authoring, nil before the first save.
func (s *AuthoringSession) QuizID() *uuid.UUID { return s.quizID }

// Ordinal is the display number the next question form should show.
func (s *AuthoringSession) Ordinal() int { return s.ordinal }

// Questions returns the session's view of the persisted questions.
func (s *AuthoringSession) Questions() []entity.Question { return s.list }

// Prefill returns the quiz form values of a resumed session, nil when the
// resume fetch failed or the session is fresh.
func (s *AuthoringSession) Prefill() *validation.QuizPayload { return s.prefill }

// AddQuestionRoute derives the question-form route from the current quiz
// page path: the last segment is replaced with "add-question".
func AddQuestionRoute(currentPath string) string {
	return path.Join(parentPath(currentPath), "add-question")
}

// ExitRoute derives the route the author lands on after exiting the question
// flow: the last segment is replaced with "edit".
func ExitRoute(currentPath string) string {
	return path.Join(parentPath(currentPath), "edit")
}

func parentPath(p string) string {
	trimmed := strings.TrimRight(p, "/")
	if trimmed == "" {
		return "/"
	}
	return path.Dir(trimmed)
}
