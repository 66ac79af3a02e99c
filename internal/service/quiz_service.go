package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/yourusername/classroom-api/internal/domain/entity"
	"github.com/yourusername/classroom-api/internal/domain/repository"
	apperrors "github.com/yourusername/classroom-api/internal/pkg/errors"
	"github.com/yourusername/classroom-api/internal/validation"
)

// QuizService drives the quiz metadata lifecycle: create, update, and the
// joined reads the authoring and student views need.
type QuizService struct {
	quizRepo    repository.QuizRepository
	subjectRepo repository.SubjectRepository
}

// NewQuizService creates a new quiz service.
func NewQuizService(quizRepo repository.QuizRepository, subjectRepo repository.SubjectRepository) *QuizService {
	return &QuizService{
		quizRepo:    quizRepo,
		subjectRepo: subjectRepo,
	}
}

// CreateQuiz validates the payload and persists a new quiz under the subject.
// Validation errors never reach the repository.
func (s *QuizService) CreateQuiz(teacherID, subjectID uuid.UUID, p validation.QuizPayload) (*entity.Quiz, error) {
	if errs := validation.ValidateQuiz(p); errs != nil {
		return nil, errs
	}

	subject, err := s.subjectRepo.GetByID(subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subject %s: %w", subjectID, err)
	}
	if !subject.OwnedBy(teacherID) {
		return nil, fmt.Errorf("subject %s is not taught by teacher %s: %w", subjectID, teacherID, apperrors.ErrForbidden)
	}

	quiz := &entity.Quiz{
		Title:           p.Title,
		Description:     p.Description,
		DateOpen:        p.DateOpen,
		DateClose:       p.DateClose,
		DurationMinutes: p.DurationMinutes,
		SubjectID:       subjectID,
		TeacherID:       teacherID,
	}

	if err := s.quizRepo.Create(quiz); err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}
	return quiz, nil
}

// UpdateQuiz validates the payload and patches the authoring-form fields of
// an existing quiz.
func (s *QuizService) UpdateQuiz(quizID, teacherID uuid.UUID, p validation.QuizPayload) (*entity.Quiz, error) {
	if errs := validation.ValidateQuiz(p); errs != nil {
		return nil, errs
	}

	quiz, err := s.quizRepo.GetByID(quizID)
	if err != nil {
		return nil, err
	}
	if !quiz.OwnedBy(teacherID) {
		return nil, fmt.Errorf("quiz %s is not owned by teacher %s: %w", quizID, teacherID, apperrors.ErrForbidden)
	}

	updates := map[string]interface{}{
		"title":            p.Title,
		"description":      p.Description,
		"date_open":        p.DateOpen,
		"date_close":       p.DateClose,
		"duration_minutes": p.DurationMinutes,
	}
	if err := s.quizRepo.UpdateInfo(quizID, updates); err != nil {
		return nil, fmt.Errorf("failed to update quiz %s: %w", quizID, err)
	}

	return s.quizRepo.GetByID(quizID)
}

// GetQuiz returns one quiz by ID.
func (s *QuizService) GetQuiz(quizID uuid.UUID) (*entity.Quiz, error) {
	return s.quizRepo.GetByID(quizID)
}

// GetQuizWithQuestions returns the quiz joined with its questions and their
// answer options, in display order.
func (s *QuizService) GetQuizWithQuestions(quizID uuid.UUID) (*entity.Quiz, error) {
	return s.quizRepo.GetWithQuestions(quizID)
}

// ListBySubject returns the quizzes of a subject.
func (s *QuizService) ListBySubject(subjectID uuid.UUID) ([]entity.Quiz, error) {
	return s.quizRepo.ListBySubject(subjectID)
}
