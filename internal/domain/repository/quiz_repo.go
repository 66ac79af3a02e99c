package repository

import (
	"github.com/google/uuid"

	"github.com/yourusername/classroom-api/internal/domain/entity"
)

// QuizRepository defines persistence for quizzes.
type QuizRepository interface {
	Create(quiz *entity.Quiz) error
	GetByID(id uuid.UUID) (*entity.Quiz, error)
	// GetWithQuestions preloads questions ordered by position, each joined
	// with its answer options. This is the resume-from-fetch read.
	GetWithQuestions(id uuid.UUID) (*entity.Quiz, error)
	ListBySubject(subjectID uuid.UUID) ([]entity.Quiz, error)
	Update(quiz *entity.Quiz) error
	// UpdateInfo patches only the authoring-form fields without a full Save.
	UpdateInfo(quizID uuid.UUID, updates map[string]interface{}) error
}

// QuestionRepository defines persistence for quiz questions.
type QuestionRepository interface {
	Create(question *entity.Question) error
	GetByID(id uuid.UUID) (*entity.Question, error)
	// GetWithAnswers preloads the question's answer links and options.
	GetWithAnswers(id uuid.UUID) (*entity.Question, error)
	ListByQuiz(quizID uuid.UUID) ([]entity.Question, error)
	CountByQuiz(quizID uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
}

// AnswerRepository defines persistence for answer options and their links.
type AnswerRepository interface {
	// CreateWithLinks persists every option as an answer row plus one join
	// row binding it to the question, atomically in one transaction.
	CreateWithLinks(questionID uuid.UUID, options []entity.AnswerOption) ([]entity.QuestionAnswer, error)
	ListByQuestion(questionID uuid.UUID) ([]entity.QuestionAnswer, error)
	CountByQuestion(questionID uuid.UUID) (int64, error)
}
