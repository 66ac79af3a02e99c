package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourusername/classroom-api/internal/domain/entity"
	apperrors "github.com/yourusername/classroom-api/internal/pkg/errors"
)

// QuestionRepo implements repository.QuestionRepository.
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo creates a new question repository.
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create persists a new question row.
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// GetByID returns one question by ID.
func (r *QuestionRepo) GetByID(id uuid.UUID) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// GetWithAnswers returns the question with its answer links and options.
func (r *QuestionRepo) GetWithAnswers(id uuid.UUID) (*entity.Question, error) {
	var question entity.Question
	err := r.db.
		Preload("Answers.Answer").
		First(&question, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// ListByQuiz returns the questions of a quiz in display order, with options.
func (r *QuestionRepo) ListByQuiz(quizID uuid.UUID) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.
		Preload("Answers.Answer").
		Where("quiz_id = ?", quizID).
		Order("position ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// CountByQuiz returns the number of questions stored for a quiz.
func (r *QuestionRepo) CountByQuiz(quizID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).
		Where("quiz_id = ?", quizID).
		Count(&count).Error
	return count, err
}

// Delete removes a question row.
func (r *QuestionRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&entity.Question{}, "id = ?", id).Error
}
