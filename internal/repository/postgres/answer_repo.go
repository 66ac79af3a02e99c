package postgres

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourusername/classroom-api/internal/domain/entity"
)

// AnswerRepo implements repository.AnswerRepository.
type AnswerRepo struct {
	db *gorm.DB
}

// NewAnswerRepo creates a new answer repository.
func NewAnswerRepo(db *gorm.DB) *AnswerRepo {
	return &AnswerRepo{db: db}
}

// CreateWithLinks persists the option rows and their join rows in one
// transaction, so a failed link write never leaves orphaned answer rows.
func (r *AnswerRepo) CreateWithLinks(questionID uuid.UUID, options []entity.AnswerOption) ([]entity.QuestionAnswer, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("no options to attach to question %s", questionID)
	}

	links := make([]entity.QuestionAnswer, 0, len(options))
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i := range options {
			if err := tx.Create(&options[i]).Error; err != nil {
				return fmt.Errorf("create answer row: %w", err)
			}
			link := entity.QuestionAnswer{
				QuestionID: questionID,
				AnswerID:   options[i].ID,
			}
			if err := tx.Create(&link).Error; err != nil {
				return fmt.Errorf("create question_answers link: %w", err)
			}
			link.Answer = &options[i]
			links = append(links, link)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return links, nil
}

// ListByQuestion returns the answer links of a question with options loaded.
func (r *AnswerRepo) ListByQuestion(questionID uuid.UUID) ([]entity.QuestionAnswer, error) {
	var links []entity.QuestionAnswer
	err := r.db.
		Preload("Answer").
		Where("question_id = ?", questionID).
		Order("id ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// CountByQuestion returns the number of linked answer options.
func (r *AnswerRepo) CountByQuestion(questionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&entity.QuestionAnswer{}).
		Where("question_id = ?", questionID).
		Count(&count).Error
	return count, err
}
