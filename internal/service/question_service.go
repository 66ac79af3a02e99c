package service

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/classroom-api/internal/domain/entity"
	"github.com/yourusername/classroom-api/internal/domain/repository"
	apperrors "github.com/yourusername/classroom-api/internal/pkg/errors"
	"github.com/yourusername/classroom-api/internal/validation"
)

const questionCountTTL = 10 * time.Minute

// QuestionService is the question builder: it validates a question payload,
// persists the question row, then persists its answer options and join rows.
// The question create and the answer attach are separate round trips, so a
// failed attach leaves a question without options; AddQuestion surfaces that
// state as ErrPartialWrite instead of hiding it.
type QuestionService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	cacheRepo    repository.CacheRepository
}

// NewQuestionService creates a new question builder service.
func NewQuestionService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	cacheRepo repository.CacheRepository,
) *QuestionService {
	return &QuestionService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		cacheRepo:    cacheRepo,
	}
}

func questionCountKey(quizID uuid.UUID) string {
	return fmt.Sprintf("quiz:%s:question_count", quizID)
}

// NextOrdinal returns the display number the next question will get: the
// current question count plus one. The count is served from cache when warm,
// falling back to the database.
func (s *QuestionService) NextOrdinal(quizID uuid.UUID) (int, error) {
	if s.cacheRepo != nil {
		if cached, err := s.cacheRepo.Get(questionCountKey(quizID)); err == nil {
			if count, convErr := strconv.Atoi(cached); convErr == nil {
				return count + 1, nil
			}
		}
	}

	count, err := s.questionRepo.CountByQuiz(quizID)
	if err != nil {
		return 0, fmt.Errorf("failed to count questions for quiz %s: %w", quizID, err)
	}
	if s.cacheRepo != nil {
		if err := s.cacheRepo.Set(questionCountKey(quizID), count, questionCountTTL); err != nil {
			log.Printf("[QuestionService] Warning: failed to cache question count for quiz %s: %v", quizID, err)
		}
	}
	return int(count) + 1, nil
}

// CreateQuestion validates the payload and persists the question row only.
// Its position is the persisted ordinal, derived from the current question
// count at insert time. Answer options are NOT written here; call
// AttachAnswers (or use AddQuestion, which sequences both).
func (s *QuestionService) CreateQuestion(quizID uuid.UUID, p validation.QuestionPayload) (*entity.Question, error) {
	if errs := validation.ValidateQuestion(p); errs != nil {
		return nil, errs
	}

	if _, err := s.quizRepo.GetByID(quizID); err != nil {
		return nil, fmt.Errorf("failed to load quiz %s: %w", quizID, err)
	}

	if !validation.HasCorrectOption(p.Options) {
		// Permitted for Multiple Choice, but worth a trace in the logs.
		log.Printf("[QuestionService] Question %q for quiz %s has no option marked correct", p.Title, quizID)
	}

	ordinal, err := s.NextOrdinal(quizID)
	if err != nil {
		return nil, err
	}

	question := &entity.Question{
		QuizID:   quizID,
		Title:    p.Title,
		Type:     p.Type,
		Points:   p.Points,
		Position: ordinal,
	}
	if err := s.questionRepo.Create(question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.Delete(questionCountKey(quizID)); err != nil {
			log.Printf("[QuestionService] Warning: failed to invalidate question count for quiz %s: %v", quizID, err)
		}
	}
	return question, nil
}

// AttachAnswers persists the answer options of a question plus the join rows
// binding them to it, atomically. A question that already has links is left
// untouched and reported as a conflict, which guards against double submits.
func (s *QuestionService) AttachAnswers(questionID uuid.UUID, options []validation.OptionPayload) ([]entity.QuestionAnswer, error) {
	existing, err := s.answerRepo.CountByQuestion(questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count answers for question %s: %w", questionID, err)
	}
	if existing > 0 {
		return nil, fmt.Errorf("question %s already has %d answer options: %w", questionID, existing, apperrors.ErrConflict)
	}

	answerOptions := make([]entity.AnswerOption, len(options))
	for i, opt := range options {
		answerOptions[i] = entity.AnswerOption{
			Answer:    opt.Answer,
			IsCorrect: opt.IsCorrect,
		}
	}

	links, err := s.answerRepo.CreateWithLinks(questionID, answerOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to attach answers to question %s: %w", questionID, err)
	}
	return links, nil
}

// AddQuestion runs the full builder sequence: create the question row, then
// attach its options. When the attach fails the already-created question is
// reported through ErrPartialWrite so the caller can show which question is
// dangling without options.
func (s *QuestionService) AddQuestion(quizID uuid.UUID, p validation.QuestionPayload) (*entity.Question, error) {
	question, err := s.CreateQuestion(quizID, p)
	if err != nil {
		return nil, err
	}

	links, err := s.AttachAnswers(question.ID, p.Options)
	if err != nil {
		log.Printf("[QuestionService] Question %s created but answers failed to attach: %v", question.ID, err)
		// Both the partial-write marker and the attach cause stay inspectable
		// through errors.Is, so a double submit is distinguishable from a
		// genuinely dangling question.
		return question, fmt.Errorf("question %s (%q) has no answer options: %w: %w", question.ID, question.Title, apperrors.ErrPartialWrite, err)
	}
	question.Answers = links
	return question, nil
}

// GetQuestion returns one question with its answer options.
func (s *QuestionService) GetQuestion(questionID uuid.UUID) (*entity.Question, error) {
	return s.questionRepo.GetWithAnswers(questionID)
}

// ListQuestions returns the questions of a quiz in display order, each with
// its answer options.
func (s *QuestionService) ListQuestions(quizID uuid.UUID) ([]entity.Question, error) {
	return s.questionRepo.ListByQuiz(quizID)
}

// DeleteQuestion removes a question. The ON DELETE CASCADE on the join table
// takes the links with it.
func (s *QuestionService) DeleteQuestion(questionID uuid.UUID) error {
	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		return err
	}
	if err := s.questionRepo.Delete(questionID); err != nil {
		return fmt.Errorf("failed to delete question %s: %w", questionID, err)
	}
	if s.cacheRepo != nil {
		if err := s.cacheRepo.Delete(questionCountKey(question.QuizID)); err != nil {
			log.Printf("[QuestionService] Warning: failed to invalidate question count for quiz %s: %v", question.QuizID, err)
		}
	}
	return nil
}
