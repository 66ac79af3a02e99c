package postgres

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourusername/classroom-api/internal/domain/entity"
	apperrors "github.com/yourusername/classroom-api/internal/pkg/errors"
)

// ActivityRepo implements repository.ActivityRepository.
type ActivityRepo struct {
	db *gorm.DB
}

// NewActivityRepo creates a new activity repository.
func NewActivityRepo(db *gorm.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

// Create persists a new activity.
func (r *ActivityRepo) Create(activity *entity.Activity) error {
	return r.db.Create(activity).Error
}

// GetByID returns one activity by ID.
func (r *ActivityRepo) GetByID(id uuid.UUID) (*entity.Activity, error) {
	var activity entity.Activity
	err := r.db.First(&activity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &activity, nil
}

// ListBySubject returns all activities of a subject, newest first.
func (r *ActivityRepo) ListBySubject(subjectID uuid.UUID) ([]entity.Activity, error) {
	var activities []entity.Activity
	err := r.db.
		Where("subject_id = ?", subjectID).
		Order("created_at DESC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// Update saves the full activity row.
func (r *ActivityRepo) Update(activity *entity.Activity) error {
	return r.db.Save(activity).Error
}

// SubmissionRepo implements repository.SubmissionRepository.
type SubmissionRepo struct {
	db *gorm.DB
}

// NewSubmissionRepo creates a new submission repository.
func NewSubmissionRepo(db *gorm.DB) *SubmissionRepo {
	return &SubmissionRepo{db: db}
}

// Create persists a new hand-in. A second hand-in for the same activity and
// student maps to ErrConflict.
func (r *SubmissionRepo) Create(submission *entity.ActivitySubmission) error {
	if err := r.db.Create(submission).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("student %s already submitted for activity %s: %w",
				submission.StudentID, submission.ActivityID, apperrors.ErrConflict)
		}
		return err
	}
	return nil
}

// GetByID returns one submission with its grade preloaded.
func (r *SubmissionRepo) GetByID(id uint) (*entity.ActivitySubmission, error) {
	var submission entity.ActivitySubmission
	err := r.db.Preload("Grade").First(&submission, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &submission, nil
}

// GetByActivityAndStudent returns a student's hand-in for one activity.
func (r *SubmissionRepo) GetByActivityAndStudent(activityID uuid.UUID, studentID uuid.UUID) (*entity.ActivitySubmission, error) {
	var submission entity.ActivitySubmission
	err := r.db.
		Preload("Grade").
		First(&submission, "activity_id = ? AND student_id = ?", activityID, studentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &submission, nil
}

// ListByActivity returns every hand-in for an activity with grades loaded.
func (r *SubmissionRepo) ListByActivity(activityID uuid.UUID) ([]entity.ActivitySubmission, error) {
	var submissions []entity.ActivitySubmission
	err := r.db.
		Preload("Grade").
		Where("activity_id = ?", activityID).
		Order("created_at ASC").
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

// ListGradedBySubject returns all graded submissions for a subject's
// activities, for gradebook aggregation.
func (r *SubmissionRepo) ListGradedBySubject(subjectID uuid.UUID) ([]entity.ActivitySubmission, error) {
	var submissions []entity.ActivitySubmission
	err := r.db.
		Preload("Grade").
		Joins("JOIN activities ON activities.id = activity_submissions.activity_id").
		Joins("JOIN submission_grades ON submission_grades.submission_id = activity_submissions.id").
		Where("activities.subject_id = ?", subjectID).
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

// SaveGrade creates or updates the grade row of a submission.
func (r *SubmissionRepo) SaveGrade(grade *entity.SubmissionGrade) error {
	var existing entity.SubmissionGrade
	err := r.db.First(&existing, "submission_id = ?", grade.SubmissionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(grade).Error
		}
		return err
	}
	grade.ID = existing.ID
	grade.CreatedAt = existing.CreatedAt
	return r.db.Save(grade).Error
}
