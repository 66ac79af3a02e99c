package repository

import (
	"github.com/google/uuid"

	"github.com/yourusername/classroom-api/internal/domain/entity"
)

// ActivityRepository defines persistence for activities.
type ActivityRepository interface {
	Create(activity *entity.Activity) error
	GetByID(id uuid.UUID) (*entity.Activity, error)
	ListBySubject(subjectID uuid.UUID) ([]entity.Activity, error)
	Update(activity *entity.Activity) error
}

// SubmissionRepository defines persistence for student hand-ins and their grades.
type SubmissionRepository interface {
	Create(submission *entity.ActivitySubmission) error
	GetByID(id uint) (*entity.ActivitySubmission, error)
	GetByActivityAndStudent(activityID uuid.UUID, studentID uuid.UUID) (*entity.ActivitySubmission, error)
	// ListByActivity preloads grades for the teacher's grading view.
	ListByActivity(activityID uuid.UUID) ([]entity.ActivitySubmission, error)
	// ListGradedBySubject returns every graded submission for activities of
	// the subject, for gradebook aggregation.
	ListGradedBySubject(subjectID uuid.UUID) ([]entity.ActivitySubmission, error)
	SaveGrade(grade *entity.SubmissionGrade) error
}
