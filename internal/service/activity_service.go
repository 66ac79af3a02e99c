package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/classroom-api/internal/domain/entity"
	"github.com/yourusername/classroom-api/internal/domain/repository"
	apperrors "github.com/yourusername/classroom-api/internal/pkg/errors"
)

// ActivityInput is the teacher's activity form.
type ActivityInput struct {
	Title     string
	Content   string
	Grade     int
	DateOpen  time.Time
	DateClose *time.Time
	FileURL   string
	LinkURL   string
}

// SubmissionInput is the student's hand-in form.
type SubmissionInput struct {
	Content string
	FileURL string
	LinkURL string
}

// ActivityService handles activities, student hand-ins, and grading.
type ActivityService struct {
	activityRepo   repository.ActivityRepository
	submissionRepo repository.SubmissionRepository
	subjectRepo    repository.SubjectRepository
	profileRepo    repository.ProfileRepository
	emailSender    EmailSender
}

// NewActivityService creates a new activity service.
func NewActivityService(
	activityRepo repository.ActivityRepository,
	submissionRepo repository.SubmissionRepository,
	subjectRepo repository.SubjectRepository,
	profileRepo repository.ProfileRepository,
	emailSender EmailSender,
) *ActivityService {
	return &ActivityService{
		activityRepo:   activityRepo,
		submissionRepo: submissionRepo,
		subjectRepo:    subjectRepo,
		profileRepo:    profileRepo,
		emailSender:    emailSender,
	}
}

func validateActivityInput(in ActivityInput) *apperrors.ValidationErrors {
	verrs := &apperrors.ValidationErrors{}
	if in.Title == "" {
		verrs.Add("title", "Title is required")
	}
	if in.Grade <= 0 {
		verrs.Add("grade", "Maximum grade must be greater than zero")
	}
	if in.DateOpen.IsZero() {
		verrs.Add("date_open", "Opening date is required")
	}
	if in.DateClose != nil && !in.DateOpen.IsZero() && in.DateOpen.After(*in.DateClose) {
		verrs.Add("date_open", "Opening date must be earlier than closing date")
	}
	if verrs.Empty() {
		return nil
	}
	return verrs
}

// CreateActivity validates the form and posts an activity to the subject.
func (s *ActivityService) CreateActivity(teacherID, subjectID uuid.UUID, in ActivityInput) (*entity.Activity, error) {
	if verrs := validateActivityInput(in); verrs != nil {
		return nil, verrs
	}

	subject, err := s.subjectRepo.GetByID(subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subject %s: %w", subjectID, err)
	}
	if !subject.OwnedBy(teacherID) {
		return nil, fmt.Errorf("subject %s is not taught by teacher %s: %w", subjectID, teacherID, apperrors.ErrForbidden)
	}

	activity := &entity.Activity{
		SubjectID: subjectID,
		TeacherID: teacherID,
		Title:     in.Title,
		Content:   in.Content,
		Grade:     in.Grade,
		DateOpen:  in.DateOpen,
		DateClose: in.DateClose,
		FileURL:   in.FileURL,
		LinkURL:   in.LinkURL,
	}
	if err := s.activityRepo.Create(activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return activity, nil
}

// GetActivity returns one activity by ID.
func (s *ActivityService) GetActivity(id uuid.UUID) (*entity.Activity, error) {
	return s.activityRepo.GetByID(id)
}

// ListBySubject returns the activities of a subject.
func (s *ActivityService) ListBySubject(subjectID uuid.UUID) ([]entity.Activity, error) {
	return s.activityRepo.ListBySubject(subjectID)
}

// Submit records a student's hand-in. The activity must be inside its open
// window; a second hand-in from the same student is a conflict.
func (s *ActivityService) Submit(activityID, studentID uuid.UUID, in SubmissionInput) (*entity.ActivitySubmission, error) {
	activity, err := s.activityRepo.GetByID(activityID)
	if err != nil {
		return nil, err
	}
	if !activity.AcceptsSubmissionsAt(time.Now()) {
		return nil, fmt.Errorf("activity %s is not accepting submissions: %w", activityID, apperrors.ErrForbidden)
	}

	submission := &entity.ActivitySubmission{
		ActivityID: activityID,
		StudentID:  studentID,
		Content:    in.Content,
		FileURL:    in.FileURL,
		LinkURL:    in.LinkURL,
	}
	if err := s.submissionRepo.Create(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// ListSubmissions returns the hand-ins of an activity for the grading view.
func (s *ActivityService) ListSubmissions(activityID uuid.UUID) ([]entity.ActivitySubmission, error) {
	return s.submissionRepo.ListByActivity(activityID)
}

// Grade records the teacher's mark for a submission and re-grades on repeat
// calls. The student is notified by email best-effort: a send failure is
// logged, never surfaced to the grading teacher.
func (s *ActivityService) Grade(submissionID uint, teacherID uuid.UUID, grade int, comment string) (*entity.SubmissionGrade, error) {
	submission, err := s.submissionRepo.GetByID(submissionID)
	if err != nil {
		return nil, err
	}
	activity, err := s.activityRepo.GetByID(submission.ActivityID)
	if err != nil {
		return nil, err
	}
	if activity.TeacherID != teacherID {
		return nil, fmt.Errorf("activity %s is not owned by teacher %s: %w", activity.ID, teacherID, apperrors.ErrForbidden)
	}
	if grade < 0 || grade > activity.Grade {
		verrs := &apperrors.ValidationErrors{}
		verrs.Add("grade", fmt.Sprintf("Grade must be between 0 and %d", activity.Grade))
		return nil, verrs
	}

	record := &entity.SubmissionGrade{
		SubmissionID: submissionID,
		Grade:        grade,
		Comment:      comment,
	}
	if err := s.submissionRepo.SaveGrade(record); err != nil {
		return nil, fmt.Errorf("failed to save grade for submission %d: %w", submissionID, err)
	}

	s.notifyGraded(submission, activity, record)
	return record, nil
}

func (s *ActivityService) notifyGraded(submission *entity.ActivitySubmission, activity *entity.Activity, grade *entity.SubmissionGrade) {
	student, err := s.profileRepo.GetByID(submission.StudentID)
	if err != nil {
		log.Printf("[ActivityService] Cannot notify student %s, profile lookup failed: %v", submission.StudentID, err)
		return
	}
	if err := s.emailSender.SendGradeNotification(student.Email, student.FullName(), activity.Title, grade.Grade, activity.Grade, grade.Comment); err != nil {
		log.Printf("[ActivityService] Failed to send grade notification to %s: %v", student.Email, err)
	}
}
