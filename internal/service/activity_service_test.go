package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/classroom-api/internal/domain/entity"
	apperrors "github.com/yourusername/classroom-api/internal/pkg/errors"
)

func newActivityServiceMocks() (*ActivityService, *MockActivityRepo, *MockSubmissionRepo, *MockSubjectRepo, *MockProfileRepo, *MockEmailSender) {
	activityRepo := new(MockActivityRepo)
	submissionRepo := new(MockSubmissionRepo)
	subjectRepo := new(MockSubjectRepo)
	profileRepo := new(MockProfileRepo)
	emailSender := new(MockEmailSender)
	svc := NewActivityService(activityRepo, submissionRepo, subjectRepo, profileRepo, emailSender)
	return svc, activityRepo, submissionRepo, subjectRepo, profileRepo, emailSender
}

func TestActivityService_CreateActivity(t *testing.T) {
	teacherID := uuid.New()
	subjectID := uuid.New()

	input := ActivityInput{
		Title:    "Essay on photosynthesis",
		Grade:    50,
		DateOpen: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
	}

	t.Run("posts a valid activity", func(t *testing.T) {
		svc, activityRepo, _, subjectRepo, _, _ := newActivityServiceMocks()
		subjectRepo.On("GetByID", subjectID).Return(&entity.Subject{ID: subjectID, TeacherID: teacherID}, nil)
		activityRepo.On("Create", mock.AnythingOfType("*entity.Activity")).Return(nil)

		activity, err := svc.CreateActivity(teacherID, subjectID, input)
		require.NoError(t, err)
		assert.Equal(t, 50, activity.Grade)
		activityRepo.AssertExpectations(t)
	})

	t.Run("rejects a zero max grade", func(t *testing.T) {
		svc, activityRepo, _, _, _, _ := newActivityServiceMocks()

		bad := input
		bad.Grade = 0
		_, err := svc.CreateActivity(teacherID, subjectID, bad)

		var verrs *apperrors.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.True(t, verrs.Has("grade"))
		activityRepo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestActivityService_Submit(t *testing.T) {
	activityID := uuid.New()
	studentID := uuid.New()

	t.Run("accepts a hand-in inside the window", func(t *testing.T) {
		svc, activityRepo, submissionRepo, _, _, _ := newActivityServiceMocks()
		activityRepo.On("GetByID", activityID).Return(&entity.Activity{
			ID:       activityID,
			DateOpen: time.Now().Add(-time.Hour),
		}, nil)
		submissionRepo.On("Create", mock.AnythingOfType("*entity.ActivitySubmission")).Return(nil)

		submission, err := svc.Submit(activityID, studentID, SubmissionInput{Content: "my essay"})
		require.NoError(t, err)
		assert.Equal(t, studentID, submission.StudentID)
	})

	t.Run("rejects a hand-in after the close date", func(t *testing.T) {
		svc, activityRepo, submissionRepo, _, _, _ := newActivityServiceMocks()
		closed := time.Now().Add(-time.Hour)
		activityRepo.On("GetByID", activityID).Return(&entity.Activity{
			ID:        activityID,
			DateOpen:  closed.Add(-24 * time.Hour),
			DateClose: &closed,
		}, nil)

		_, err := svc.Submit(activityID, studentID, SubmissionInput{})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		submissionRepo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestActivityService_Grade(t *testing.T) {
	teacherID := uuid.New()
	activityID := uuid.New()
	studentID := uuid.New()
	submission := &entity.ActivitySubmission{ID: 7, ActivityID: activityID, StudentID: studentID}
	activity := &entity.Activity{ID: activityID, TeacherID: teacherID, Title: "Essay", Grade: 50}

	t.Run("records the mark and notifies the student", func(t *testing.T) {
		svc, activityRepo, submissionRepo, _, profileRepo, emailSender := newActivityServiceMocks()
		submissionRepo.On("GetByID", uint(7)).Return(submission, nil)
		activityRepo.On("GetByID", activityID).Return(activity, nil)
		submissionRepo.On("SaveGrade", mock.MatchedBy(func(g *entity.SubmissionGrade) bool {
			return g.SubmissionID == 7 && g.Grade == 42
		})).Return(nil)
		profileRepo.On("GetByID", studentID).Return(&entity.Profile{
			ID:        studentID,
			Email:     "student@example.com",
			FirstName: "Ana",
			LastName:  "Reyes",
		}, nil)
		emailSender.On("SendGradeNotification",
			"student@example.com", "Ana Reyes", "Essay", 42, 50, "Good work").Return(nil)

		grade, err := svc.Grade(7, teacherID, 42, "Good work")
		require.NoError(t, err)
		assert.Equal(t, 42, grade.Grade)
		emailSender.AssertExpectations(t)
	})

	t.Run("a failed notification does not fail the grading", func(t *testing.T) {
		svc, activityRepo, submissionRepo, _, profileRepo, emailSender := newActivityServiceMocks()
		submissionRepo.On("GetByID", uint(7)).Return(submission, nil)
		activityRepo.On("GetByID", activityID).Return(activity, nil)
		submissionRepo.On("SaveGrade", mock.Anything).Return(nil)
		profileRepo.On("GetByID", studentID).Return(nil, apperrors.ErrNotFound)

		_, err := svc.Grade(7, teacherID, 42, "")
		assert.NoError(t, err)
		emailSender.AssertNotCalled(t, "SendGradeNotification",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects a mark above the activity maximum", func(t *testing.T) {
		svc, activityRepo, submissionRepo, _, _, _ := newActivityServiceMocks()
		submissionRepo.On("GetByID", uint(7)).Return(submission, nil)
		activityRepo.On("GetByID", activityID).Return(activity, nil)

		_, err := svc.Grade(7, teacherID, 51, "")
		var verrs *apperrors.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.True(t, verrs.Has("grade"))
		submissionRepo.AssertNotCalled(t, "SaveGrade", mock.Anything)
	})

	t.Run("another teacher cannot grade", func(t *testing.T) {
		svc, activityRepo, submissionRepo, _, _, _ := newActivityServiceMocks()
		submissionRepo.On("GetByID", uint(7)).Return(submission, nil)
		activityRepo.On("GetByID", activityID).Return(activity, nil)

		_, err := svc.Grade(7, uuid.New(), 10, "")
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}
