package service

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/classroom-api/internal/domain/entity"
)

func TestGradebookService_Build(t *testing.T) {
	subjectID := uuid.New()
	classroomID := uuid.New()
	actEssay := entity.Activity{ID: uuid.New(), Title: "Essay", Grade: 50}
	actLab := entity.Activity{ID: uuid.New(), Title: "Lab report", Grade: 30}
	ana := uuid.New()
	ben := uuid.New()

	subjectRepo := new(MockSubjectRepo)
	activityRepo := new(MockActivityRepo)
	submissionRepo := new(MockSubmissionRepo)
	studentRepo := new(MockStudentRepo)
	svc := NewGradebookService(subjectRepo, activityRepo, submissionRepo, studentRepo)

	subjectRepo.On("GetWithClassroom", subjectID).Return(&entity.Subject{
		ID: subjectID, Name: "Science", ClassroomID: classroomID,
	}, nil)
	activityRepo.On("ListBySubject", subjectID).Return([]entity.Activity{actEssay, actLab}, nil)
	studentRepo.On("ListByClassroom", classroomID).Return([]entity.Student{
		{ProfileID: ana, Profile: &entity.Profile{FirstName: "Ana", LastName: "Reyes"}},
		{ProfileID: ben, Profile: &entity.Profile{FirstName: "Ben", LastName: "Cruz"}},
	}, nil)
	submissionRepo.On("ListGradedBySubject", subjectID).Return([]entity.ActivitySubmission{
		{StudentID: ana, ActivityID: actEssay.ID, Grade: &entity.SubmissionGrade{Grade: 45}},
		{StudentID: ana, ActivityID: actLab.ID, Grade: &entity.SubmissionGrade{Grade: 25}},
		{StudentID: ben, ActivityID: actEssay.ID, Grade: &entity.SubmissionGrade{Grade: 38}},
	}, nil)

	gb, err := svc.Build(subjectID)
	require.NoError(t, err)
	assert.Equal(t, 80, gb.MaxTotal)
	require.Len(t, gb.Rows, 2)

	assert.Equal(t, "Ana Reyes", gb.Rows[0].StudentName)
	assert.Equal(t, 70, gb.Rows[0].Total)
	assert.Equal(t, 38, gb.Rows[1].Total)

	// Ben has no lab score, so his row leaves that column empty in the CSV.
	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(gb, &buf))
	csv := buf.String()
	assert.Contains(t, csv, "Student,Essay (50),Lab report (30),Total (80)")
	assert.Contains(t, csv, "Ana Reyes,45,25,70")
	assert.Contains(t, csv, "Ben Cruz,38,,38")

	data, err := svc.ExportXLSX(gb)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
