package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/classroom-api/internal/domain/entity"
	"github.com/yourusername/classroom-api/internal/domain/repository"
)

// GradebookRow is one student's line in the gradebook: their score per
// activity plus totals. Ungraded or missing hand-ins have no entry in Scores.
type GradebookRow struct {
	StudentID   uuid.UUID
	StudentName string
	Scores      map[uuid.UUID]int
	Total       int
}

// Gradebook is the per-subject grade matrix: activities as columns, enrolled
// students as rows.
type Gradebook struct {
	Subject    *entity.Subject
	Activities []entity.Activity
	Rows       []GradebookRow
	MaxTotal   int
}

// GradebookService aggregates graded submissions into per-subject gradebooks
// and renders them as XLSX or CSV.
type GradebookService struct {
	subjectRepo    repository.SubjectRepository
	activityRepo   repository.ActivityRepository
	submissionRepo repository.SubmissionRepository
	studentRepo    repository.StudentRepository
}

// NewGradebookService creates a new gradebook service.
func NewGradebookService(
	subjectRepo repository.SubjectRepository,
	activityRepo repository.ActivityRepository,
	submissionRepo repository.SubmissionRepository,
	studentRepo repository.StudentRepository,
) *GradebookService {
	return &GradebookService{
		subjectRepo:    subjectRepo,
		activityRepo:   activityRepo,
		submissionRepo: submissionRepo,
		studentRepo:    studentRepo,
	}
}

// Build assembles the gradebook of a subject: every enrolled student crossed
// with every activity, filled from the graded submissions.
func (s *GradebookService) Build(subjectID uuid.UUID) (*Gradebook, error) {
	subject, err := s.subjectRepo.GetWithClassroom(subjectID)
	if err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.ListBySubject(subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities for subject %s: %w", subjectID, err)
	}

	students, err := s.studentRepo.ListByClassroom(subject.ClassroomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list students for classroom %s: %w", subject.ClassroomID, err)
	}

	graded, err := s.submissionRepo.ListGradedBySubject(subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list graded submissions for subject %s: %w", subjectID, err)
	}

	// student profile -> activity -> score
	scores := make(map[uuid.UUID]map[uuid.UUID]int)
	for _, sub := range graded {
		if sub.Grade == nil {
			continue
		}
		if scores[sub.StudentID] == nil {
			scores[sub.StudentID] = make(map[uuid.UUID]int)
		}
		scores[sub.StudentID][sub.ActivityID] = sub.Grade.Grade
	}

	maxTotal := 0
	for _, act := range activities {
		maxTotal += act.Grade
	}

	rows := make([]GradebookRow, 0, len(students))
	for _, st := range students {
		row := GradebookRow{
			StudentID: st.ProfileID,
			Scores:    make(map[uuid.UUID]int),
		}
		if st.Profile != nil {
			row.StudentName = st.Profile.FullName()
		}
		for actID, score := range scores[st.ProfileID] {
			row.Scores[actID] = score
			row.Total += score
		}
		rows = append(rows, row)
	}

	return &Gradebook{
		Subject:    subject,
		Activities: activities,
		Rows:       rows,
		MaxTotal:   maxTotal,
	}, nil
}

// ExportXLSX renders the gradebook as an Excel workbook.
func (s *GradebookService) ExportXLSX(gb *Gradebook) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Gradebook"
	f.SetSheetName("Sheet1", sheet)

	headers := []interface{}{"Student"}
	for _, act := range gb.Activities {
		headers = append(headers, fmt.Sprintf("%s (%d)", act.Title, act.Grade))
	}
	headers = append(headers, fmt.Sprintf("Total (%d)", gb.MaxTotal))
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range gb.Rows {
		cells := []interface{}{row.StudentName}
		for _, act := range gb.Activities {
			if score, ok := row.Scores[act.ID]; ok {
				cells = append(cells, score)
			} else {
				cells = append(cells, "")
			}
		}
		cells = append(cells, row.Total)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportCSV renders the gradebook as CSV.
func (s *GradebookService) ExportCSV(gb *Gradebook, w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"Student"}
	for _, act := range gb.Activities {
		header = append(header, fmt.Sprintf("%s (%d)", act.Title, act.Grade))
	}
	header = append(header, fmt.Sprintf("Total (%d)", gb.MaxTotal))
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range gb.Rows {
		record := []string{row.StudentName}
		for _, act := range gb.Activities {
			if score, ok := row.Scores[act.ID]; ok {
				record = append(record, strconv.Itoa(score))
			} else {
				record = append(record, "")
			}
		}
		record = append(record, strconv.Itoa(row.Total))
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
