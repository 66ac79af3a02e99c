package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/yourusername/classroom-api/internal/domain/entity"
)

// MockQuizRepo mocks repository.QuizRepository.
type MockQuizRepo struct {
	mock.Mock
}

func (m *MockQuizRepo) Create(quiz *entity.Quiz) error {
	args := m.Called(quiz)
	return args.Error(0)
}

func (m *MockQuizRepo) GetByID(id uuid.UUID) (*entity.Quiz, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quiz), args.Error(1)
}

func (m *MockQuizRepo) GetWithQuestions(id uuid.UUID) (*entity.Quiz, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quiz), args.Error(1)
}

func (m *MockQuizRepo) ListBySubject(subjectID uuid.UUID) ([]entity.Quiz, error) {
	args := m.Called(subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Quiz), args.Error(1)
}

func (m *MockQuizRepo) Update(quiz *entity.Quiz) error {
	args := m.Called(quiz)
	return args.Error(0)
}

func (m *MockQuizRepo) UpdateInfo(quizID uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(quizID, updates)
	return args.Error(0)
}

// MockQuestionRepo mocks repository.QuestionRepository.
type MockQuestionRepo struct {
	mock.Mock
}

func (m *MockQuestionRepo) Create(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepo) GetByID(id uuid.UUID) (*entity.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepo) GetWithAnswers(id uuid.UUID) (*entity.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepo) ListByQuiz(quizID uuid.UUID) ([]entity.Question, error) {
	args := m.Called(quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepo) CountByQuiz(quizID uuid.UUID) (int64, error) {
	args := m.Called(quizID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionRepo) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockAnswerRepo mocks repository.AnswerRepository.
type MockAnswerRepo struct {
	mock.Mock
}

func (m *MockAnswerRepo) CreateWithLinks(questionID uuid.UUID, options []entity.AnswerOption) ([]entity.QuestionAnswer, error) {
	args := m.Called(questionID, options)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.QuestionAnswer), args.Error(1)
}

func (m *MockAnswerRepo) ListByQuestion(questionID uuid.UUID) ([]entity.QuestionAnswer, error) {
	args := m.Called(questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.QuestionAnswer), args.Error(1)
}

func (m *MockAnswerRepo) CountByQuestion(questionID uuid.UUID) (int64, error) {
	args := m.Called(questionID)
	return args.Get(0).(int64), args.Error(1)
}

// MockSubjectRepo mocks repository.SubjectRepository.
type MockSubjectRepo struct {
	mock.Mock
}

func (m *MockSubjectRepo) Create(subject *entity.Subject) error {
	args := m.Called(subject)
	return args.Error(0)
}

func (m *MockSubjectRepo) GetByID(id uuid.UUID) (*entity.Subject, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subject), args.Error(1)
}

func (m *MockSubjectRepo) GetWithClassroom(id uuid.UUID) (*entity.Subject, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subject), args.Error(1)
}

func (m *MockSubjectRepo) ListByTeacher(teacherID uuid.UUID) ([]entity.Subject, error) {
	args := m.Called(teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Subject), args.Error(1)
}

func (m *MockSubjectRepo) ListByClassroom(classroomID uuid.UUID) ([]entity.Subject, error) {
	args := m.Called(classroomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Subject), args.Error(1)
}

func (m *MockSubjectRepo) Update(subject *entity.Subject) error {
	args := m.Called(subject)
	return args.Error(0)
}

// MockActivityRepo mocks repository.ActivityRepository.
type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) Create(activity *entity.Activity) error {
	args := m.Called(activity)
	return args.Error(0)
}

func (m *MockActivityRepo) GetByID(id uuid.UUID) (*entity.Activity, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Activity), args.Error(1)
}

func (m *MockActivityRepo) ListBySubject(subjectID uuid.UUID) ([]entity.Activity, error) {
	args := m.Called(subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Activity), args.Error(1)
}

func (m *MockActivityRepo) Update(activity *entity.Activity) error {
	args := m.Called(activity)
	return args.Error(0)
}

// MockSubmissionRepo mocks repository.SubmissionRepository.
type MockSubmissionRepo struct {
	mock.Mock
}

func (m *MockSubmissionRepo) Create(submission *entity.ActivitySubmission) error {
	args := m.Called(submission)
	return args.Error(0)
}

func (m *MockSubmissionRepo) GetByID(id uint) (*entity.ActivitySubmission, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ActivitySubmission), args.Error(1)
}

func (m *MockSubmissionRepo) GetByActivityAndStudent(activityID uuid.UUID, studentID uuid.UUID) (*entity.ActivitySubmission, error) {
	args := m.Called(activityID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ActivitySubmission), args.Error(1)
}

func (m *MockSubmissionRepo) ListByActivity(activityID uuid.UUID) ([]entity.ActivitySubmission, error) {
	args := m.Called(activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ActivitySubmission), args.Error(1)
}

func (m *MockSubmissionRepo) ListGradedBySubject(subjectID uuid.UUID) ([]entity.ActivitySubmission, error) {
	args := m.Called(subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ActivitySubmission), args.Error(1)
}

func (m *MockSubmissionRepo) SaveGrade(grade *entity.SubmissionGrade) error {
	args := m.Called(grade)
	return args.Error(0)
}

// MockProfileRepo mocks repository.ProfileRepository.
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(profile *entity.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepo) GetByID(id uuid.UUID) (*entity.Profile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileRepo) GetByEmail(email string) (*entity.Profile, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileRepo) Update(profile *entity.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

// MockStudentRepo mocks repository.StudentRepository.
type MockStudentRepo struct {
	mock.Mock
}

func (m *MockStudentRepo) Create(student *entity.Student) error {
	args := m.Called(student)
	return args.Error(0)
}

func (m *MockStudentRepo) GetByProfileID(profileID uuid.UUID) (*entity.Student, error) {
	args := m.Called(profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Student), args.Error(1)
}

func (m *MockStudentRepo) ListByClassroom(classroomID uuid.UUID) ([]entity.Student, error) {
	args := m.Called(classroomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Student), args.Error(1)
}

// MockClassroomRepo mocks repository.ClassroomRepository.
type MockClassroomRepo struct {
	mock.Mock
}

func (m *MockClassroomRepo) Create(classroom *entity.Classroom) error {
	args := m.Called(classroom)
	return args.Error(0)
}

func (m *MockClassroomRepo) GetByID(id uuid.UUID) (*entity.Classroom, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Classroom), args.Error(1)
}

func (m *MockClassroomRepo) GetByGradeAndSection(gradeLevel, section string) (*entity.Classroom, error) {
	args := m.Called(gradeLevel, section)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Classroom), args.Error(1)
}

func (m *MockClassroomRepo) List() ([]entity.Classroom, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Classroom), args.Error(1)
}

// MockCacheRepo mocks repository.CacheRepository.
type MockCacheRepo struct {
	mock.Mock
}

func (m *MockCacheRepo) Set(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepo) Get(key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheRepo) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockCacheRepo) Increment(key string) (int64, error) {
	args := m.Called(key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCacheRepo) SetJSON(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepo) GetJSON(key string, dest interface{}) error {
	args := m.Called(key, dest)
	return args.Error(0)
}

func (m *MockCacheRepo) Exists(key string) (bool, error) {
	args := m.Called(key)
	return args.Bool(0), args.Error(1)
}

// MockEmailSender mocks EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendGradeNotification(to, studentName, activityTitle string, grade, maxGrade int, comment string) error {
	args := m.Called(to, studentName, activityTitle, grade, maxGrade, comment)
	return args.Error(0)
}
