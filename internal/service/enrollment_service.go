package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"critico-backend/internal/model"
	"critico-backend/internal/repository"
)

var ErrAlreadyEnrolled = errors.New("student is already enrolled in this course")

type EnrollmentService interface {
	Enroll(studentID, courseID uint) (*model.Enrollment, error)
	GetEnrollmentsByStudent(studentID uint) ([]model.Enrollment, error)
	GetReadingProgressByStudent(studentID uint) ([]model.ReadingProgress, error)
	SaveReadingProgress(progress *model.ReadingProgress) error
}

type enrollmentService struct {
	enrollmentRepo repository.EnrollmentRepository
	progressRepo   repository.ReadingProgressRepository
	courseRepo     repository.CourseRepository
	topicRepo      repository.TopicRepository
}

func NewEnrollmentService(
	enrollmentRepo repository.EnrollmentRepository,
	progressRepo repository.ReadingProgressRepository,
	courseRepo repository.CourseRepository,
	topicRepo repository.TopicRepository,
) EnrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		progressRepo:   progressRepo,
		courseRepo:     courseRepo,
		topicRepo:      topicRepo,
	}
}

// Enroll creates the single enrollment a student may hold per course.
func (s *enrollmentService) Enroll(studentID, courseID uint) (*model.Enrollment, error) {
	if _, err := s.courseRepo.GetCourseByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if existing, err := s.enrollmentRepo.GetByStudentAndCourse(studentID, courseID); err == nil && existing != nil {
		return nil, ErrAlreadyEnrolled
	}

	now := time.Now()
	enrollment := &model.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
		Progress: model.EnrollmentProgress{
			Completion:   0,
			Level:        "inicial",
			LastAccessAt: &now,
		},
	}
	if err := s.enrollmentRepo.CreateEnrollment(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *enrollmentService) GetEnrollmentsByStudent(studentID uint) ([]model.Enrollment, error) {
	return s.enrollmentRepo.GetEnrollmentsByStudent(studentID)
}

func (s *enrollmentService) GetReadingProgressByStudent(studentID uint) ([]model.ReadingProgress, error) {
	return s.progressRepo.GetProgressByStudent(studentID)
}

// SaveReadingProgress upserts the student's row for a topic/text and
// touches the matching enrollment's last-access timestamp when the topic
// still resolves to a course the student is enrolled in.
func (s *enrollmentService) SaveReadingProgress(progress *model.ReadingProgress) error {
	if err := s.progressRepo.SaveProgress(progress); err != nil {
		return err
	}

	topic, err := s.topicRepo.GetTopicByID(progress.TopicID)
	if err != nil {
		// Topic vanished between save and touch; the row itself is fine.
		return nil
	}
	enrollment, err := s.enrollmentRepo.GetByStudentAndCourse(progress.StudentID, topic.CourseID)
	if err != nil {
		return nil
	}
	now := time.Now()
	enrollment.Progress.LastAccessAt = &now
	return s.enrollmentRepo.UpdateEnrollment(enrollment)
}
