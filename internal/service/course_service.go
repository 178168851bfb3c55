package service

import (
	"errors"

	"gorm.io/gorm"

	"critico-backend/internal/model"
	"critico-backend/internal/repository"
)

var ErrCourseNotFound = errors.New("course not found")

type CourseService interface {
	CreateCourse(course *model.Course) error
	GetCourse(courseID uint) (*model.Course, error)
	GetCoursesByOwner(ownerID uint) ([]model.Course, error)
	UpdateCourse(course *model.Course) error
	DeleteCourse(courseID uint) error
}

type courseService struct {
	courseRepo repository.CourseRepository
}

func NewCourseService(courseRepo repository.CourseRepository) CourseService {
	return &courseService{courseRepo: courseRepo}
}

func (s *courseService) CreateCourse(course *model.Course) error {
	course.TopicCount = 0
	return s.courseRepo.CreateCourse(course)
}

func (s *courseService) GetCourse(courseID uint) (*model.Course, error) {
	course, err := s.courseRepo.GetCourseByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCourseNotFound
	}
	return course, err
}

func (s *courseService) GetCoursesByOwner(ownerID uint) ([]model.Course, error) {
	return s.courseRepo.GetCoursesByOwner(ownerID)
}

func (s *courseService) UpdateCourse(course *model.Course) error {
	return s.courseRepo.UpdateCourse(course)
}

func (s *courseService) DeleteCourse(courseID uint) error {
	return s.courseRepo.DeleteCourse(courseID)
}
