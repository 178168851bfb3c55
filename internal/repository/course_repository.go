package repository

import (
	"critico-backend/internal/db"
	"critico-backend/internal/model"
)

type CourseRepository interface {
	CreateCourse(course *model.Course) error
	GetCourseByID(courseID uint) (*model.Course, error)
	GetCoursesByOwner(ownerID uint) ([]model.Course, error)
	UpdateCourse(course *model.Course) error
	DeleteCourse(courseID uint) error
	IncrementTopicCount(courseID uint) error
	DecrementTopicCount(courseID uint) error
}

type courseRepository struct{}

func NewCourseRepository() CourseRepository {
	return &courseRepository{}
}

func (r *courseRepository) CreateCourse(course *model.Course) error {
	return db.GetDB().Create(course).Error
}

func (r *courseRepository) GetCourseByID(courseID uint) (*model.Course, error) {
	var course model.Course
	err := db.GetDB().Where("id = ?", courseID).First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) GetCoursesByOwner(ownerID uint) ([]model.Course, error) {
	var courses []model.Course
	err := db.GetDB().Where("owner_id = ?", ownerID).Find(&courses).Error
	return courses, err
}

func (r *courseRepository) UpdateCourse(course *model.Course) error {
	return db.GetDB().Save(course).Error
}

func (r *courseRepository) DeleteCourse(courseID uint) error {
	return db.GetDB().Where("id = ?", courseID).Delete(&model.Course{}).Error
}

func (r *courseRepository) IncrementTopicCount(courseID uint) error {
	return db.GetDB().Exec(
		`UPDATE courses SET topic_count = topic_count + 1 WHERE id = ?`, courseID,
	).Error
}

// DecrementTopicCount floors at zero so a duplicate retry can never drive
// the counter negative.
func (r *courseRepository) DecrementTopicCount(courseID uint) error {
	return db.GetDB().Exec(
		`UPDATE courses SET topic_count = CASE WHEN topic_count > 0 THEN topic_count - 1 ELSE 0 END WHERE id = ?`,
		courseID,
	).Error
}
