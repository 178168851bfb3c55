package repository

import (
	"critico-backend/internal/db"
	"critico-backend/internal/model"
)

type EnrollmentRepository interface {
	CreateEnrollment(enrollment *model.Enrollment) error
	GetByStudentAndCourse(studentID, courseID uint) (*model.Enrollment, error)
	GetEnrollmentsByStudent(studentID uint) ([]model.Enrollment, error)
	GetEnrollmentsByCourse(courseID uint) ([]model.Enrollment, error)
	UpdateEnrollment(enrollment *model.Enrollment) error
}

type enrollmentRepository struct{}

func NewEnrollmentRepository() EnrollmentRepository {
	return &enrollmentRepository{}
}

func (r *enrollmentRepository) CreateEnrollment(enrollment *model.Enrollment) error {
	return db.GetDB().Create(enrollment).Error
}

func (r *enrollmentRepository) GetByStudentAndCourse(studentID, courseID uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := db.GetDB().Where("student_id = ? AND course_id = ?", studentID, courseID).First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) GetEnrollmentsByStudent(studentID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := db.GetDB().Where("student_id = ?", studentID).Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepository) GetEnrollmentsByCourse(courseID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := db.GetDB().Where("course_id = ?", courseID).Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepository) UpdateEnrollment(enrollment *model.Enrollment) error {
	return db.GetDB().Save(enrollment).Error
}
