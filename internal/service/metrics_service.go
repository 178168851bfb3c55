package service

import (
	"fmt"

	"gorm.io/gorm"

	"critico-backend/internal/model"
)

// EnrollmentMetrics aggregates the standing of every student enrolled in
// a course.
type EnrollmentMetrics struct {
	AverageCompletion float64  `json:"averageCompletion"`
	LevelDistribution []string `json:"levelDistribution"`
}

// TextQuestionMetrics groups question attempts by the text they belong
// to. The json key `_id` matches what the dashboard frontend expects.
type TextQuestionMetrics struct {
	TextID       uint    `json:"_id" gorm:"column:text_id"`
	AverageScore float64 `json:"averageScore" gorm:"column:average_score"`
	Attempts     int64   `json:"attempts" gorm:"column:attempts"`
}

// CourseMetrics is the full metrics payload for one course.
type CourseMetrics struct {
	CourseID          uint                  `json:"courseId"`
	EnrollmentMetrics EnrollmentMetrics     `json:"enrollmentMetrics"`
	QuestionMetrics   []TextQuestionMetrics `json:"questionMetrics"`
}

// GetCourseMetrics computes enrollment statistics plus per-text question
// statistics for a course. With zero enrollments the average is 0 and the
// distribution empty; texts with zero attempts never appear in the
// question metrics. Every attempt counts, including repeat attempts by
// the same student on the same question. Means are plain floating point;
// rounding is the caller's concern.
func GetCourseMetrics(db *gorm.DB, courseID uint) (*CourseMetrics, error) {
	metrics := &CourseMetrics{
		CourseID: courseID,
		EnrollmentMetrics: EnrollmentMetrics{
			LevelDistribution: []string{},
		},
		QuestionMetrics: []TextQuestionMetrics{},
	}

	var enrollments []model.Enrollment
	if err := db.Where("course_id = ?", courseID).Find(&enrollments).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch enrollments: %w", err)
	}

	if len(enrollments) > 0 {
		var totalCompletion float64
		seenLevels := make(map[string]bool)
		for _, e := range enrollments {
			totalCompletion += e.Progress.Completion
			level := e.Progress.Level
			if level != "" && !seenLevels[level] {
				seenLevels[level] = true
				metrics.EnrollmentMetrics.LevelDistribution = append(metrics.EnrollmentMetrics.LevelDistribution, level)
			}
		}
		metrics.EnrollmentMetrics.AverageCompletion = totalCompletion / float64(len(enrollments))
	}

	// Attempts are tied to texts through their own text reference; the
	// join only decides whether that text sits under this course.
	var questionMetrics []TextQuestionMetrics
	err := db.Table("question_attempts").
		Select("question_attempts.text_id AS text_id, AVG(question_attempts.score) AS average_score, COUNT(*) AS attempts").
		Joins("JOIN texts ON texts.id = question_attempts.text_id").
		Joins("JOIN topics ON topics.id = texts.topic_id").
		Where("topics.course_id = ?", courseID).
		Group("question_attempts.text_id").
		Order("question_attempts.text_id asc").
		Scan(&questionMetrics).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate question attempts: %w", err)
	}
	if questionMetrics != nil {
		metrics.QuestionMetrics = questionMetrics
	}

	return metrics, nil
}
