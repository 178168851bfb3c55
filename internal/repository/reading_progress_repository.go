package repository

import (
	"errors"

	"gorm.io/gorm"

	"critico-backend/internal/db"
	"critico-backend/internal/model"
)

type ReadingProgressRepository interface {
	SaveProgress(progress *model.ReadingProgress) error
	GetProgressByStudent(studentID uint) ([]model.ReadingProgress, error)
	DeleteByTopic(topicID uint) (int64, error)
}

type readingProgressRepository struct{}

func NewReadingProgressRepository() ReadingProgressRepository {
	return &readingProgressRepository{}
}

// SaveProgress creates the row on first contact with a topic and updates
// it afterwards, keeping one row per (student, topic, text).
func (r *readingProgressRepository) SaveProgress(progress *model.ReadingProgress) error {
	var existing model.ReadingProgress
	q := db.GetDB().Where("student_id = ? AND topic_id = ?", progress.StudentID, progress.TopicID)
	if progress.TextID != nil {
		q = q.Where("text_id = ?", *progress.TextID)
	}
	err := q.First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.GetDB().Create(progress).Error
	}
	if err != nil {
		return err
	}
	progress.ID = existing.ID
	progress.CreatedAt = existing.CreatedAt
	return db.GetDB().Save(progress).Error
}

func (r *readingProgressRepository) GetProgressByStudent(studentID uint) ([]model.ReadingProgress, error) {
	var rows []model.ReadingProgress
	err := db.GetDB().Where("student_id = ?", studentID).Find(&rows).Error
	return rows, err
}

// DeleteByTopic removes every progress row referencing the topic. Deleting
// an already-empty set is a no-op, which keeps cascade retries safe.
func (r *readingProgressRepository) DeleteByTopic(topicID uint) (int64, error) {
	result := db.GetDB().Where("topic_id = ?", topicID).Delete(&model.ReadingProgress{})
	return result.RowsAffected, result.Error
}
