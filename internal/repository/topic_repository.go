package repository

import (
	"critico-backend/internal/db"
	"critico-backend/internal/model"
)

type TopicRepository interface {
	CreateTopic(topic *model.Topic) error
	GetTopicByID(topicID uint) (*model.Topic, error)
	GetTopicsByCourse(courseID uint) ([]model.Topic, error)
	UpdateTopic(topic *model.Topic) error
	DeleteTopic(topicID uint) (int64, error)
}

type topicRepository struct{}

func NewTopicRepository() TopicRepository {
	return &topicRepository{}
}

func (r *topicRepository) CreateTopic(topic *model.Topic) error {
	return db.GetDB().Create(topic).Error
}

func (r *topicRepository) GetTopicByID(topicID uint) (*model.Topic, error) {
	var topic model.Topic
	err := db.GetDB().Where("id = ?", topicID).First(&topic).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepository) GetTopicsByCourse(courseID uint) ([]model.Topic, error) {
	var topics []model.Topic
	err := db.GetDB().Where("course_id = ?", courseID).Order("position asc").Find(&topics).Error
	return topics, err
}

func (r *topicRepository) UpdateTopic(topic *model.Topic) error {
	return db.GetDB().Save(topic).Error
}

// DeleteTopic removes the row and reports how many rows went away, so the
// cascade path can tell a fresh delete from a retry.
func (r *topicRepository) DeleteTopic(topicID uint) (int64, error) {
	result := db.GetDB().Where("id = ?", topicID).Delete(&model.Topic{})
	return result.RowsAffected, result.Error
}
