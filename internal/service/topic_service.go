package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"critico-backend/internal/model"
	"critico-backend/internal/repository"
	"critico-backend/utilities"
)

var ErrTopicNotFound = errors.New("topic not found")

type TopicService interface {
	CreateTopic(topic *model.Topic) error
	GetTopic(topicID uint) (*model.Topic, error)
	GetTopicsByCourse(courseID uint) ([]model.Topic, error)
	UpdateTopic(topic *model.Topic) error
	DeleteTopic(topicID uint) error
	CourseOwner(topicID uint) (courseID uint, ownerID uint, err error)
}

type topicService struct {
	topicRepo    repository.TopicRepository
	courseRepo   repository.CourseRepository
	progressRepo repository.ReadingProgressRepository
}

func NewTopicService(
	topicRepo repository.TopicRepository,
	courseRepo repository.CourseRepository,
	progressRepo repository.ReadingProgressRepository,
) TopicService {
	return &topicService{
		topicRepo:    topicRepo,
		courseRepo:   courseRepo,
		progressRepo: progressRepo,
	}
}

// CreateTopic stores the topic and bumps the parent course's cached topic
// counter. The counter is never written from anywhere else.
func (s *topicService) CreateTopic(topic *model.Topic) error {
	if err := s.topicRepo.CreateTopic(topic); err != nil {
		return fmt.Errorf("failed to create topic: %w", err)
	}
	if err := s.courseRepo.IncrementTopicCount(topic.CourseID); err != nil {
		return fmt.Errorf("failed to update topic count: %w", err)
	}
	return nil
}

func (s *topicService) GetTopic(topicID uint) (*model.Topic, error) {
	topic, err := s.topicRepo.GetTopicByID(topicID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTopicNotFound
	}
	return topic, err
}

func (s *topicService) GetTopicsByCourse(courseID uint) ([]model.Topic, error) {
	return s.topicRepo.GetTopicsByCourse(courseID)
}

func (s *topicService) UpdateTopic(topic *model.Topic) error {
	return s.topicRepo.UpdateTopic(topic)
}

// DeleteTopic removes the topic, then every reading-progress row that
// references it, then decrements the parent course's topic counter. The
// three steps are a best-effort sequence, not a transaction: a failure
// after the first step leaves orphan cleanup to a retry. Each step is
// idempotent, and the counter only moves when this call actually deleted
// the topic, so a duplicate retry can never decrement it twice.
func (s *topicService) DeleteTopic(topicID uint) error {
	topic, err := s.topicRepo.GetTopicByID(topicID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Already gone; still sweep progress rows left by a failed retry.
		_, err := s.progressRepo.DeleteByTopic(topicID)
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to load topic: %w", err)
	}

	deleted, err := s.topicRepo.DeleteTopic(topicID)
	if err != nil {
		return fmt.Errorf("failed to delete topic: %w", err)
	}

	removed, err := s.progressRepo.DeleteByTopic(topicID)
	if err != nil {
		return fmt.Errorf("failed to cascade reading progress: %w", err)
	}

	if deleted > 0 {
		if err := s.courseRepo.DecrementTopicCount(topic.CourseID); err != nil {
			return fmt.Errorf("failed to update topic count: %w", err)
		}
	}

	utilities.GlobalEventBus.Publish(utilities.EventTopicDeleted, topicID)
	utilities.Info("deleted topic %d (%d reading progress rows removed)", topicID, removed)
	return nil
}

// CourseOwner resolves the owning course and its teacher for the
// ownership guard on topic mutations.
func (s *topicService) CourseOwner(topicID uint) (uint, uint, error) {
	topic, err := s.topicRepo.GetTopicByID(topicID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, 0, ErrTopicNotFound
	}
	if err != nil {
		return 0, 0, err
	}
	course, err := s.courseRepo.GetCourseByID(topic.CourseID)
	if err != nil {
		return 0, 0, err
	}
	return course.ID, course.OwnerID, nil
}
