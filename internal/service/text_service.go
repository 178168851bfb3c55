package service

import (
	"errors"

	"gorm.io/gorm"

	"critico-backend/internal/db/query"
	"critico-backend/internal/model"
	"critico-backend/internal/repository"
)

var ErrTextNotFound = errors.New("text not found")

type TextService interface {
	CreateText(text *model.Text) error
	GetText(textID uint) (*model.Text, error)
	GetTextsByTopic(topicID uint) ([]model.Text, error)
	UpdateText(text *model.Text) error
	DeleteText(textID uint) error
	SearchTexts(filter query.TextFilter, limit, offset int) ([]model.Text, error)
	CourseOwner(textID uint) (courseID uint, ownerID uint, err error)
}

type textService struct {
	textRepo   repository.TextRepository
	topicRepo  repository.TopicRepository
	courseRepo repository.CourseRepository
}

func NewTextService(
	textRepo repository.TextRepository,
	topicRepo repository.TopicRepository,
	courseRepo repository.CourseRepository,
) TextService {
	return &textService{
		textRepo:   textRepo,
		topicRepo:  topicRepo,
		courseRepo: courseRepo,
	}
}

func (s *textService) CreateText(text *model.Text) error {
	return s.textRepo.CreateText(text)
}

func (s *textService) GetText(textID uint) (*model.Text, error) {
	text, err := s.textRepo.GetTextByID(textID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTextNotFound
	}
	return text, err
}

func (s *textService) GetTextsByTopic(topicID uint) ([]model.Text, error) {
	return s.textRepo.GetTextsByTopic(topicID)
}

func (s *textService) UpdateText(text *model.Text) error {
	return s.textRepo.UpdateText(text)
}

func (s *textService) DeleteText(textID uint) error {
	return s.textRepo.DeleteText(textID)
}

func (s *textService) SearchTexts(filter query.TextFilter, limit, offset int) ([]model.Text, error) {
	return s.textRepo.SearchTexts(filter, limit, offset)
}

// CourseOwner walks text -> topic -> course for the ownership guard.
func (s *textService) CourseOwner(textID uint) (uint, uint, error) {
	text, err := s.textRepo.GetTextByID(textID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, 0, ErrTextNotFound
	}
	if err != nil {
		return 0, 0, err
	}
	topic, err := s.topicRepo.GetTopicByID(text.TopicID)
	if err != nil {
		return 0, 0, err
	}
	course, err := s.courseRepo.GetCourseByID(topic.CourseID)
	if err != nil {
		return 0, 0, err
	}
	return course.ID, course.OwnerID, nil
}
