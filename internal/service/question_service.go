package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"critico-backend/internal/model"
	"critico-backend/internal/repository"
	"critico-backend/utilities"
)

var ErrQuestionNotFound = errors.New("question not found")

// SubmittedAnswer is what a student sends for one question.
type SubmittedAnswer struct {
	Value string `json:"value"`
}

type QuestionService interface {
	CreateQuestion(question *model.Question) error
	GetQuestion(questionID uint) (*model.Question, error)
	GetQuestionsByText(textID uint) ([]model.Question, error)
	DeleteQuestion(questionID uint) error
	SubmitAttempt(studentID, questionID uint, answers []SubmittedAnswer) (*model.QuestionAttempt, error)
	GetAttemptsByStudent(studentID uint) ([]model.QuestionAttempt, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{questionRepo: questionRepo}
}

func (s *questionService) CreateQuestion(question *model.Question) error {
	return s.questionRepo.CreateQuestion(question)
}

func (s *questionService) GetQuestion(questionID uint) (*model.Question, error) {
	question, err := s.questionRepo.GetQuestionByID(questionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuestionNotFound
	}
	return question, err
}

func (s *questionService) GetQuestionsByText(textID uint) ([]model.Question, error) {
	return s.questionRepo.GetQuestionsByText(textID)
}

func (s *questionService) DeleteQuestion(questionID uint) error {
	return s.questionRepo.DeleteQuestion(questionID)
}

func (s *questionService) GetAttemptsByStudent(studentID uint) ([]model.QuestionAttempt, error) {
	return s.questionRepo.GetAttemptsByStudent(studentID)
}

// SubmitAttempt grades the submitted answers against the question's
// options and records a new attempt row. Repeat attempts are allowed and
// each one is kept; the metrics count them all.
func (s *questionService) SubmitAttempt(studentID, questionID uint, answers []SubmittedAnswer) (*model.QuestionAttempt, error) {
	question, err := s.questionRepo.GetQuestionByID(questionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}

	correctByLabel := make(map[string]bool, len(question.Options))
	for _, opt := range question.Options {
		correctByLabel[strings.TrimSpace(opt.Label)] = opt.IsCorrect
	}

	graded := make([]model.AttemptAnswer, 0, len(answers))
	correct := 0
	for _, a := range answers {
		isCorrect := correctByLabel[strings.TrimSpace(a.Value)]
		if isCorrect {
			correct++
		}
		graded = append(graded, model.AttemptAnswer{Value: a.Value, IsCorrect: isCorrect})
	}

	var score float64
	if len(graded) > 0 {
		score = float64(correct) / float64(len(graded)) * 100
	}

	attempt := &model.QuestionAttempt{
		SessionID:   uuid.New().String(),
		StudentID:   studentID,
		QuestionID:  question.ID,
		TextID:      question.TextID,
		Answers:     graded,
		Score:       score,
		CompletedAt: time.Now(),
	}
	if err := s.questionRepo.SaveAttempt(attempt); err != nil {
		return nil, err
	}

	utilities.GlobalEventBus.Publish(utilities.EventAttemptRecorded, attempt.ID)
	return attempt, nil
}
