package repository

import (
	"critico-backend/internal/db"
	"critico-backend/internal/model"
)

type QuestionRepository interface {
	CreateQuestion(question *model.Question) error
	GetQuestionByID(questionID uint) (*model.Question, error)
	GetQuestionsByText(textID uint) ([]model.Question, error)
	DeleteQuestion(questionID uint) error
	SaveAttempt(attempt *model.QuestionAttempt) error
	GetAttemptsByStudent(studentID uint) ([]model.QuestionAttempt, error)
}

type questionRepository struct{}

func NewQuestionRepository() QuestionRepository {
	return &questionRepository{}
}

func (r *questionRepository) CreateQuestion(question *model.Question) error {
	return db.GetDB().Create(question).Error
}

func (r *questionRepository) GetQuestionByID(questionID uint) (*model.Question, error) {
	var question model.Question
	err := db.GetDB().Where("id = ?", questionID).First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) GetQuestionsByText(textID uint) ([]model.Question, error) {
	var questions []model.Question
	err := db.GetDB().Where("text_id = ?", textID).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) DeleteQuestion(questionID uint) error {
	return db.GetDB().Where("id = ?", questionID).Delete(&model.Question{}).Error
}

func (r *questionRepository) SaveAttempt(attempt *model.QuestionAttempt) error {
	return db.GetDB().Create(attempt).Error
}

func (r *questionRepository) GetAttemptsByStudent(studentID uint) ([]model.QuestionAttempt, error) {
	var attempts []model.QuestionAttempt
	err := db.GetDB().Where("student_id = ?", studentID).Find(&attempts).Error
	return attempts, err
}
