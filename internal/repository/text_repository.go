package repository

import (
	"critico-backend/internal/db"
	"critico-backend/internal/db/query"
	"critico-backend/internal/model"
)

type TextRepository interface {
	CreateText(text *model.Text) error
	GetTextByID(textID uint) (*model.Text, error)
	GetTextsByTopic(topicID uint) ([]model.Text, error)
	UpdateText(text *model.Text) error
	DeleteText(textID uint) error
	SearchTexts(filter query.TextFilter, limit, offset int) ([]model.Text, error)
}

type textRepository struct{}

func NewTextRepository() TextRepository {
	return &textRepository{}
}

func (r *textRepository) CreateText(text *model.Text) error {
	return db.GetDB().Create(text).Error
}

func (r *textRepository) GetTextByID(textID uint) (*model.Text, error) {
	var text model.Text
	err := db.GetDB().Where("id = ?", textID).First(&text).Error
	if err != nil {
		return nil, err
	}
	return &text, nil
}

func (r *textRepository) GetTextsByTopic(topicID uint) ([]model.Text, error) {
	var texts []model.Text
	err := db.GetDB().Where("topic_id = ?", topicID).Find(&texts).Error
	return texts, err
}

func (r *textRepository) UpdateText(text *model.Text) error {
	return db.GetDB().Save(text).Error
}

func (r *textRepository) DeleteText(textID uint) error {
	return db.GetDB().Where("id = ?", textID).Delete(&model.Text{}).Error
}

func (r *textRepository) SearchTexts(filter query.TextFilter, limit, offset int) ([]model.Text, error) {
	qb := query.NewQueryBuilder().From("texts").OrderBy("title asc")
	filter.Apply(qb)
	if limit > 0 {
		qb.Limit(limit)
	}
	if offset > 0 {
		qb.Offset(offset)
	}
	sql, args := qb.Build()

	var texts []model.Text
	err := db.GetDB().Raw(sql, args...).Scan(&texts).Error
	return texts, err
}
