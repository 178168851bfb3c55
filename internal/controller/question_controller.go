package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"critico-backend/internal/model"
	"critico-backend/internal/service"
	"critico-backend/utilities"
)

type QuestionController struct {
	QuestionService service.QuestionService
	TextService     service.TextService
}

func NewQuestionController(questionService service.QuestionService, textService service.TextService) *QuestionController {
	return &QuestionController{QuestionService: questionService, TextService: textService}
}

// CreateQuestion handles POST /api/questions/text/:textId.
func (qc *QuestionController) CreateQuestion(c *gin.Context) {
	textID, ok := paramUint(c, "textId")
	if !ok {
		return
	}
	_, ownerID, err := qc.TextService.CourseOwner(textID)
	if errors.Is(err, service.ErrTextNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "text not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !requireOwnership(c, ownerID) {
		return
	}

	var req struct {
		Skill            string                 `json:"skill"`
		Type             string                 `json:"type"`
		Prompt           string                 `json:"prompt" binding:"required"`
		Options          []model.QuestionOption `json:"options" binding:"required"`
		FeedbackTemplate string                 `json:"feedback_template"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	question := &model.Question{
		TextID:           textID,
		Skill:            req.Skill,
		Type:             req.Type,
		Prompt:           req.Prompt,
		Options:          req.Options,
		FeedbackTemplate: req.FeedbackTemplate,
	}
	if err := qc.QuestionService.CreateQuestion(question); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, question)
}

// GetQuestionsByText handles GET /api/questions/text/:textId.
func (qc *QuestionController) GetQuestionsByText(c *gin.Context) {
	textID, ok := paramUint(c, "textId")
	if !ok {
		return
	}
	questions, err := qc.QuestionService.GetQuestionsByText(textID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// DeleteQuestion handles DELETE /api/questions/:questionId.
func (qc *QuestionController) DeleteQuestion(c *gin.Context) {
	questionID, ok := paramUint(c, "questionId")
	if !ok {
		return
	}
	question, err := qc.QuestionService.GetQuestion(questionID)
	if errors.Is(err, service.ErrQuestionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	_, ownerID, err := qc.TextService.CourseOwner(question.TextID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !requireOwnership(c, ownerID) {
		return
	}
	if err := qc.QuestionService.DeleteQuestion(questionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitAttempt handles POST /api/attempts. Each submission is stored as
// a fresh attempt row; students may retry the same question.
func (qc *QuestionController) SubmitAttempt(c *gin.Context) {
	var req struct {
		QuestionID uint                      `json:"question_id" binding:"required"`
		Answers    []service.SubmittedAnswer `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: missing required fields"})
		return
	}

	attempt, err := qc.QuestionService.SubmitAttempt(utilities.CallerID(c), req.QuestionID, req.Answers)
	if errors.Is(err, service.ErrQuestionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, attempt)
}

// GetMyAttempts handles GET /api/attempts/mine.
func (qc *QuestionController) GetMyAttempts(c *gin.Context) {
	attempts, err := qc.QuestionService.GetAttemptsByStudent(utilities.CallerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, attempts)
}
