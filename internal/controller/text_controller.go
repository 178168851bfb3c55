package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"critico-backend/internal/db/query"
	"critico-backend/internal/model"
	"critico-backend/internal/service"
)

type TextController struct {
	TextService  service.TextService
	TopicService service.TopicService
}

func NewTextController(textService service.TextService, topicService service.TopicService) *TextController {
	return &TextController{TextService: textService, TopicService: topicService}
}

// CreateText handles POST /api/texts/topic/:topicId.
func (tc *TextController) CreateText(c *gin.Context) {
	topicID, ok := paramUint(c, "topicId")
	if !ok {
		return
	}
	_, ownerID, err := tc.TopicService.CourseOwner(topicID)
	if errors.Is(err, service.ErrTopicNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "topic not found"})
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
		Title         string   `json:"title" binding:"required"`
		Content       string   `json:"content"`
		Source        string   `json:"source"`
		EstimatedTime int      `json:"estimated_time"`
		Difficulty    string   `json:"difficulty"`
		Length        string   `json:"length"`
		Tags          []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	text := &model.Text{
		TopicID:       topicID,
		Title:         req.Title,
		Content:       req.Content,
		Source:        req.Source,
		EstimatedTime: req.EstimatedTime,
		Difficulty:    req.Difficulty,
		Length:        req.Length,
		Tags:          req.Tags,
	}
	if err := tc.TextService.CreateText(text); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, text)
}

// GetTextsByTopic handles GET /api/texts/topic/:topicId.
func (tc *TextController) GetTextsByTopic(c *gin.Context) {
	topicID, ok := paramUint(c, "topicId")
	if !ok {
		return
	}
	texts, err := tc.TextService.GetTextsByTopic(topicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, texts)
}

// SearchTexts handles GET /api/texts/search with optional query filters.
func (tc *TextController) SearchTexts(c *gin.Context) {
	var filter query.TextFilter
	if raw := c.Query("topic_id"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.TopicID = uint(v)
		}
	}
	filter.Difficulty = c.Query("difficulty")
	filter.Length = c.Query("length")
	filter.Tag = c.Query("tag")
	filter.TitleLike = c.Query("title")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	texts, err := tc.TextService.SearchTexts(filter, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, texts)
}

// UpdateText handles PATCH /api/texts/:textId.
func (tc *TextController) UpdateText(c *gin.Context) {
	textID, ok := paramUint(c, "textId")
	if !ok {
		return
	}
	_, ownerID, err := tc.TextService.CourseOwner(textID)
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

	text, err := tc.TextService.GetText(textID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Title         *string   `json:"title"`
		Content       *string   `json:"content"`
		Source        *string   `json:"source"`
		EstimatedTime *int      `json:"estimated_time"`
		Difficulty    *string   `json:"difficulty"`
		Length        *string   `json:"length"`
		Tags          *[]string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if req.Title != nil {
		text.Title = *req.Title
	}
	if req.Content != nil {
		text.Content = *req.Content
	}
	if req.Source != nil {
		text.Source = *req.Source
	}
	if req.EstimatedTime != nil {
		text.EstimatedTime = *req.EstimatedTime
	}
	if req.Difficulty != nil {
		text.Difficulty = *req.Difficulty
	}
	if req.Length != nil {
		text.Length = *req.Length
	}
	if req.Tags != nil {
		text.Tags = *req.Tags
	}

	if err := tc.TextService.UpdateText(text); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, text)
}

// DeleteText handles DELETE /api/texts/:textId.
func (tc *TextController) DeleteText(c *gin.Context) {
	textID, ok := paramUint(c, "textId")
	if !ok {
		return
	}
	_, ownerID, err := tc.TextService.CourseOwner(textID)
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

	if err := tc.TextService.DeleteText(textID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
