package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"critico-backend/internal/model"
	"critico-backend/internal/service"
)

type TopicController struct {
	TopicService  service.TopicService
	CourseService service.CourseService
}

func NewTopicController(topicService service.TopicService, courseService service.CourseService) *TopicController {
	return &TopicController{TopicService: topicService, CourseService: courseService}
}

// CreateTopic handles POST /api/topics/course/:courseId.
func (tc *TopicController) CreateTopic(c *gin.Context) {
	courseID, ok := paramUint(c, "courseId")
	if !ok {
		return
	}
	course, err := tc.CourseService.GetCourse(courseID)
	if errors.Is(err, service.ErrCourseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !requireOwnership(c, course.OwnerID) {
		return
	}

	var req struct {
		Title       string   `json:"title" binding:"required"`
		Description string   `json:"description"`
		Order       int      `json:"order"`
		Objectives  []string `json:"objectives"`
		IsPublished bool     `json:"is_published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	topic := &model.Topic{
		CourseID:    courseID,
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
		Objectives:  req.Objectives,
		IsPublished: req.IsPublished,
	}
	if err := tc.TopicService.CreateTopic(topic); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, topic)
}

// GetTopicsByCourse handles GET /api/topics/course/:courseId.
func (tc *TopicController) GetTopicsByCourse(c *gin.Context) {
	courseID, ok := paramUint(c, "courseId")
	if !ok {
		return
	}
	topics, err := tc.TopicService.GetTopicsByCourse(courseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, topics)
}

// UpdateTopic handles PATCH /api/topics/:topicId.
func (tc *TopicController) UpdateTopic(c *gin.Context) {
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

	topic, err := tc.TopicService.GetTopic(topicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Title       *string   `json:"title"`
		Description *string   `json:"description"`
		Order       *int      `json:"order"`
		Objectives  *[]string `json:"objectives"`
		IsPublished *bool     `json:"is_published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if req.Title != nil {
		topic.Title = *req.Title
	}
	if req.Description != nil {
		topic.Description = *req.Description
	}
	if req.Order != nil {
		topic.Order = *req.Order
	}
	if req.Objectives != nil {
		topic.Objectives = *req.Objectives
	}
	if req.IsPublished != nil {
		topic.IsPublished = *req.IsPublished
	}

	if err := tc.TopicService.UpdateTopic(topic); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, topic)
}

// DeleteTopic handles DELETE /api/topics/:topicId. On success the topic,
// its reading progress rows, and one unit of the course's topic counter
// are gone before the 204 goes out.
func (tc *TopicController) DeleteTopic(c *gin.Context) {
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

	if err := tc.TopicService.DeleteTopic(topicID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
