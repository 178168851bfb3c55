package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"critico-backend/internal/model"
	"critico-backend/internal/service"
	"critico-backend/utilities"
)

type CourseController struct {
	CourseService service.CourseService
}

func NewCourseController(courseService service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

func (cc *CourseController) CreateCourse(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	course := &model.Course{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     utilities.CallerID(c),
	}
	if err := cc.CourseService.CreateCourse(course); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, course)
}

// GetMyCourses lists the courses owned by the calling teacher.
func (cc *CourseController) GetMyCourses(c *gin.Context) {
	courses, err := cc.CourseService.GetCoursesByOwner(utilities.CallerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (cc *CourseController) GetCourse(c *gin.Context) {
	courseID, ok := paramUint(c, "courseId")
	if !ok {
		return
	}
	course, err := cc.CourseService.GetCourse(courseID)
	if errors.Is(err, service.ErrCourseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, course)
}

func (cc *CourseController) UpdateCourse(c *gin.Context) {
	courseID, ok := paramUint(c, "courseId")
	if !ok {
		return
	}
	course, err := cc.CourseService.GetCourse(courseID)
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
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if err := cc.CourseService.UpdateCourse(course); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, course)
}

func (cc *CourseController) DeleteCourse(c *gin.Context) {
	courseID, ok := paramUint(c, "courseId")
	if !ok {
		return
	}
	course, err := cc.CourseService.GetCourse(courseID)
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

	if err := cc.CourseService.DeleteCourse(courseID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
