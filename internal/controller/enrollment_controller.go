package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"critico-backend/internal/model"
	"critico-backend/internal/service"
	"critico-backend/utilities"
)

type EnrollmentController struct {
	EnrollmentService service.EnrollmentService
}

func NewEnrollmentController(enrollmentService service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{EnrollmentService: enrollmentService}
}

// Enroll handles POST /api/enrollments/course/:courseId. A student holds
// at most one enrollment per course.
func (ec *EnrollmentController) Enroll(c *gin.Context) {
	courseID, ok := paramUint(c, "courseId")
	if !ok {
		return
	}
	enrollment, err := ec.EnrollmentService.Enroll(utilities.CallerID(c), courseID)
	if errors.Is(err, service.ErrCourseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return
	}
	if errors.Is(err, service.ErrAlreadyEnrolled) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, enrollment)
}

// GetMyEnrollments handles GET /api/enrollments/mine.
func (ec *EnrollmentController) GetMyEnrollments(c *gin.Context) {
	enrollments, err := ec.EnrollmentService.GetEnrollmentsByStudent(utilities.CallerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, enrollments)
}

// GetMyReadingProgress handles GET /api/progress/mine.
func (ec *EnrollmentController) GetMyReadingProgress(c *gin.Context) {
	rows, err := ec.EnrollmentService.GetReadingProgressByStudent(utilities.CallerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// SaveReadingProgress handles PUT /api/progress/reading. The caller can
// only write their own progress row.
func (ec *EnrollmentController) SaveReadingProgress(c *gin.Context) {
	var req struct {
		TopicID      uint              `json:"topic_id" binding:"required"`
		TextID       *uint             `json:"text_id"`
		Completed    bool              `json:"completed"`
		LastPosition float64           `json:"last_position"`
		Score        float64           `json:"score"`
		LastMode     model.ReadingMode `json:"last_mode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	progress := &model.ReadingProgress{
		StudentID:    utilities.CallerID(c),
		TopicID:      req.TopicID,
		TextID:       req.TextID,
		Completed:    req.Completed,
		LastPosition: req.LastPosition,
		Score:        req.Score,
		LastMode:     req.LastMode,
	}
	if err := ec.EnrollmentService.SaveReadingProgress(progress); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}
