package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"critico-backend/internal/db"
	"critico-backend/internal/model"
	"critico-backend/internal/service"
)

// ProgressController serves the teacher-facing dashboards. Role checks
// run in middleware before any handler here executes.
type ProgressController struct {
	CourseService service.CourseService
}

func NewProgressController(courseService service.CourseService) *ProgressController {
	return &ProgressController{CourseService: courseService}
}

// GetStudentProgress handles GET /api/progress/student/:studentId.
func (pc *ProgressController) GetStudentProgress(c *gin.Context) {
	studentID, ok := paramUint(c, "studentId")
	if !ok {
		return
	}
	progress, err := service.GetStudentProgress(db.GetDB(), studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}

// GetCourseMetrics handles GET /api/progress/course/:courseId/metrics.
// Only the owning teacher may pull a course's metrics.
func (pc *ProgressController) GetCourseMetrics(c *gin.Context) {
	course, ok := pc.ownedCourse(c)
	if !ok {
		return
	}
	metrics, err := service.GetCourseMetrics(db.GetDB(), course.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// DownloadCourseReport handles GET /api/progress/course/:courseId/report
// and streams the metrics as a PDF.
func (pc *ProgressController) DownloadCourseReport(c *gin.Context) {
	course, ok := pc.ownedCourse(c)
	if !ok {
		return
	}
	metrics, err := service.GetCourseMetrics(db.GetDB(), course.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	pdfContent, err := service.BuildCourseMetricsReport(course, metrics)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=course_%d_report.pdf", course.ID))
	c.Data(http.StatusOK, "application/pdf", pdfContent)
}

func (pc *ProgressController) ownedCourse(c *gin.Context) (*model.Course, bool) {
	courseID, ok := paramUint(c, "courseId")
	if !ok {
		return nil, false
	}
	course, err := pc.CourseService.GetCourse(courseID)
	if errors.Is(err, service.ErrCourseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	if !requireOwnership(c, course.OwnerID) {
		return nil, false
	}
	return course, true
}
