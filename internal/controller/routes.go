package controller

import (
	"github.com/gin-gonic/gin"

	"critico-backend/internal/service"
	"critico-backend/utilities"
)

// RegisterRoutes registers all route groups and their endpoints. Role
// guards sit on the groups; ownership guards live in the handlers because
// they need the target resolved first.
func RegisterRoutes(r *gin.Engine,
	tokenService *utilities.TokenService,
	authService service.AuthService,
	userService service.UserService,
	courseService service.CourseService,
	topicService service.TopicService,
	textService service.TextService,
	questionService service.QuestionService,
	enrollmentService service.EnrollmentService,
) {
	api := r.Group("/api")

	// Auth routes (open).
	authCtrl := NewAuthController(authService, tokenService)
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", authCtrl.Register)
		authRoutes.POST("/login", authCtrl.Login)
	}

	// User routes.
	userCtrl := NewUserController(userService)
	api.GET("/users", utilities.RequireTeacher(), userCtrl.GetAllUsers)

	// Course routes.
	courseCtrl := NewCourseController(courseService)
	courseRoutes := api.Group("/courses")
	{
		courseRoutes.POST("", utilities.RequireTeacher(), courseCtrl.CreateCourse)
		courseRoutes.GET("", utilities.RequireTeacher(), courseCtrl.GetMyCourses)
		courseRoutes.GET("/:courseId", courseCtrl.GetCourse)
		courseRoutes.PATCH("/:courseId", utilities.RequireTeacher(), courseCtrl.UpdateCourse)
		courseRoutes.DELETE("/:courseId", utilities.RequireTeacher(), courseCtrl.DeleteCourse)
	}

	// Topic routes.
	topicCtrl := NewTopicController(topicService, courseService)
	topicRoutes := api.Group("/topics")
	{
		topicRoutes.POST("/course/:courseId", utilities.RequireTeacher(), topicCtrl.CreateTopic)
		topicRoutes.GET("/course/:courseId", topicCtrl.GetTopicsByCourse)
		topicRoutes.PATCH("/:topicId", utilities.RequireTeacher(), topicCtrl.UpdateTopic)
		topicRoutes.DELETE("/:topicId", utilities.RequireTeacher(), topicCtrl.DeleteTopic)
	}

	// Text routes.
	textCtrl := NewTextController(textService, topicService)
	textRoutes := api.Group("/texts")
	{
		textRoutes.POST("/topic/:topicId", utilities.RequireTeacher(), textCtrl.CreateText)
		textRoutes.GET("/topic/:topicId", textCtrl.GetTextsByTopic)
		textRoutes.GET("/search", textCtrl.SearchTexts)
		textRoutes.PATCH("/:textId", utilities.RequireTeacher(), textCtrl.UpdateText)
		textRoutes.DELETE("/:textId", utilities.RequireTeacher(), textCtrl.DeleteText)
	}

	// Question and attempt routes.
	questionCtrl := NewQuestionController(questionService, textService)
	questionRoutes := api.Group("/questions")
	{
		questionRoutes.POST("/text/:textId", utilities.RequireTeacher(), questionCtrl.CreateQuestion)
		questionRoutes.GET("/text/:textId", questionCtrl.GetQuestionsByText)
		questionRoutes.DELETE("/:questionId", utilities.RequireTeacher(), questionCtrl.DeleteQuestion)
	}
	api.POST("/attempts", questionCtrl.SubmitAttempt)
	api.GET("/attempts/mine", questionCtrl.GetMyAttempts)

	// Enrollment routes.
	enrollmentCtrl := NewEnrollmentController(enrollmentService)
	enrollmentRoutes := api.Group("/enrollments")
	{
		enrollmentRoutes.POST("/course/:courseId", enrollmentCtrl.Enroll)
		enrollmentRoutes.GET("/mine", enrollmentCtrl.GetMyEnrollments)
	}

	// Progress routes. The dashboards are teacher-only; the role check
	// fires before the path ids are even parsed.
	progressCtrl := NewProgressController(courseService)
	progressRoutes := api.Group("/progress")
	{
		progressRoutes.PUT("/reading", enrollmentCtrl.SaveReadingProgress)
		progressRoutes.GET("/mine", enrollmentCtrl.GetMyReadingProgress)
		progressRoutes.GET("/student/:studentId", utilities.RequireTeacher(), progressCtrl.GetStudentProgress)
		progressRoutes.GET("/course/:courseId/metrics", utilities.RequireTeacher(), progressCtrl.GetCourseMetrics)
		progressRoutes.GET("/course/:courseId/report", utilities.RequireTeacher(), progressCtrl.DownloadCourseReport)
	}
}
