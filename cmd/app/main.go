package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"critico-backend/internal/config"
	"critico-backend/internal/controller"
	"critico-backend/internal/db"
	"critico-backend/internal/model"
	"critico-backend/internal/repository"
	"critico-backend/internal/service"
	"critico-backend/pkg/middleware"
	"critico-backend/utilities"
)

func main() {
	printStartUpBanner()

	// .env carries the signing secret and DB password for local runs.
	_ = godotenv.Load()

	// Load XML configuration from file.
	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	utilities.SetupLogging("logs")

	// Initialize DB using the loaded config.
	if err := db.InitDBFromConfig(cfg); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	// Run migrations.
	if cfg.DB.Initialize {
		err := db.GetDB().AutoMigrate(
			&model.User{}, &model.Course{}, &model.Topic{}, &model.Text{},
			&model.Enrollment{}, &model.ReadingProgress{},
			&model.Question{}, &model.QuestionAttempt{},
		)
		if err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		seedDemoData()
		return
	}

	tokenService := utilities.NewTokenService(
		cfg.Authentication.Secret(),
		time.Duration(cfg.Authentication.TokenExpiryMinutes)*time.Minute,
	)

	// Create repositories.
	userRepo := repository.NewUserRepository()
	courseRepo := repository.NewCourseRepository()
	topicRepo := repository.NewTopicRepository()
	textRepo := repository.NewTextRepository()
	enrollmentRepo := repository.NewEnrollmentRepository()
	progressRepo := repository.NewReadingProgressRepository()
	questionRepo := repository.NewQuestionRepository()

	// Create services.
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	courseService := service.NewCourseService(courseRepo)
	topicService := service.NewTopicService(topicRepo, courseRepo, progressRepo)
	textService := service.NewTextService(textRepo, topicRepo, courseRepo)
	questionService := service.NewQuestionService(questionRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, progressRepo, courseRepo, topicRepo)

	registerEventListeners()

	// Initialize Gin router.
	r := gin.Default()

	// CORS configuration.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.RequestDump {
		r.Use(middleware.RequestDumpMiddleware())
	}
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}
	r.Use(utilities.AuthMiddleware(tokenService))

	controller.RegisterRoutes(r,
		tokenService,
		authService,
		userService,
		courseService,
		topicService,
		textService,
		questionService,
		enrollmentService,
	)

	// Start server on the host and port specified in the XML config.
	addr := fmt.Sprintf("%s:%d", cfg.Context.Host, cfg.Context.Port)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func registerEventListeners() {
	utilities.GlobalEventBus.Subscribe(utilities.EventTopicDeleted, func(data interface{}) {
		if topicID, ok := data.(uint); ok {
			utilities.Info("topic %d removed with its reading progress", topicID)
		}
	})
	utilities.GlobalEventBus.Subscribe(utilities.EventAttemptRecorded, func(data interface{}) {
		if attemptID, ok := data.(uint); ok {
			utilities.Info("question attempt %d recorded", attemptID)
		}
	})
}

func printStartUpBanner() {
	myFigure := figure.NewFigure("CRITICO", "", true)
	myFigure.Print()

	fmt.Println("======================================================")
	fmt.Printf("CRITICO API (v%s)\n\n", "1.0.0")
}
