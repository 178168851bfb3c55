package main

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"critico-backend/internal/db"
	"critico-backend/internal/model"
	"critico-backend/internal/repository"
	"critico-backend/internal/service"
)

// seedDemoData creates a demo teacher with one course, topic, text and
// question so a fresh install has something to click through. Safe to run
// once; it bails out if the demo teacher already exists.
func seedDemoData() {
	userRepo := repository.NewUserRepository()
	if _, err := userRepo.GetUserByEmail("docente@critico.dev"); err == nil {
		log.Println("seed: demo data already present, skipping")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("critico-demo"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("seed: failed to hash password: %v", err)
	}
	teacher := &model.User{
		Email:    "docente@critico.dev",
		Password: string(hashed),
		Name:     "Docente Demo",
		Role:     model.RoleTeacher,
	}
	if err := userRepo.CreateUser(teacher); err != nil {
		log.Fatalf("seed: failed to create teacher: %v", err)
	}

	course := &model.Course{
		Title:       "Pensamiento Crítico I",
		Description: "Fundamentos de lectura crítica",
		OwnerID:     teacher.ID,
	}
	if err := db.GetDB().Create(course).Error; err != nil {
		log.Fatalf("seed: failed to create course: %v", err)
	}

	topicService := service.NewTopicService(
		repository.NewTopicRepository(),
		repository.NewCourseRepository(),
		repository.NewReadingProgressRepository(),
	)
	topic := &model.Topic{
		CourseID:    course.ID,
		Title:       "Introducción al análisis de argumentos",
		Order:       1,
		Objectives:  []string{"inference"},
		IsPublished: true,
	}
	if err := topicService.CreateTopic(topic); err != nil {
		log.Fatalf("seed: failed to create topic: %v", err)
	}

	text := &model.Text{
		TopicID:       topic.ID,
		Title:         "Lectura crítica de editoriales",
		Content:       "Contenido para analizar sesgos autorales.",
		Source:        "Manual docente",
		EstimatedTime: 15,
		Difficulty:    "intermediate",
		Length:        "medium",
		Tags:          []string{"editorial"},
	}
	if err := db.GetDB().Create(text).Error; err != nil {
		log.Fatalf("seed: failed to create text: %v", err)
	}

	question := &model.Question{
		TextID: text.ID,
		Skill:  "inferencial",
		Type:   "multiple-choice",
		Prompt: "¿Cuál es la inferencia más sólida?",
		Options: []model.QuestionOption{
			{Label: "Respuesta A", IsCorrect: true},
			{Label: "Respuesta B", IsCorrect: false},
		},
		FeedbackTemplate: "Revisa las evidencias presentadas.",
	}
	if err := db.GetDB().Create(question).Error; err != nil {
		log.Fatalf("seed: failed to create question: %v", err)
	}

	log.Printf("seed: demo data created at %s", time.Now().Format(time.RFC3339))
}
