package service

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"critico-backend/internal/db"
	"critico-backend/internal/model"
)

// setupTestDB opens a fresh in-memory database, migrates the schema and
// points the repositories at it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = conn.AutoMigrate(
		&model.User{}, &model.Course{}, &model.Topic{}, &model.Text{},
		&model.Enrollment{}, &model.ReadingProgress{},
		&model.Question{}, &model.QuestionAttempt{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	db.SetDB(conn)
	return conn
}

func createUser(t *testing.T, conn *gorm.DB, email, role string) *model.User {
	t.Helper()
	user := &model.User{Email: email, Password: "x", Role: role}
	if err := conn.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func createCourse(t *testing.T, conn *gorm.DB, title string, ownerID uint) *model.Course {
	t.Helper()
	course := &model.Course{Title: title, OwnerID: ownerID}
	if err := conn.Create(course).Error; err != nil {
		t.Fatalf("failed to create course: %v", err)
	}
	return course
}

func createTopic(t *testing.T, conn *gorm.DB, courseID uint, title string) *model.Topic {
	t.Helper()
	topic := &model.Topic{CourseID: courseID, Title: title, Order: 1, IsPublished: true}
	if err := conn.Create(topic).Error; err != nil {
		t.Fatalf("failed to create topic: %v", err)
	}
	return topic
}

func createText(t *testing.T, conn *gorm.DB, topicID uint, title string) *model.Text {
	t.Helper()
	text := &model.Text{TopicID: topicID, Title: title, Difficulty: "intermediate", Length: "medium"}
	if err := conn.Create(text).Error; err != nil {
		t.Fatalf("failed to create text: %v", err)
	}
	return text
}
