package service

import (
	"testing"

	"critico-backend/internal/model"
	"critico-backend/internal/repository"
)

func newTopicService() TopicService {
	return NewTopicService(
		repository.NewTopicRepository(),
		repository.NewCourseRepository(),
		repository.NewReadingProgressRepository(),
	)
}

func TestCreateTopicIncrementsCounter(t *testing.T) {
	conn := setupTestDB(t)
	teacher := createUser(t, conn, "docente@critico.dev", model.RoleTeacher)
	course := createCourse(t, conn, "Curso", teacher.ID)

	svc := newTopicService()
	topic := &model.Topic{CourseID: course.ID, Title: "Tema 1", Order: 1}
	if err := svc.CreateTopic(topic); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var reloaded model.Course
	if err := conn.First(&reloaded, course.ID).Error; err != nil {
		t.Fatalf("failed to reload course: %v", err)
	}
	if reloaded.TopicCount != 1 {
		t.Errorf("expected topic count 1, got %d", reloaded.TopicCount)
	}
}

func TestDeleteTopicCascades(t *testing.T) {
	conn := setupTestDB(t)
	teacher := createUser(t, conn, "docente@critico.dev", model.RoleTeacher)
	student := createUser(t, conn, "estudiante@critico.dev", model.RoleStudent)
	course := createCourse(t, conn, "Curso", teacher.ID)

	svc := newTopicService()
	topic := &model.Topic{CourseID: course.ID, Title: "Tema", Order: 1}
	if err := svc.CreateTopic(topic); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		row := model.ReadingProgress{StudentID: student.ID, TopicID: topic.ID, Score: float64(i * 10)}
		if err := conn.Create(&row).Error; err != nil {
			t.Fatalf("failed to create reading progress: %v", err)
		}
	}

	if err := svc.DeleteTopic(topic.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var topicCount int64
	conn.Model(&model.Topic{}).Where("id = ?", topic.ID).Count(&topicCount)
	if topicCount != 0 {
		t.Error("topic still present after delete")
	}

	var progressCount int64
	conn.Model(&model.ReadingProgress{}).Where("topic_id = ?", topic.ID).Count(&progressCount)
	if progressCount != 0 {
		t.Errorf("expected 0 reading progress rows after cascade, got %d", progressCount)
	}

	var reloaded model.Course
	if err := conn.First(&reloaded, course.ID).Error; err != nil {
		t.Fatalf("failed to reload course: %v", err)
	}
	if reloaded.TopicCount != 0 {
		t.Errorf("expected topic count back to 0, got %d", reloaded.TopicCount)
	}
}

func TestDeleteTopicRetryIsIdempotent(t *testing.T) {
	conn := setupTestDB(t)
	teacher := createUser(t, conn, "docente@critico.dev", model.RoleTeacher)
	course := createCourse(t, conn, "Curso", teacher.ID)

	svc := newTopicService()
	topic := &model.Topic{CourseID: course.ID, Title: "Tema", Order: 1}
	if err := svc.CreateTopic(topic); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeleteTopic(topic.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	// Retrying the delete is a no-op, not an error, and must not push the
	// counter below zero.
	if err := svc.DeleteTopic(topic.ID); err != nil {
		t.Fatalf("retry must be a no-op, got: %v", err)
	}

	var reloaded model.Course
	if err := conn.First(&reloaded, course.ID).Error; err != nil {
		t.Fatalf("failed to reload course: %v", err)
	}
	if reloaded.TopicCount != 0 {
		t.Errorf("counter must never go negative, got %d", reloaded.TopicCount)
	}
}

func TestCourseOwnerResolvesChain(t *testing.T) {
	conn := setupTestDB(t)
	teacher := createUser(t, conn, "docente@critico.dev", model.RoleTeacher)
	course := createCourse(t, conn, "Curso", teacher.ID)
	topic := createTopic(t, conn, course.ID, "Tema")

	svc := newTopicService()
	courseID, ownerID, err := svc.CourseOwner(topic.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if courseID != course.ID || ownerID != teacher.ID {
		t.Errorf("expected (%d, %d), got (%d, %d)", course.ID, teacher.ID, courseID, ownerID)
	}

	if _, _, err := svc.CourseOwner(topic.ID + 99); err != ErrTopicNotFound {
		t.Errorf("expected ErrTopicNotFound, got %v", err)
	}
}
