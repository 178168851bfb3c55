package service

import (
	"testing"
	"time"

	"critico-backend/internal/model"
)

func TestGetStudentProgressEmpty(t *testing.T) {
	conn := setupTestDB(t)
	student := createUser(t, conn, "vacio@critico.dev", model.RoleStudent)

	progress, err := GetStudentProgress(conn, student.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(progress.Enrollments) != 0 {
		t.Errorf("expected no enrollments, got %d", len(progress.Enrollments))
	}
	if len(progress.Texts) != 0 {
		t.Errorf("expected no texts, got %d", len(progress.Texts))
	}
	if progress.Enrollments == nil || progress.Texts == nil {
		t.Error("expected empty slices, got nil")
	}
}

func TestGetStudentProgressJoinsCoursesAndTexts(t *testing.T) {
	conn := setupTestDB(t)
	teacher := createUser(t, conn, "docente@critico.dev", model.RoleTeacher)
	student := createUser(t, conn, "estudiante@critico.dev", model.RoleStudent)
	course := createCourse(t, conn, "Evaluación crítica", teacher.ID)
	topic := createTopic(t, conn, course.ID, "Interpretación de textos")
	text := createText(t, conn, topic.ID, "Lectura crítica de editoriales")

	lastAccess := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	enrollment := &model.Enrollment{
		StudentID: student.ID,
		CourseID:  course.ID,
		Progress: model.EnrollmentProgress{
			Completion:   60,
			Level:        "intermedio",
			LastAccessAt: &lastAccess,
		},
	}
	if err := conn.Create(enrollment).Error; err != nil {
		t.Fatalf("failed to create enrollment: %v", err)
	}

	row := &model.ReadingProgress{
		StudentID:    student.ID,
		TopicID:      topic.ID,
		TextID:       &text.ID,
		Completed:    true,
		LastPosition: 50,
		Score:        85,
		LastMode:     model.ReadingMode{Theme: "dark", FontSize: "large"},
	}
	if err := conn.Create(row).Error; err != nil {
		t.Fatalf("failed to create reading progress: %v", err)
	}

	progress, err := GetStudentProgress(conn, student.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(progress.Enrollments) != 1 {
		t.Fatalf("expected 1 enrollment, got %d", len(progress.Enrollments))
	}
	e := progress.Enrollments[0]
	if e.CourseID != course.ID || e.CourseTitle != "Evaluación crítica" {
		t.Errorf("unexpected enrollment summary: %+v", e)
	}
	if e.Progress.Completion != 60 || e.Progress.Level != "intermedio" {
		t.Errorf("progress subdocument not carried verbatim: %+v", e.Progress)
	}

	if len(progress.Texts) != 1 {
		t.Fatalf("expected 1 text summary, got %d", len(progress.Texts))
	}
	ts := progress.Texts[0]
	if ts.TextID != text.ID || ts.Title != "Lectura crítica de editoriales" {
		t.Errorf("unexpected text summary: %+v", ts)
	}
	if !ts.Completed || ts.LastPosition != 50 || ts.Score != 85 {
		t.Errorf("unexpected reading fields: %+v", ts)
	}
}

func TestGetStudentProgressOmitsDanglingReferences(t *testing.T) {
	conn := setupTestDB(t)
	teacher := createUser(t, conn, "docente@critico.dev", model.RoleTeacher)
	student := createUser(t, conn, "estudiante@critico.dev", model.RoleStudent)
	course := createCourse(t, conn, "Curso vivo", teacher.ID)
	topic := createTopic(t, conn, course.ID, "Tema")
	text := createText(t, conn, topic.ID, "Texto vivo")

	if err := conn.Create(&model.Enrollment{StudentID: student.ID, CourseID: course.ID}).Error; err != nil {
		t.Fatalf("failed to create enrollment: %v", err)
	}
	ghostCourseID := course.ID + 100
	if err := conn.Create(&model.Enrollment{StudentID: student.ID, CourseID: ghostCourseID}).Error; err != nil {
		t.Fatalf("failed to create dangling enrollment: %v", err)
	}

	ghostTextID := text.ID + 100
	rows := []model.ReadingProgress{
		{StudentID: student.ID, TopicID: topic.ID, TextID: &text.ID, Score: 70},
		{StudentID: student.ID, TopicID: topic.ID, TextID: &ghostTextID, Score: 10},
		{StudentID: student.ID, TopicID: topic.ID, TextID: nil, Score: 5}, // topic-level row, no text
	}
	for i := range rows {
		if err := conn.Create(&rows[i]).Error; err != nil {
			t.Fatalf("failed to create reading progress: %v", err)
		}
	}

	progress, err := GetStudentProgress(conn, student.ID)
	if err != nil {
		t.Fatalf("dangling references must degrade, not fail: %v", err)
	}
	if len(progress.Enrollments) != 1 {
		t.Errorf("expected dangling enrollment omitted, got %d entries", len(progress.Enrollments))
	}
	if len(progress.Texts) != 1 {
		t.Errorf("expected only the resolvable text row, got %d entries", len(progress.Texts))
	}
}
