package service

import (
	"testing"

	"critico-backend/internal/model"
	"critico-backend/internal/repository"
)

func TestSubmitAttemptGradesAnswers(t *testing.T) {
	conn := setupTestDB(t)
	teacher := createUser(t, conn, "docente@critico.dev", model.RoleTeacher)
	student := createUser(t, conn, "estudiante@critico.dev", model.RoleStudent)
	course := createCourse(t, conn, "Curso", teacher.ID)
	topic := createTopic(t, conn, course.ID, "Tema")
	text := createText(t, conn, topic.ID, "Texto")

	question := &model.Question{
		TextID: text.ID,
		Prompt: "¿Cuál es la inferencia más sólida?",
		Options: []model.QuestionOption{
			{Label: "Respuesta A", IsCorrect: true},
			{Label: "Respuesta B", IsCorrect: false},
		},
	}
	if err := conn.Create(question).Error; err != nil {
		t.Fatalf("failed to create question: %v", err)
	}

	svc := NewQuestionService(repository.NewQuestionRepository())
	attempt, err := svc.SubmitAttempt(student.ID, question.ID, []SubmittedAnswer{{Value: "Respuesta A"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempt.Score != 100 {
		t.Errorf("expected score 100, got %f", attempt.Score)
	}
	if attempt.TextID != text.ID {
		t.Errorf("attempt must reference the question's text, got %d", attempt.TextID)
	}
	if len(attempt.Answers) != 1 || !attempt.Answers[0].IsCorrect {
		t.Errorf("unexpected graded answers: %+v", attempt.Answers)
	}
	if attempt.SessionID == "" {
		t.Error("attempt must carry a session id")
	}

	// A second attempt is a new row, not an update.
	if _, err := svc.SubmitAttempt(student.ID, question.ID, []SubmittedAnswer{{Value: "Respuesta B"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var count int64
	conn.Model(&model.QuestionAttempt{}).Where("question_id = ?", question.ID).Count(&count)
	if count != 2 {
		t.Errorf("expected 2 attempt rows, got %d", count)
	}
}

func TestSubmitAttemptUnknownQuestion(t *testing.T) {
	conn := setupTestDB(t)
	student := createUser(t, conn, "estudiante@critico.dev", model.RoleStudent)

	svc := NewQuestionService(repository.NewQuestionRepository())
	if _, err := svc.SubmitAttempt(student.ID, 42, nil); err != ErrQuestionNotFound {
		t.Errorf("expected ErrQuestionNotFound, got %v", err)
	}
}
