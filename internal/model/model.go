package model

import "time"

// Roles a user can hold. Assigned at registration, immutable afterwards.
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"not null;unique"`
	Password  string    `json:"password,omitempty"` // Exclude from JSON responses
	Name      string    `json:"name"`
	Role      string    `json:"role" gorm:"not null;default:'student'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Course struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	OwnerID     uint   `json:"owner_id" gorm:"not null;index"`
	// Cached count of live topics; only the topic create/delete paths touch it.
	TopicCount int       `json:"topic_count" gorm:"default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Topic struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CourseID    uint      `json:"course_id" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Order       int       `json:"order" gorm:"column:position"`
	Objectives  []string  `json:"objectives" gorm:"serializer:json"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Text struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	TopicID       uint      `json:"topic_id" gorm:"not null;index"`
	Title         string    `json:"title" gorm:"not null"`
	Content       string    `json:"content"`
	Source        string    `json:"source"`
	EstimatedTime int       `json:"estimated_time"` // minutes
	Difficulty    string    `json:"difficulty"`
	Length        string    `json:"length"`
	Tags          []string  `json:"tags" gorm:"serializer:json"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// EnrollmentProgress is a student's standing in a course, independent of
// progress on individual texts.
type EnrollmentProgress struct {
	Completion   float64    `json:"completion"` // 0-100
	Level        string     `json:"level"`
	LastAccessAt *time.Time `json:"last_access_at"`
}

type Enrollment struct {
	ID        uint               `json:"id" gorm:"primaryKey"`
	StudentID uint               `json:"student_id" gorm:"not null;uniqueIndex:idx_student_course"`
	CourseID  uint               `json:"course_id" gorm:"not null;uniqueIndex:idx_student_course"`
	Progress  EnrollmentProgress `json:"progress" gorm:"embedded;embeddedPrefix:progress_"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ReadingMode captures the reader settings a student last used.
type ReadingMode struct {
	Theme    string `json:"theme"`
	FontSize string `json:"font_size"`
}

type ReadingProgress struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	StudentID    uint        `json:"student_id" gorm:"not null;index"`
	TopicID      uint        `json:"topic_id" gorm:"not null;index"`
	TextID       *uint       `json:"text_id" gorm:"index"`
	Completed    bool        `json:"completed"`
	LastPosition float64     `json:"last_position"`
	Score        float64     `json:"score"`
	LastMode     ReadingMode `json:"last_mode" gorm:"embedded;embeddedPrefix:mode_"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// QuestionOption is one selectable answer; by convention exactly one is correct.
type QuestionOption struct {
	Label     string `json:"label"`
	IsCorrect bool   `json:"is_correct"`
}

type Question struct {
	ID               uint             `json:"id" gorm:"primaryKey"`
	TextID           uint             `json:"text_id" gorm:"not null;index"`
	Skill            string           `json:"skill"`
	Type             string           `json:"type"`
	Prompt           string           `json:"prompt" gorm:"not null"`
	Options          []QuestionOption `json:"options" gorm:"serializer:json"`
	FeedbackTemplate string           `json:"feedback_template"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// AttemptAnswer is one submitted answer within an attempt.
type AttemptAnswer struct {
	Value     string `json:"value"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionAttempt struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	SessionID   string          `json:"session_id" gorm:"index"`
	StudentID   uint            `json:"student_id" gorm:"not null;index"`
	QuestionID  uint            `json:"question_id" gorm:"not null;index"`
	TextID      uint            `json:"text_id" gorm:"not null;index"`
	Answers     []AttemptAnswer `json:"answers" gorm:"serializer:json"`
	Score       float64         `json:"score"`
	CompletedAt time.Time       `json:"completed_at"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
