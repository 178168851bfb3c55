package service

import (
	"fmt"

	"gorm.io/gorm"

	"critico-backend/internal/model"
)

// EnrollmentSummary is one course a student is enrolled in, with the
// course title resolved and the embedded progress carried verbatim.
type EnrollmentSummary struct {
	CourseID    uint                     `json:"courseId"`
	CourseTitle string                   `json:"courseTitle"`
	Progress    model.EnrollmentProgress `json:"progress"`
}

// TextProgressSummary is a student's reading state on one text.
type TextProgressSummary struct {
	TextID       uint    `json:"textId"`
	Title        string  `json:"title"`
	Completed    bool    `json:"completed"`
	LastPosition float64 `json:"lastPosition"`
	Score        float64 `json:"score"`
}

// StudentProgress is the teacher-facing dashboard view for one student.
type StudentProgress struct {
	Enrollments []EnrollmentSummary   `json:"enrollments"`
	Texts       []TextProgressSummary `json:"texts"`
}

// GetStudentProgress joins the student's enrollments with course metadata
// and their reading progress with text metadata. Rows whose referenced
// course or text no longer exists are omitted rather than failing the
// whole request. A student with no records gets empty lists, not an error.
func GetStudentProgress(db *gorm.DB, studentID uint) (*StudentProgress, error) {
	result := &StudentProgress{
		Enrollments: []EnrollmentSummary{},
		Texts:       []TextProgressSummary{},
	}

	var enrollments []model.Enrollment
	if err := db.Where("student_id = ?", studentID).Find(&enrollments).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch enrollments: %w", err)
	}

	if len(enrollments) > 0 {
		courseIDs := make([]uint, 0, len(enrollments))
		for _, e := range enrollments {
			courseIDs = append(courseIDs, e.CourseID)
		}
		var courses []model.Course
		if err := db.Where("id IN ?", courseIDs).Find(&courses).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch courses: %w", err)
		}
		coursesByID := make(map[uint]model.Course, len(courses))
		for _, c := range courses {
			coursesByID[c.ID] = c
		}

		for _, e := range enrollments {
			course, ok := coursesByID[e.CourseID]
			if !ok {
				// Course was deleted out from under the enrollment.
				continue
			}
			result.Enrollments = append(result.Enrollments, EnrollmentSummary{
				CourseID:    course.ID,
				CourseTitle: course.Title,
				Progress:    e.Progress,
			})
		}
	}

	var progressRows []model.ReadingProgress
	if err := db.Where("student_id = ? AND text_id IS NOT NULL", studentID).Find(&progressRows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reading progress: %w", err)
	}

	if len(progressRows) > 0 {
		textIDs := make([]uint, 0, len(progressRows))
		for _, p := range progressRows {
			textIDs = append(textIDs, *p.TextID)
		}
		var texts []model.Text
		if err := db.Where("id IN ?", textIDs).Find(&texts).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch texts: %w", err)
		}
		textsByID := make(map[uint]model.Text, len(texts))
		for _, t := range texts {
			textsByID[t.ID] = t
		}

		for _, p := range progressRows {
			text, ok := textsByID[*p.TextID]
			if !ok {
				continue
			}
			result.Texts = append(result.Texts, TextProgressSummary{
				TextID:       text.ID,
				Title:        text.Title,
				Completed:    p.Completed,
				LastPosition: p.LastPosition,
				Score:        p.Score,
			})
		}
	}

	return result, nil
}
