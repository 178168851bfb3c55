package service

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"critico-backend/internal/model"
)

// BuildCourseMetricsReport renders a course's metrics as a one-page PDF
// for teachers who want an offline copy of the dashboard.
func BuildCourseMetricsReport(course *model.Course, metrics *CourseMetrics) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Informe del curso: %s", course.Title))
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 8, "Matriculas")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(60, 7, fmt.Sprintf("Promedio de avance: %.1f%%", metrics.EnrollmentMetrics.AverageCompletion))
	pdf.Ln(7)
	levels := "ninguno"
	if len(metrics.EnrollmentMetrics.LevelDistribution) > 0 {
		levels = ""
		for i, l := range metrics.EnrollmentMetrics.LevelDistribution {
			if i > 0 {
				levels += ", "
			}
			levels += l
		}
	}
	pdf.Cell(60, 7, "Niveles: "+levels)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 8, "Preguntas por texto")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	if len(metrics.QuestionMetrics) == 0 {
		pdf.Cell(60, 7, "Sin intentos registrados")
		pdf.Ln(7)
	}
	for _, qm := range metrics.QuestionMetrics {
		pdf.Cell(120, 7, fmt.Sprintf("Texto %d: promedio %.1f sobre %d intentos", qm.TextID, qm.AverageScore, qm.Attempts))
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}
