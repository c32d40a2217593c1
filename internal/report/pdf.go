package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// RenderPDF lays out the admin consumption report: a centered title, then
// per meal the single most and least consumed dish.
func RenderPDF(title string, data []MealExtremes) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(10)

	for _, ex := range data {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(190, 10, fmt.Sprintf("%s:", ex.Meal), "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(190, 10,
			fmt.Sprintf("Most Consumed: %s - %.2f kg", ex.MostDish, ex.MostKg),
			"", 1, "L", false, 0, "")
		pdf.CellFormat(190, 10,
			fmt.Sprintf("Least Consumed: %s - %.2f kg", ex.LeastDish, ex.LeastKg),
			"", 1, "L", false, 0, "")
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
