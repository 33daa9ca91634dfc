// Package pdf renders spending reports as PDF documents.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
)

// BuildExpenseReport renders the summary and monthly breakdown into a
// single-column A4 document and returns the raw PDF bytes.
func BuildExpenseReport(summary *domain.ReportSummary, breakdown domain.MonthlyBreakdown) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")

	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	sectionTitle := func(title string) {
		doc.SetFont("Arial", "B", 12)
		doc.SetTextColor(0, 0, 0)
		doc.Cell(0, 8, tr(title))
		doc.Ln(7)
		doc.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		doc.Line(doc.GetX(), doc.GetY(), doc.GetX()+190, doc.GetY())
		doc.Ln(4)
	}

	doc.AddPage()

	doc.SetFillColor(40, 40, 40)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Arial", "B", 14)
	doc.CellFormat(0, 12, tr(fmt.Sprintf("  Expense Report (%s)", summary.BaseCurrency)), "", 1, "L", true, 0, "")
	doc.Ln(10)

	sectionTitle("Summary")
	doc.SetFont("Arial", "", 10)
	doc.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	summaryRows := []struct {
		label string
		value string
	}{
		{"Total spent", summary.TotalSpent.StringFixed(2)},
		{"Average expense", summary.AverageExpense.StringFixed(2)},
		{"Largest expense", summary.MaxExpense.StringFixed(2)},
	}
	for _, row := range summaryRows {
		doc.CellFormat(95, 7, tr(row.label), "B", 0, "L", false, 0, "")
		doc.CellFormat(95, 7, tr(row.value+" "+summary.BaseCurrency), "B", 1, "R", false, 0, "")
	}
	doc.Ln(8)

	sectionTitle("Monthly Breakdown")
	doc.SetFont("Arial", "", 10)
	doc.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	if len(breakdown) == 0 {
		doc.MultiCell(190, 5, tr("No expenses recorded."), "", "L", false)
	}
	for _, month := range breakdown.SortedKeys() {
		// Leave room for the footer margin before starting a new row.
		if doc.GetY() > 270 {
			doc.AddPage()
		}
		doc.CellFormat(95, 7, tr(month), "B", 0, "L", false, 0, "")
		doc.CellFormat(95, 7, tr(breakdown[month].StringFixed(2)+" "+summary.BaseCurrency), "B", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}
