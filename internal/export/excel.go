package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"go-cv-review-backend/internal/domain"
)

// Workbook renders one review view as an xlsx file: a summary sheet with the
// band counts and a candidates sheet with the filtered, sorted rows.
func Workbook(result *domain.ReviewResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "Summary"
	candidatesSheet := "Candidates"

	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(candidatesSheet); err != nil {
		return nil, fmt.Errorf("export: failed to create sheet: %w", err)
	}

	if err := writeSummarySheet(f, summarySheet, result); err != nil {
		return nil, fmt.Errorf("export: failed to write summary: %w", err)
	}
	if err := writeCandidatesSheet(f, candidatesSheet, result.Records); err != nil {
		return nil, fmt.Errorf("export: failed to write candidates: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export: failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, sheet string, result *domain.ReviewResult) error {
	f.SetColWidth(sheet, "A", "A", 22)
	f.SetColWidth(sheet, "B", "B", 30)

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	lines := []struct {
		label string
		value interface{}
	}{
		{"Lot", result.Lot},
		{"View", string(result.View)},
		{"Total", result.Stats.Total},
		{"Usable", result.Stats.Usable},
		{"Unusable", result.Stats.Unusable},
		{"Band A", result.Stats.A},
		{"Band B", result.Stats.B},
		{"Band C", result.Stats.C},
		{"To review", result.Stats.Review},
		{"Exported rows", len(result.Records)},
	}

	for i, line := range lines {
		row := i + 1
		labelCell := fmt.Sprintf("A%d", row)
		f.SetCellValue(sheet, labelCell, line.label)
		f.SetCellStyle(sheet, labelCell, labelCell, labelStyle)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), line.value)
	}
	return nil
}

var candidateHeaders = []string{
	"ID", "Name", "File", "Band", "Score", "Usable",
	"Degree", "Field", "Experience (years)", "Last job", "Last company",
	"CV language", "English level", "Skills", "Notes",
}

func writeCandidatesSheet(f *excelize.File, sheet string, rows []domain.ReviewRow) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	for i, header := range candidateHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, row := range rows {
		values := []interface{}{
			row.ID,
			row.FullName,
			row.FileName,
			string(row.Band),
			cellOrEmpty(row.Score),
			row.Usable,
			row.DegreeLevel,
			row.FieldOfStudy,
			cellOrEmptyFloat(row.ExperienceYears),
			row.LastJobTitle,
			row.LastCompany,
			row.CVLanguage,
			row.EnglishLevel,
			strings.Join(row.Skills, ", "),
			row.Notes,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			f.SetCellValue(sheet, cell, v)
		}
	}
	return nil
}

func cellOrEmpty(v *int) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func cellOrEmptyFloat(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
