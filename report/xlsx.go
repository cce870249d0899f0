// Package report renders monthly summaries to spreadsheet form.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/solari/vacation-engine/calendar"
)

var headers = []string{
	"Month",
	"Vacation used", "Vacation accrued", "Vacation residual",
	"PTO used", "PTO accrued", "PTO residual",
}

// SummaryXLSX renders the monthly summary table for a year as an XLSX
// workbook and returns its bytes.
func SummaryXLSX(year int, summaries []calendar.MonthlySummary) ([]byte, error) {
	xlsx := excelize.NewFile()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "vacation-engine",
		DocSecurity: 2,
	})

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())

	// Set column widths
	_ = xlsx.SetColWidth(sheet, "A", "A", 12)
	_ = xlsx.SetColWidth(sheet, "B", "G", 18)

	headerStyle, _ := xlsx.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border: []excelize.Border{
			{Type: "bottom", Style: 1, Color: "000000"},
		},
	})
	numberStyle, _ := xlsx.NewStyle(&excelize.Style{
		CustomNumFmt: strPtr("0.00"),
	})

	for col, h := range headers {
		_ = xlsx.SetCellValue(sheet, cell(col, 1), h)
	}
	_ = xlsx.SetCellStyle(sheet, cell(0, 1), cell(len(headers)-1, 1), headerStyle)

	for i, s := range summaries {
		row := i + 2
		_ = xlsx.SetCellValue(sheet, cell(0, row), s.Month.String())
		_ = xlsx.SetCellValue(sheet, cell(1, row), s.VacationUsed.InexactFloat64())
		_ = xlsx.SetCellValue(sheet, cell(2, row), s.VacationAccrued.InexactFloat64())
		_ = xlsx.SetCellValue(sheet, cell(3, row), s.VacationResidual.InexactFloat64())
		_ = xlsx.SetCellValue(sheet, cell(4, row), s.PTOUsed.InexactFloat64())
		_ = xlsx.SetCellValue(sheet, cell(5, row), s.PTOAccrued.InexactFloat64())
		_ = xlsx.SetCellValue(sheet, cell(6, row), s.PTOResidual.InexactFloat64())
		_ = xlsx.SetCellStyle(sheet, cell(1, row), cell(6, row), numberStyle)
	}

	_ = xlsx.SetSheetName(sheet, fmt.Sprintf("Summary %d", year))

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cell(col, row int) string {
	return fmt.Sprintf("%c%d", 'A'+col, row)
}

func strPtr(s string) *string { return &s }
