package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Time Clock"

// XLSX builds a workbook with the same table as the printable page.
func XLSX(doc Document) (*bytes.Buffer, error) {
	if err := doc.check(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 14)
	f.SetColWidth(sheetName, "B", colName(len(columns)-1), 12)

	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	header, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#F2F2F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheetName, "A1", "Worker")
	f.SetCellValue(sheetName, "B1", doc.Worker())
	f.SetCellValue(sheetName, "A2", "Issued on")
	f.SetCellValue(sheetName, "B2", doc.IssuedAt.Format("2006-01-02"))
	f.SetCellStyle(sheetName, "A1", "A2", bold)

	row := 4
	for i, c := range columns {
		f.SetCellValue(sheetName, cell(colName(i), row), c)
	}
	f.SetCellStyle(sheetName, cell("A", row), cell(colName(len(columns)-1), row), header)

	for i, r := range doc.Rows() {
		row++
		for j, v := range r.cells() {
			f.SetCellValue(sheetName, cell(colName(j), row), v)
		}
		// Hours go in as numbers so the sheet can sum them.
		rec := doc.Records[i]
		if rec.TotalHours != nil {
			f.SetCellValue(sheetName, cell("F", row), *rec.TotalHours)
		}
		if rec.OvertimeHours != nil {
			f.SetCellValue(sheetName, cell("G", row), *rec.OvertimeHours)
		}
	}

	row++
	f.SetCellValue(sheetName, cell("A", row), "TOTAL")
	f.SetCellValue(sheetName, cell("F", row), doc.Totals.Hours)
	f.SetCellValue(sheetName, cell("G", row), doc.Totals.Overtime)
	f.SetCellStyle(sheetName, cell("A", row), cell("G", row), bold)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf, nil
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
