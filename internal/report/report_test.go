package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/punch-clock/internal/model"
	"github.com/Tiliavir/punch-clock/internal/records"
	"github.com/Tiliavir/punch-clock/internal/report"
)

func strPtr(s string) *string      { return &s }
func floatPtr(f float64) *float64 { return &f }

func sampleRecords() []model.DailyRecord {
	return []model.DailyRecord{
		{
			ID:            "20260303-080000-aaaaaaaa",
			Date:          time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC),
			EntryTime:     "08:00",
			ExitTime:      strPtr("19:00"),
			TotalHours:    floatPtr(11),
			OvertimeHours: floatPtr(3),
		},
		{
			ID:              "20260302-080000-bbbbbbbb",
			Date:            time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
			EntryTime:       "08:00",
			LunchExitTime:   strPtr("12:00"),
			LunchReturnTime: strPtr("13:00"),
			ExitTime:        strPtr("17:00"),
			TotalHours:      floatPtr(8),
			OvertimeHours:   floatPtr(0),
			LunchDuration:   floatPtr(1),
		},
	}
}

var issued = time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC)

func TestNewDocumentTotals(t *testing.T) {
	doc := report.NewDocument("Ana", issued, sampleRecords())
	assert.Equal(t, records.Totals{Hours: 19, Overtime: 3}, doc.Totals)
}

func TestRows(t *testing.T) {
	doc := report.NewDocument("", issued, sampleRecords())
	rows := doc.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, report.Row{
		Date: "03/03/2026", Entry: "08:00", LunchExit: "--", LunchReturn: "--",
		Exit: "19:00", Total: "11.00h", Overtime: "3.00h",
	}, rows[0])
	assert.Equal(t, "12:00", rows[1].LunchExit)
	assert.Equal(t, report.NameNotProvided, doc.Worker())
}

func TestRendererRejectsEmptyDocument(t *testing.T) {
	doc := report.NewDocument("Ana", issued, nil)
	var buf bytes.Buffer

	assert.ErrorIs(t, report.HTML(&buf, doc, report.HTMLOptions{}), report.ErrNoRecords)
	assert.ErrorIs(t, report.CSV(&buf, doc), report.ErrNoRecords)
	assert.ErrorIs(t, report.Markdown(&buf, doc), report.ErrNoRecords)
	assert.ErrorIs(t, report.JSON(&buf, doc), report.ErrNoRecords)
	assert.ErrorIs(t, report.YAML(&buf, doc), report.ErrNoRecords)
	_, err := report.XLSX(doc)
	assert.ErrorIs(t, err, report.ErrNoRecords)
	assert.Zero(t, buf.Len())
}

func TestHTML(t *testing.T) {
	tests := []struct {
		name      string
		worker    string
		autoPrint bool
		contains  []string
		absent    []string
	}{
		{
			name:      "named worker with auto print",
			worker:    "Ana Souza",
			autoPrint: true,
			contains: []string{
				"<strong>Worker:</strong> Ana Souza",
				"<strong>Issued on:</strong> 04/03/2026",
				"<td>03/03/2026</td><td>08:00</td><td>--</td><td>--</td><td>19:00</td><td>11.00h</td><td>3.00h</td>",
				"<td>12:00</td><td>13:00</td><td>17:00</td>",
				`<td colspan="5">TOTAL</td><td>19.00h</td><td>3.00h</td>`,
				"window.print()",
			},
		},
		{
			name:     "blank worker",
			contains: []string{"<strong>Worker:</strong> Not provided"},
			absent:   []string{"window.print()"},
		},
		{
			name:     "markup in the name is escaped",
			worker:   "<b>Ana</b>",
			contains: []string{"&lt;b&gt;Ana&lt;/b&gt;"},
			absent:   []string{"<b>Ana</b>"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			doc := report.NewDocument(tt.worker, issued, sampleRecords())
			require.NoError(t, report.HTML(&buf, doc, report.HTMLOptions{AutoPrint: tt.autoPrint}))
			out := buf.String()
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.CSV(&buf, report.NewDocument("Ana", issued, sampleRecords())))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,entry,lunch_exit,lunch_return,exit,total_hours,overtime_hours,lunch_hours", lines[0])
	assert.Equal(t, "2026-03-03,08:00,,,19:00,11.00,3.00,", lines[1])
	assert.Equal(t, "2026-03-02,08:00,12:00,13:00,17:00,8.00,0.00,1.00", lines[2])
}

func TestMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Markdown(&buf, report.NewDocument("", issued, sampleRecords())))
	out := buf.String()

	assert.Contains(t, out, "Worker: Not provided")
	assert.Contains(t, out, "| Date | Entry | Lunch out | Lunch in | Exit | Total | Overtime |")
	assert.Contains(t, out, "| 03/03/2026 | 08:00 | -- | -- | 19:00 | 11.00h | 3.00h |")
	assert.Contains(t, out, "**19.00h**")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.JSON(&buf, report.NewDocument("Ana", issued, sampleRecords())))

	var got report.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Ana", got.WorkerName)
	assert.Equal(t, records.Totals{Hours: 19, Overtime: 3}, got.Totals)
	assert.Equal(t, sampleRecords(), got.Records)
	assert.Contains(t, buf.String(), `"employeeName": "Ana"`)
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.YAML(&buf, report.NewDocument("Ana", issued, sampleRecords())))

	var got struct {
		Worker  string              `yaml:"employeeName"`
		Totals  records.Totals      `yaml:"totals"`
		Records []model.DailyRecord `yaml:"records"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Ana", got.Worker)
	assert.Equal(t, records.Totals{Hours: 19, Overtime: 3}, got.Totals)
	require.Len(t, got.Records, 2)
	assert.Equal(t, "20260302-080000-bbbbbbbb", got.Records[1].ID)
	assert.Nil(t, got.Records[0].LunchExitTime)
}

func TestXLSX(t *testing.T) {
	buf, err := report.XLSX(report.NewDocument("Ana", issued, sampleRecords()))
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Time Clock"
	assert.Equal(t, []string{sheet}, f.GetSheetList())

	get := func(ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Ana", get("B1"))
	assert.Equal(t, "Date", get("A4"))
	assert.Equal(t, "Overtime", get("G4"))
	assert.Equal(t, "03/03/2026", get("A5"))
	assert.Equal(t, "--", get("C5"))
	assert.Equal(t, "11", get("F5"))
	assert.Equal(t, "12:00", get("C6"))
	assert.Equal(t, "TOTAL", get("A7"))
	assert.Equal(t, "19", get("F7"))
}
