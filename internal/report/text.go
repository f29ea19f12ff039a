package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/punch-clock/internal/timecalc"
)

// CSV writes one line per record after a header line. Hours are plain numbers.
func CSV(w io.Writer, doc Document) error {
	if err := doc.check(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "date,entry,lunch_exit,lunch_return,exit,total_hours,overtime_hours,lunch_hours"); err != nil {
		return err
	}
	for _, r := range doc.Records {
		fields := []string{
			r.Day(),
			r.EntryTime,
			deref(r.LunchExitTime),
			deref(r.LunchReturnTime),
			deref(r.ExitTime),
			number(r.TotalHours),
			number(r.OvertimeHours),
			number(r.LunchDuration),
		}
		for i, f := range fields {
			fields[i] = csvEscape(f)
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, ",")); err != nil {
			return err
		}
	}
	return nil
}

// Markdown writes the report as a Markdown table.
func Markdown(w io.Writer, doc Document) error {
	if err := doc.check(); err != nil {
		return err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Time Clock Report\n\n")
	fmt.Fprintf(&b, "Worker: %s  \nIssued on: %s\n\n", doc.Worker(), timecalc.FormatDate(doc.IssuedAt))
	fmt.Fprintf(&b, "| %s |\n", strings.Join(columns, " | "))
	fmt.Fprintf(&b, "|%s\n", strings.Repeat("---|", len(columns)))
	for _, r := range doc.Rows() {
		fmt.Fprintf(&b, "| %s |\n", strings.Join(r.cells(), " | "))
	}
	fmt.Fprintf(&b, "| **TOTAL** | | | | | **%s** | **%s** |\n",
		timecalc.FormatHours(doc.Totals.Hours), timecalc.FormatHours(doc.Totals.Overtime))
	_, err := io.WriteString(w, b.String())
	return err
}

// JSON writes the document as indented JSON.
func JSON(w io.Writer, doc Document) error {
	if err := doc.check(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// YAML writes the document as YAML.
func YAML(w io.Writer, doc Document) error {
	if err := doc.check(); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func number(h *float64) string {
	if h == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *h)
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
