package report

import (
	_ "embed"
	"html/template"
	"io"

	"github.com/Tiliavir/punch-clock/internal/timecalc"
)

//go:embed report.html.tmpl
var pageHTML string

var page = template.Must(template.New("report").Parse(pageHTML))

// HTMLOptions tunes the printable page.
type HTMLOptions struct {
	// AutoPrint opens the print dialog as soon as the page loads.
	AutoPrint bool
}

// HTML writes a self-contained printable page.
func HTML(w io.Writer, doc Document, opts HTMLOptions) error {
	if err := doc.check(); err != nil {
		return err
	}
	totals := doc.Totals
	return page.Execute(w, struct {
		Worker    string
		Issued    string
		Columns   []string
		Rows      []Row
		Total     string
		Overtime  string
		AutoPrint bool
	}{
		Worker:    doc.Worker(),
		Issued:    timecalc.FormatDate(doc.IssuedAt),
		Columns:   columns,
		Rows:      doc.Rows(),
		Total:     timecalc.FormatHours(totals.Hours),
		Overtime:  timecalc.FormatHours(totals.Overtime),
		AutoPrint: opts.AutoPrint,
	})
}
