// Package report renders the finalized records for printing and export.
package report

import (
	"errors"
	"time"

	"github.com/Tiliavir/punch-clock/internal/model"
	"github.com/Tiliavir/punch-clock/internal/records"
	"github.com/Tiliavir/punch-clock/internal/timecalc"
)

// ErrNoRecords is returned when there is nothing to render.
var ErrNoRecords = errors.New("no records to export")

// Missing stands in for a value that was never recorded.
const Missing = "--"

// NameNotProvided is shown when the worker never entered a name.
const NameNotProvided = "Not provided"

// Document is everything a report shows.
type Document struct {
	WorkerName string              `json:"employeeName" yaml:"employeeName"`
	IssuedAt   time.Time           `json:"issuedAt" yaml:"issuedAt"`
	Records    []model.DailyRecord `json:"records" yaml:"records"`
	Totals     records.Totals      `json:"totals" yaml:"totals"`
}

// NewDocument builds a Document over list, computing its totals.
func NewDocument(workerName string, issuedAt time.Time, list []model.DailyRecord) Document {
	return Document{
		WorkerName: workerName,
		IssuedAt:   issuedAt,
		Records:    list,
		Totals:     records.Sum(list),
	}
}

// Worker returns the name for the report header.
func (d Document) Worker() string {
	if d.WorkerName == "" {
		return NameNotProvided
	}
	return d.WorkerName
}

// Row is a record formatted for display.
type Row struct {
	Date        string
	Entry       string
	LunchExit   string
	LunchReturn string
	Exit        string
	Total       string
	Overtime    string
}

var columns = []string{"Date", "Entry", "Lunch out", "Lunch in", "Exit", "Total", "Overtime"}

func (r Row) cells() []string {
	return []string{r.Date, r.Entry, r.LunchExit, r.LunchReturn, r.Exit, r.Total, r.Overtime}
}

// Rows formats the document's records in order.
func (d Document) Rows() []Row {
	rows := make([]Row, 0, len(d.Records))
	for _, r := range d.Records {
		entry := r.EntryTime
		if entry == "" {
			entry = Missing
		}
		rows = append(rows, Row{
			Date:        timecalc.FormatDate(r.Date),
			Entry:       entry,
			LunchExit:   orMissing(r.LunchExitTime),
			LunchReturn: orMissing(r.LunchReturnTime),
			Exit:        orMissing(r.ExitTime),
			Total:       hoursOrMissing(r.TotalHours),
			Overtime:    hoursOrMissing(r.OvertimeHours),
		})
	}
	return rows
}

func (d Document) check() error {
	if len(d.Records) == 0 {
		return ErrNoRecords
	}
	return nil
}

func orMissing(s *string) string {
	if s == nil || *s == "" {
		return Missing
	}
	return *s
}

func hoursOrMissing(h *float64) string {
	if h == nil {
		return Missing
	}
	return timecalc.FormatHours(*h)
}
