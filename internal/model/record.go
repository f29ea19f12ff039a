package model

import "time"

// DailyRecord is a finalized working day.
type DailyRecord struct {
	ID              string    `json:"id" yaml:"id"`
	Date            time.Time `json:"date" yaml:"date"`
	EntryTime       string    `json:"entryTime" yaml:"entryTime"`
	LunchExitTime   *string   `json:"lunchExitTime,omitempty" yaml:"lunchExitTime,omitempty"`
	LunchReturnTime *string   `json:"lunchReturnTime,omitempty" yaml:"lunchReturnTime,omitempty"`
	ExitTime        *string   `json:"exitTime,omitempty" yaml:"exitTime,omitempty"`
	TotalHours      *float64  `json:"totalHours,omitempty" yaml:"totalHours,omitempty"`
	OvertimeHours   *float64  `json:"overtimeHours,omitempty" yaml:"overtimeHours,omitempty"`
	LunchDuration   *float64  `json:"lunchDuration,omitempty" yaml:"lunchDuration,omitempty"`
}

// Day returns the record's calendar day as YYYY-MM-DD.
func (r DailyRecord) Day() string {
	return r.Date.Format("2006-01-02")
}

// State is the snapshot persisted as a single blob.
type State struct {
	EmployeeName       string        `json:"employeeName"`
	Records            []DailyRecord `json:"records"`
	CurrentEntry       *time.Time    `json:"currentEntry,omitempty"`
	CurrentLunchExit   *time.Time    `json:"currentLunchExit,omitempty"`
	CurrentLunchReturn *time.Time    `json:"currentLunchReturn,omitempty"`
}

// EmptyState returns the initial state: no name, no records, nothing in progress.
func EmptyState() State {
	return State{Records: []DailyRecord{}}
}
