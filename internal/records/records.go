// Package records holds the finalized daily records, one per calendar day.
package records

import (
	"time"

	"github.com/Tiliavir/punch-clock/internal/model"
	"github.com/Tiliavir/punch-clock/internal/timecalc"
)

// Totals is the sum of worked and overtime hours over a set of records.
type Totals struct {
	Hours    float64 `json:"totalHours" yaml:"totalHours"`
	Overtime float64 `json:"overtimeHours" yaml:"overtimeHours"`
}

// Store is an ordered, most-recent-first collection of records with at most
// one record per calendar day.
type Store struct {
	list []model.DailyRecord
}

// New builds a Store from a persisted list. When the list holds several
// records for the same day, the one closest to the head wins.
func New(list []model.DailyRecord) *Store {
	s := &Store{list: make([]model.DailyRecord, 0, len(list))}
	for _, r := range list {
		if s.index(r.Date) < 0 {
			s.list = append(s.list, r)
		}
	}
	return s
}

// UpsertByDay replaces the record sharing r's calendar day, or inserts r at the head.
func (s *Store) UpsertByDay(r model.DailyRecord) {
	if i := s.index(r.Date); i >= 0 {
		s.list[i] = r
		return
	}
	s.list = append([]model.DailyRecord{r}, s.list...)
}

// All returns a copy of the records in store order.
func (s *Store) All() []model.DailyRecord {
	out := make([]model.DailyRecord, len(s.list))
	copy(out, s.list)
	return out
}

// Between returns the records whose date falls in [from, to], in store order.
func (s *Store) Between(from, to time.Time) []model.DailyRecord {
	out := []model.DailyRecord{}
	for _, r := range s.list {
		if r.Date.Before(from) || r.Date.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// HasDay reports whether a record exists for the calendar day of t.
func (s *Store) HasDay(t time.Time) bool {
	return s.index(t) >= 0
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.list)
}

// Totals sums the store's records.
func (s *Store) Totals() Totals {
	return Sum(s.list)
}

// Sum adds up worked and overtime hours; records without values count as zero.
func Sum(list []model.DailyRecord) Totals {
	var t Totals
	for _, r := range list {
		if r.TotalHours != nil {
			t.Hours += *r.TotalHours
		}
		if r.OvertimeHours != nil {
			t.Overtime += *r.OvertimeHours
		}
	}
	return t
}

func (s *Store) index(day time.Time) int {
	for i, r := range s.list {
		if timecalc.SameDay(r.Date, day) {
			return i
		}
	}
	return -1
}
