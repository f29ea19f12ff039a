package timecalc

import (
	"errors"
	"time"
)

// StandardHours is the length of a regular workday; time beyond it is overtime.
const StandardHours = 8.0

// ErrIncompleteLunch is returned when only one of the two lunch punches is present.
var ErrIncompleteLunch = errors.New("lunch break has an exit without a return")

// Punches are the four instants of one working day. The lunch instants are
// either both set or both nil.
type Punches struct {
	Entry       time.Time
	LunchExit   *time.Time
	LunchReturn *time.Time
	Exit        time.Time
}

// Hours is the derived accounting of a day, in fractional hours.
type Hours struct {
	Total    float64
	Overtime float64
	// Lunch is nil when no lunch break was taken.
	Lunch *float64
	// Clamped is set when a segment ran backwards and was counted as zero.
	Clamped bool
}

// CalculateHours derives worked, lunch and overtime hours from p. A standard
// of zero or less falls back to StandardHours.
func CalculateHours(p Punches, standard float64) (Hours, error) {
	if standard <= 0 {
		standard = StandardHours
	}
	if (p.LunchExit == nil) != (p.LunchReturn == nil) {
		return Hours{}, ErrIncompleteLunch
	}

	var h Hours
	if p.LunchExit != nil {
		morning, c1 := segment(p.Entry, *p.LunchExit)
		afternoon, c2 := segment(*p.LunchReturn, p.Exit)
		lunch, c3 := segment(*p.LunchExit, *p.LunchReturn)
		h.Total = morning + afternoon
		h.Lunch = &lunch
		h.Clamped = c1 || c2 || c3
	} else {
		h.Total, h.Clamped = segment(p.Entry, p.Exit)
	}

	h.Overtime = h.Total - standard
	if h.Overtime < 0 {
		h.Overtime = 0
	}
	return h, nil
}

// segment returns the hours between from and to, clamped at zero.
func segment(from, to time.Time) (float64, bool) {
	d := to.Sub(from)
	if d < 0 {
		return 0, true
	}
	return d.Hours(), false
}
