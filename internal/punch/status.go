package punch

import "time"

// Status describes the clock for display.
type Status struct {
	// Phase is the display phase: PhaseFinished once today's record exists
	// and nothing is in progress, otherwise the clock's phase.
	Phase   Phase
	Message string
	Worked  time.Duration
}

// Status reports the clock's state at now.
func (c *Clock) Status(now time.Time) Status {
	st := Status{Phase: c.day.Phase(), Worked: c.day.Worked(now)}
	switch c.day.(type) {
	case Working:
		st.Message = "Working (morning)"
	case Afternoon:
		st.Message = "Working (afternoon)"
	case Lunch:
		st.Message = "On lunch break"
	default:
		if c.records.HasDay(now) {
			st.Phase = PhaseFinished
			st.Message = "Day complete"
		} else {
			st.Message = "Waiting for clock-in"
		}
	}
	return st
}
