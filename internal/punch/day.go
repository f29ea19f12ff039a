package punch

import (
	"time"

	"github.com/Tiliavir/punch-clock/internal/model"
)

// Phase names which punches are currently legal.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseWorking  Phase = "working"
	PhaseLunch    Phase = "lunch"
	PhaseFinished Phase = "finished"
)

func (p Phase) String() string {
	return string(p)
}

// Day is today's in-progress punches. It is one of Idle, Working, Lunch or Afternoon.
type Day interface {
	Phase() Phase
	// Worked is the time worked up to now, lunch excluded.
	Worked(now time.Time) time.Duration
	fill(*model.State)
}

// Idle means nothing is punched yet today (or the day was just finalized).
type Idle struct{}

// Working is the morning period: clocked in, no lunch yet.
type Working struct {
	Entry time.Time
}

// Lunch is the lunch break: clocked in and out for lunch.
type Lunch struct {
	Entry     time.Time
	LunchExit time.Time
}

// Afternoon is back from lunch; the only punch left is clock-out.
type Afternoon struct {
	Entry       time.Time
	LunchExit   time.Time
	LunchReturn time.Time
}

func (Idle) Phase() Phase      { return PhaseIdle }
func (Working) Phase() Phase   { return PhaseWorking }
func (Lunch) Phase() Phase     { return PhaseLunch }
func (Afternoon) Phase() Phase { return PhaseWorking }

func (Idle) Worked(time.Time) time.Duration { return 0 }

func (d Working) Worked(now time.Time) time.Duration {
	return now.Sub(d.Entry)
}

func (d Lunch) Worked(time.Time) time.Duration {
	return d.LunchExit.Sub(d.Entry)
}

func (d Afternoon) Worked(now time.Time) time.Duration {
	return d.LunchExit.Sub(d.Entry) + now.Sub(d.LunchReturn)
}

func (Idle) fill(*model.State) {}

func (d Working) fill(s *model.State) {
	s.CurrentEntry = timePtr(d.Entry)
}

func (d Lunch) fill(s *model.State) {
	s.CurrentEntry = timePtr(d.Entry)
	s.CurrentLunchExit = timePtr(d.LunchExit)
}

func (d Afternoon) fill(s *model.State) {
	s.CurrentEntry = timePtr(d.Entry)
	s.CurrentLunchExit = timePtr(d.LunchExit)
	s.CurrentLunchReturn = timePtr(d.LunchReturn)
}

// dayFromState rebuilds the in-progress day from the persisted instants.
// Instants that do not follow their predecessor are ignored.
func dayFromState(s model.State) Day {
	switch {
	case s.CurrentEntry == nil:
		return Idle{}
	case s.CurrentLunchExit == nil:
		return Working{Entry: *s.CurrentEntry}
	case s.CurrentLunchReturn == nil:
		return Lunch{Entry: *s.CurrentEntry, LunchExit: *s.CurrentLunchExit}
	default:
		return Afternoon{Entry: *s.CurrentEntry, LunchExit: *s.CurrentLunchExit, LunchReturn: *s.CurrentLunchReturn}
	}
}

func timePtr(t time.Time) *time.Time { return &t }
