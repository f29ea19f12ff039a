package punch

import "errors"

// Workflow errors. Each leaves the clock unchanged.
var (
	ErrAlreadyClockedInToday = errors.New("you already clocked in today")
	ErrAlreadyClockedIn      = errors.New("you are already clocked in")
	ErrWorkerNameRequired    = errors.New("please enter your name before clocking in")
	ErrNotClockedIn          = errors.New("you need to clock in first")
	ErrAlreadyOnLunch        = errors.New("you are already on your lunch break")
	ErrLunchAlreadyTaken     = errors.New("lunch break was already taken today")
	ErrNoLunchExitRecorded   = errors.New("you need to clock out for lunch first")
	ErrLunchNotResumed       = errors.New("you need to clock back in from lunch first")
)

var workflowErrors = []error{
	ErrAlreadyClockedInToday,
	ErrAlreadyClockedIn,
	ErrWorkerNameRequired,
	ErrNotClockedIn,
	ErrAlreadyOnLunch,
	ErrLunchAlreadyTaken,
	ErrNoLunchExitRecorded,
	ErrLunchNotResumed,
}

// IsWorkflowError reports whether err is a rejected punch rather than a
// persistence failure.
func IsWorkflowError(err error) bool {
	for _, target := range workflowErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
