package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/punch-clock/internal/punch"
	"github.com/Tiliavir/punch-clock/internal/report"
	"github.com/Tiliavir/punch-clock/internal/timecalc"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's punches and worked time",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	now := time.Now()
	s := openSession(cmd.Context(), loadConfig())
	defer s.close()

	st := s.clock.Status(now)
	name := s.clock.WorkerName()
	if name == "" {
		name = report.NameNotProvided
	}

	fmt.Printf("Worker:    %s\n", name)
	fmt.Printf("Status:    %s\n", st.Message)

	if st.Phase == punch.PhaseFinished {
		for _, r := range s.clock.RecordStore().Between(timecalc.StartOfDay(now), timecalc.EndOfDay(now)) {
			fmt.Printf("Today:     %s\n", recordLine(r))
		}
		return nil
	}
	if st.Phase == punch.PhaseIdle {
		return nil
	}

	entry, lunchOut, lunchIn := punchTimes(s.clock.Day())
	fmt.Printf("Worked:    %s (%s)\n", timecalc.FormatHHMM(st.Worked), timecalc.FormatDuration(int64(st.Worked.Seconds())))
	fmt.Printf("Entry:     %s\n", entry)
	fmt.Printf("Lunch out: %s\n", lunchOut)
	fmt.Printf("Lunch in:  %s\n", lunchIn)
	return nil
}

// punchTimes formats the in-progress punches; missing ones read "--:--".
func punchTimes(d punch.Day) (entry, lunchOut, lunchIn string) {
	var e, o, i time.Time
	switch d := d.(type) {
	case punch.Working:
		e = d.Entry
	case punch.Lunch:
		e, o = d.Entry, d.LunchExit
	case punch.Afternoon:
		e, o, i = d.Entry, d.LunchExit, d.LunchReturn
	}
	return timecalc.FormatClock(e), timecalc.FormatClock(o), timecalc.FormatClock(i)
}

// lastPunch returns the most recent punch of the in-progress day.
func lastPunch(d punch.Day) time.Time {
	switch d := d.(type) {
	case punch.Working:
		return d.Entry
	case punch.Lunch:
		return d.LunchExit
	case punch.Afternoon:
		return d.LunchReturn
	}
	return time.Time{}
}
