package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/punch-clock/internal/timecalc"
)

var outCmd = &cobra.Command{
	Use:   "out",
	Short: "Clock out and finalize today's record",
	Args:  cobra.NoArgs,
	RunE:  runOut,
}

func runOut(cmd *cobra.Command, args []string) error {
	s := openSession(cmd.Context(), loadConfig())
	defer s.close()

	rec, err := s.clock.ClockOut(cmd.Context())
	if err := s.check(err); err != nil {
		return err
	}

	fmt.Printf("Clocked out at %s.\n", *rec.ExitTime)
	fmt.Printf("  Worked:   %s\n", timecalc.FormatHours(*rec.TotalHours))
	if rec.LunchDuration != nil {
		fmt.Printf("  Lunch:    %s\n", timecalc.FormatHours(*rec.LunchDuration))
	}
	fmt.Printf("  Overtime: %s\n", timecalc.FormatHours(*rec.OvertimeHours))
	return nil
}
