package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/punch-clock/internal/timecalc"
)

var inCmd = &cobra.Command{
	Use:   "in",
	Short: "Clock in and start the workday",
	Args:  cobra.NoArgs,
	RunE:  runIn,
}

func runIn(cmd *cobra.Command, args []string) error {
	s := openSession(cmd.Context(), loadConfig())
	defer s.close()

	if err := s.check(s.clock.ClockIn(cmd.Context())); err != nil {
		return err
	}
	fmt.Printf("Clocked in at %s.\n", timecalc.FormatClock(lastPunch(s.clock.Day())))
	return nil
}
