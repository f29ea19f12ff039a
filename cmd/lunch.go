package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/punch-clock/internal/timecalc"
)

var lunchCmd = &cobra.Command{
	Use:   "lunch",
	Short: "Start or end the lunch break",
}

var lunchOutCmd = &cobra.Command{
	Use:   "out",
	Short: "Leave for lunch",
	Args:  cobra.NoArgs,
	RunE:  runLunchOut,
}

var lunchInCmd = &cobra.Command{
	Use:   "in",
	Short: "Return from lunch",
	Args:  cobra.NoArgs,
	RunE:  runLunchIn,
}

func init() {
	lunchCmd.AddCommand(lunchOutCmd)
	lunchCmd.AddCommand(lunchInCmd)
}

func runLunchOut(cmd *cobra.Command, args []string) error {
	s := openSession(cmd.Context(), loadConfig())
	defer s.close()

	if err := s.check(s.clock.LunchOut(cmd.Context())); err != nil {
		return err
	}
	fmt.Printf("Lunch break started at %s.\n", timecalc.FormatClock(lastPunch(s.clock.Day())))
	return nil
}

func runLunchIn(cmd *cobra.Command, args []string) error {
	s := openSession(cmd.Context(), loadConfig())
	defer s.close()

	if err := s.check(s.clock.LunchIn(cmd.Context())); err != nil {
		return err
	}
	fmt.Printf("Back from lunch at %s.\n", timecalc.FormatClock(lastPunch(s.clock.Day())))
	return nil
}
