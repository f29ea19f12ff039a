package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var nameCmd = &cobra.Command{
	Use:   "name <worker name>",
	Short: "Set the worker name shown on reports",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runName,
}

func runName(cmd *cobra.Command, args []string) error {
	s := openSession(cmd.Context(), loadConfig())
	defer s.close()

	if err := s.check(s.clock.SetWorkerName(cmd.Context(), strings.Join(args, " "))); err != nil {
		return err
	}
	fmt.Printf("Worker name set to %q.\n", s.clock.WorkerName())
	return nil
}
