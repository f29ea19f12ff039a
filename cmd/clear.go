package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var clearYes bool

var errNotConfirmed = errors.New("cancelled, nothing was erased")

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase the worker name, today's punches and all records",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Do not ask for confirmation")
}

func runClear(cmd *cobra.Command, args []string) error {
	s := openSession(cmd.Context(), loadConfig())
	defer s.close()

	if !clearYes {
		fmt.Fprintf(cmd.OutOrStdout(),
			"This erases the worker name, today's punches and all %d records. Continue? [y/N] ",
			len(s.clock.Records()))
		if !confirmed(cmd.InOrStdin()) {
			return errNotConfirmed
		}
	}

	if err := s.check(s.clock.Clear(cmd.Context())); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "All data erased.")
	return nil
}

// confirmed reads one line and accepts y or yes in any case.
func confirmed(r io.Reader) bool {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
