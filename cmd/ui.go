package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Tiliavir/punch-clock/internal/report"
	"github.com/Tiliavir/punch-clock/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive punch clock",
	Args:  cobra.NoArgs,
	RunE:  runUI,
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	cfg.Log.File = tuiLogFile(cfg)

	s := openSession(cmd.Context(), cfg)
	defer s.close()

	return tui.Run(cmd.Context(), s.clock, tui.Options{
		Refresh: cfg.UI.Refresh,
		Logger:  s.logger,
		Export: func(doc report.Document) (string, error) {
			return writeReport(doc, "", true)
		},
	})
}
