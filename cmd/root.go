package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tiliavir/punch-clock/internal/config"
	"github.com/Tiliavir/punch-clock/internal/logging"
	"github.com/Tiliavir/punch-clock/internal/punch"
	"github.com/Tiliavir/punch-clock/internal/storage"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "punch",
	Short: "Punch – a single-worker punch clock",
	Long: `punch records four daily punches (clock-in, lunch-out, lunch-in, clock-out),
computes worked and overtime hours, and prints a timesheet report.
Data lives in ~/.punch/ unless the config file says otherwise.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.punch/config.json)")

	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(lunchCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(uiCmd)
}

// session is everything a command needs to drive the clock.
type session struct {
	cfg    config.Config
	logger *zap.Logger
	store  *storage.Store
	clock  *punch.Clock
}

func loadConfig() config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return cfg
}

// openSession builds the logger, opens storage and restores the clock.
// Failures are fatal with exit code 2.
func openSession(ctx context.Context, cfg config.Config) *session {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	store, err := storage.Open(ctx, cfg.Storage, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	state, err := store.Load(ctx)
	if err != nil {
		store.Close()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	clock := punch.New(state, store,
		punch.WithLogger(logger),
		punch.WithStandardHours(cfg.Workday.StandardHours),
		punch.RequireWorkerName(cfg.Workday.RequireWorkerName),
	)
	return &session{cfg: cfg, logger: logger, store: store, clock: clock}
}

func (s *session) close() {
	if err := s.store.Close(); err != nil {
		s.logger.Warn("closing storage", zap.Error(err))
	}
	_ = s.logger.Sync()
}

// check passes rejected punches through to the caller (exit 1) and treats
// anything else as a storage failure (exit 2).
func (s *session) check(err error) error {
	if err == nil || punch.IsWorkflowError(err) {
		return err
	}
	fmt.Fprintln(os.Stderr, err)
	s.close()
	os.Exit(2)
	return nil
}

// tuiLogFile keeps log lines off the terminal the UI draws on.
func tuiLogFile(cfg config.Config) string {
	if cfg.Log.File != "" {
		return cfg.Log.File
	}
	return filepath.Join(cfg.Storage.Dir, "punch.log")
}
