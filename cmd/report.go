package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/punch-clock/internal/report"
)

var (
	reportOutput string
	reportNoOpen bool
)

// errNothingToExport is the user-facing form of report.ErrNoRecords.
var errNothingToExport = errors.New("No records to export.")

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the printable timesheet and open it for printing",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Where to write the HTML page (default: a file in the temp dir)")
	reportCmd.Flags().BoolVar(&reportNoOpen, "no-open", false, "Only write the file, do not open it")
}

func runReport(cmd *cobra.Command, args []string) error {
	now := time.Now()
	s := openSession(cmd.Context(), loadConfig())
	defer s.close()

	doc := report.NewDocument(s.clock.WorkerName(), now, s.clock.Records())
	path, err := writeReport(doc, reportOutput, !reportNoOpen)
	if errors.Is(err, report.ErrNoRecords) {
		return errNothingToExport
	}
	if err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", path)
	return nil
}

// writeReport renders doc as a self-printing page at path (a temp file when
// empty) and optionally opens it in the browser.
func writeReport(doc report.Document, path string, open bool) (string, error) {
	if len(doc.Records) == 0 {
		return "", report.ErrNoRecords
	}
	if path == "" {
		path = filepath.Join(os.TempDir(), "punch-report-"+doc.IssuedAt.Format("20060102-150405")+".html")
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}
	err = report.HTML(f, doc, report.HTMLOptions{AutoPrint: open})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	if open {
		if err := openBrowser(path); err != nil {
			return path, fmt.Errorf("could not open the report (%s): %w", path, err)
		}
	}
	return path, nil
}

// openBrowser hands path to the platform's default opener.
func openBrowser(path string) error {
	var c *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		c = exec.Command("open", path)
	case "windows":
		c = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		c = exec.Command("xdg-open", path)
	}
	return c.Start()
}
