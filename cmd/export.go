package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/punch-clock/internal/report"
)

var (
	exportFormat string
	exportWeek   bool
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export records as csv, json, yaml, md or xlsx",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, yaml, md, xlsx")
	exportCmd.Flags().BoolVar(&exportWeek, "week", false, "Export this week's records only")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout; required for xlsx)")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFormat == "xlsx" && exportOutput == "" {
		return errors.New("xlsx export needs --output")
	}
	render, err := exporter(exportFormat)
	if err != nil {
		return err
	}

	now := time.Now()
	s := openSession(cmd.Context(), loadConfig())
	defer s.close()

	doc := report.NewDocument(s.clock.WorkerName(), now, selectRecords(s.clock.RecordStore(), exportWeek, now))
	if len(doc.Records) == 0 {
		return errNothingToExport
	}

	w := io.Writer(os.Stdout)
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", exportOutput, err)
		}
		defer f.Close()
		w = f
	}
	if err := render(w, doc); err != nil {
		return fmt.Errorf("exporting %s: %w", exportFormat, err)
	}
	if exportOutput != "" {
		fmt.Fprintf(os.Stderr, "Exported %d records to %s\n", len(doc.Records), exportOutput)
	}
	return nil
}

// exporter picks the renderer for format.
func exporter(format string) (func(io.Writer, report.Document) error, error) {
	switch format {
	case "csv":
		return report.CSV, nil
	case "json":
		return report.JSON, nil
	case "yaml", "yml":
		return report.YAML, nil
	case "md":
		return report.Markdown, nil
	case "xlsx":
		return func(w io.Writer, doc report.Document) error {
			buf, err := report.XLSX(doc)
			if err != nil {
				return err
			}
			_, err = buf.WriteTo(w)
			return err
		}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want csv, json, yaml, md or xlsx)", format)
	}
}
