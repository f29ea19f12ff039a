package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/punch-clock/internal/model"
	"github.com/Tiliavir/punch-clock/internal/records"
	"github.com/Tiliavir/punch-clock/internal/report"
	"github.com/Tiliavir/punch-clock/internal/timecalc"
)

var listWeek bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List finalized days, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listWeek, "week", false, "Show this week's records only")
}

func runList(cmd *cobra.Command, args []string) error {
	s := openSession(cmd.Context(), loadConfig())
	defer s.close()

	list := selectRecords(s.clock.RecordStore(), listWeek, time.Now())
	if listWeek {
		fmt.Printf("Week %s\n", timecalc.ISOWeekLabel(time.Now()))
	}
	printList(list)
	return nil
}

// selectRecords returns all records, or only those of the current ISO week.
func selectRecords(store *records.Store, week bool, now time.Time) []model.DailyRecord {
	if !week {
		return store.All()
	}
	from, to := timecalc.WeekRange(now)
	return store.Between(from, to)
}

func printList(list []model.DailyRecord) {
	if len(list) == 0 {
		fmt.Println("No records found.")
		return
	}

	fmt.Println("Date        Entry  Out    In     Exit   Total   Overtime")
	for _, r := range list {
		fmt.Println(recordLine(r))
	}
	totals := records.Sum(list)
	fmt.Println("--------------------------------------------------------")
	fmt.Printf("%d days  %s worked  %s overtime\n",
		len(list), timecalc.FormatHours(totals.Hours), timecalc.FormatHours(totals.Overtime))
}

// recordLine formats one record as a fixed-width row.
func recordLine(r model.DailyRecord) string {
	row := report.NewDocument("", time.Time{}, []model.DailyRecord{r}).Rows()[0]
	return fmt.Sprintf("%-10s  %-5s  %-5s  %-5s  %-5s  %-6s  %s",
		row.Date, row.Entry, row.LunchExit, row.LunchReturn, row.Exit, row.Total, row.Overtime)
}
