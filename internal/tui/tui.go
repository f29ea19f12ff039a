// Package tui is the interactive terminal front end of the punch clock.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Tiliavir/punch-clock/internal/model"
	"github.com/Tiliavir/punch-clock/internal/punch"
	"github.com/Tiliavir/punch-clock/internal/report"
	"github.com/Tiliavir/punch-clock/internal/timecalc"
)

// recentRecords is how many records the main screen lists.
const recentRecords = 7

// Options configures the terminal UI.
type Options struct {
	// Now is the time source; defaults to time.Now.
	Now func() time.Time
	// Refresh is how often the worked time is redrawn.
	Refresh time.Duration
	// Export writes the printable report and returns where it went.
	Export func(report.Document) (string, error)
	Logger *zap.Logger
}

type mode int

const (
	modeNormal mode = iota
	modeName
	modeConfirmClear
)

type tickMsg time.Time

// Model is the bubbletea model driving a punch.Clock.
type Model struct {
	ctx   context.Context
	clock *punch.Clock
	opts  Options

	now    time.Time
	mode   mode
	input  string
	notice string
	failed bool
}

// New returns a Model over clock.
func New(ctx context.Context, clock *punch.Clock, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Refresh <= 0 {
		opts.Refresh = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return Model{ctx: ctx, clock: clock, opts: opts, now: opts.Now()}
}

// Run starts the UI and blocks until the user quits.
func Run(ctx context.Context, clock *punch.Clock, opts Options) error {
	p := tea.NewProgram(New(ctx, clock, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.opts.Refresh, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = m.opts.Now()
		return m, m.tick()
	case tea.KeyMsg:
		m.now = m.opts.Now()
		switch m.mode {
		case modeName:
			return m.updateName(msg)
		case modeConfirmClear:
			return m.updateConfirm(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "e":
		m = m.result(m.clock.ClockIn(m.ctx), "Clocked in at %s.", timecalc.FormatClock(m.now))
	case "a":
		m = m.result(m.clock.LunchOut(m.ctx), "Lunch break started at %s.", timecalc.FormatClock(m.now))
	case "r":
		m = m.result(m.clock.LunchIn(m.ctx), "Back from lunch at %s.", timecalc.FormatClock(m.now))
	case "s":
		rec, err := m.clock.ClockOut(m.ctx)
		if err != nil {
			m = m.result(err, "")
			break
		}
		m = m.result(nil, "Clocked out at %s. Worked %s, overtime %s.",
			*rec.ExitTime, timecalc.FormatHours(*rec.TotalHours), timecalc.FormatHours(*rec.OvertimeHours))
	case "n":
		m.mode = modeName
		m.input = m.clock.WorkerName()
		m.notice = ""
	case "x":
		m.mode = modeConfirmClear
		m.notice = ""
	case "p":
		m = m.export()
	}
	return m, nil
}

func (m Model) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode = modeNormal
		m.input = ""
	case tea.KeyEnter:
		m.mode = modeNormal
		m = m.result(m.clock.SetWorkerName(m.ctx, m.input), "Name saved.")
		m.input = ""
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeNormal
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "y", "Y":
		m = m.result(m.clock.Clear(m.ctx), "All data erased.")
	default:
		m = m.result(nil, "Nothing was erased.")
	}
	return m, nil
}

func (m Model) export() Model {
	if m.opts.Export == nil {
		return m.result(errors.New("report export is not available"), "")
	}
	doc := report.NewDocument(m.clock.WorkerName(), m.now, m.clock.Records())
	path, err := m.opts.Export(doc)
	if errors.Is(err, report.ErrNoRecords) {
		m.notice, m.failed = "No records to export.", true
		return m
	}
	return m.result(err, "Report written to %s.", path)
}

// result sets the notice line from the outcome of an action.
func (m Model) result(err error, format string, args ...any) Model {
	if err != nil {
		m.opts.Logger.Debug("action failed", zap.Error(err))
		m.notice, m.failed = err.Error(), true
		return m
	}
	m.notice, m.failed = fmt.Sprintf(format, args...), false
	return m
}

func (m Model) View() string {
	var b strings.Builder

	name := m.clock.WorkerName()
	if name == "" {
		name = "(press n to enter your name)"
	}
	st := m.clock.Status(m.now)

	fmt.Fprintf(&b, "Punch clock  %s  %s\n\n", timecalc.FormatDate(m.now), timecalc.FormatClock(m.now))
	fmt.Fprintf(&b, "Worker:  %s\n", name)
	fmt.Fprintf(&b, "Status:  %s\n", st.Message)
	fmt.Fprintf(&b, "Worked:  %s\n\n", timecalc.FormatHHMM(st.Worked))

	entry, lunchOut, lunchIn := punches(m.clock.Day())
	fmt.Fprintf(&b, "Entry %s   Lunch out %s   Lunch in %s\n\n", entry, lunchOut, lunchIn)

	recs := m.clock.Records()
	if len(recs) == 0 {
		b.WriteString("No records yet.\n")
	} else {
		b.WriteString("Date        Entry  Out    In     Exit   Total   Overtime\n")
		for i, r := range recs {
			if i == recentRecords {
				fmt.Fprintf(&b, "... %d more\n", len(recs)-recentRecords)
				break
			}
			b.WriteString(recordLine(r))
		}
		totals := m.clock.Totals()
		fmt.Fprintf(&b, "%d days, %s worked, %s overtime\n",
			len(recs), timecalc.FormatHours(totals.Hours), timecalc.FormatHours(totals.Overtime))
	}
	b.WriteString("\n")

	switch m.mode {
	case modeName:
		fmt.Fprintf(&b, "Name: %s_\n", m.input)
		b.WriteString("enter save • esc cancel\n")
	case modeConfirmClear:
		fmt.Fprintf(&b, "Erase the worker name, today's punches and all %d records? (y/n)\n", len(recs))
	default:
		if m.notice != "" {
			prefix := ""
			if m.failed {
				prefix = "! "
			}
			fmt.Fprintf(&b, "%s%s\n", prefix, m.notice)
		}
		b.WriteString("e clock in • a lunch out • r lunch in • s clock out • n name • p report • x clear • q quit\n")
	}
	return b.String()
}

func punches(d punch.Day) (entry, lunchOut, lunchIn string) {
	entry, lunchOut, lunchIn = timecalc.MissingClock, timecalc.MissingClock, timecalc.MissingClock
	switch d := d.(type) {
	case punch.Working:
		entry = timecalc.FormatClock(d.Entry)
	case punch.Lunch:
		entry, lunchOut = timecalc.FormatClock(d.Entry), timecalc.FormatClock(d.LunchExit)
	case punch.Afternoon:
		entry, lunchOut, lunchIn = timecalc.FormatClock(d.Entry), timecalc.FormatClock(d.LunchExit), timecalc.FormatClock(d.LunchReturn)
	}
	return entry, lunchOut, lunchIn
}

func recordLine(r model.DailyRecord) string {
	clock := func(s *string) string {
		if s == nil {
			return timecalc.MissingClock
		}
		return *s
	}
	hours := func(h *float64) string {
		if h == nil {
			return report.Missing
		}
		return timecalc.FormatHours(*h)
	}
	return fmt.Sprintf("%-10s  %-5s  %-5s  %-5s  %-5s  %-6s  %s\n",
		timecalc.FormatDate(r.Date), r.EntryTime, clock(r.LunchExitTime), clock(r.LunchReturnTime),
		clock(r.ExitTime), hours(r.TotalHours), hours(r.OvertimeHours))
}
