package tui_test

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/punch-clock/internal/model"
	"github.com/Tiliavir/punch-clock/internal/punch"
	"github.com/Tiliavir/punch-clock/internal/report"
	"github.com/Tiliavir/punch-clock/internal/storage"
	"github.com/Tiliavir/punch-clock/internal/tui"
)

type harness struct {
	t     *testing.T
	now   time.Time
	clock *punch.Clock
	m     tea.Model
}

func newHarness(t *testing.T, export func(report.Document) (string, error)) *harness {
	h := &harness{t: t, now: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)}
	now := func() time.Time { return h.now }
	store := storage.New(storage.NewMemoryBackend(), "timeClockData", nil)
	h.clock = punch.New(model.EmptyState(), store, punch.WithNow(now))
	h.m = tui.New(context.Background(), h.clock, tui.Options{Now: now, Export: export})
	return h
}

func (h *harness) at(hour, minute int) *harness {
	h.now = time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
	return h
}

func (h *harness) send(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	h.m, cmd = h.m.Update(msg)
	return cmd
}

func (h *harness) press(keys string) {
	for _, r := range keys {
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *harness) view() string {
	return h.m.View()
}

func TestPunchSequence(t *testing.T) {
	h := newHarness(t, nil)
	assert.Contains(t, h.view(), "Waiting for clock-in")
	assert.Contains(t, h.view(), "No records yet.")

	h.at(8, 0).press("e")
	assert.Equal(t, punch.PhaseWorking, h.clock.Phase())
	assert.Contains(t, h.view(), "Clocked in at 08:00.")

	h.at(12, 0).press("a")
	assert.Equal(t, punch.PhaseLunch, h.clock.Phase())
	assert.Contains(t, h.view(), "On lunch break")
	assert.Contains(t, h.view(), "Worked:  04:00")

	h.at(13, 0).press("r")
	assert.Contains(t, h.view(), "Entry 08:00   Lunch out 12:00   Lunch in 13:00")

	h.at(17, 0).press("s")
	out := h.view()
	assert.Contains(t, out, "Clocked out at 17:00. Worked 8.00h, overtime 0.00h.")
	assert.Contains(t, out, "Day complete")
	assert.Contains(t, out, "02/03/2026  08:00  12:00  13:00  17:00  8.00h   0.00h")
	assert.Contains(t, out, "1 days, 8.00h worked, 0.00h overtime")
}

func TestRejectedPunchShowsError(t *testing.T) {
	h := newHarness(t, nil)
	h.press("s")
	assert.Contains(t, h.view(), "! "+punch.ErrNotClockedIn.Error())
	assert.Equal(t, punch.PhaseIdle, h.clock.Phase())

	h.press("e")
	h.at(9, 0).press("r")
	assert.Contains(t, h.view(), "! "+punch.ErrNoLunchExitRecorded.Error())
}

func TestEditName(t *testing.T) {
	h := newHarness(t, nil)
	h.press("n")
	assert.Contains(t, h.view(), "Name: _")

	h.press("Ana")
	h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	h.press("Souzaa")
	h.send(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Contains(t, h.view(), "Name: Ana Souza_")

	// Keys are text while editing, not commands.
	assert.Equal(t, punch.PhaseIdle, h.clock.Phase())

	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Ana Souza", h.clock.WorkerName())
	assert.Contains(t, h.view(), "Worker:  Ana Souza")
	assert.Contains(t, h.view(), "Name saved.")

	h.press("n")
	h.press("x")
	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "Ana Souza", h.clock.WorkerName())
}

func TestClearNeedsConfirmation(t *testing.T) {
	h := newHarness(t, nil)
	h.at(8, 0).press("e")
	h.at(16, 0).press("s")
	require.Len(t, h.clock.Records(), 1)

	h.press("x")
	assert.Contains(t, h.view(), "all 1 records? (y/n)")
	h.press("n")
	assert.Contains(t, h.view(), "Nothing was erased.")
	assert.Len(t, h.clock.Records(), 1)

	h.press("x")
	h.press("y")
	assert.Contains(t, h.view(), "All data erased.")
	assert.Empty(t, h.clock.Records())
}

func TestExport(t *testing.T) {
	var got report.Document
	h := newHarness(t, func(doc report.Document) (string, error) {
		if len(doc.Records) == 0 {
			return "", report.ErrNoRecords
		}
		got = doc
		return "/tmp/punch-report.html", nil
	})

	h.press("p")
	assert.Contains(t, h.view(), "No records to export.")

	h.at(8, 0).press("e")
	h.at(18, 0).press("s")
	h.press("p")
	assert.Contains(t, h.view(), "Report written to /tmp/punch-report.html.")
	require.Len(t, got.Records, 1)
	assert.Equal(t, 2.0, got.Totals.Overtime)
}

func TestQuit(t *testing.T) {
	h := newHarness(t, nil)
	assert.NotNil(t, h.m.Init())

	cmd := h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
