// Package punch implements the daily punch clock: clock-in, lunch-out,
// lunch-in and clock-out, with a snapshot after every accepted punch.
package punch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Tiliavir/punch-clock/internal/model"
	"github.com/Tiliavir/punch-clock/internal/records"
	"github.com/Tiliavir/punch-clock/internal/timecalc"
)

// Saver persists snapshots of the clock.
type Saver interface {
	Save(ctx context.Context, state model.State) error
	Clear(ctx context.Context) error
}

// Clock holds the worker's name, today's punches and the finalized records.
// It is driven by a single actor and is not safe for concurrent use.
type Clock struct {
	saver    Saver
	logger   *zap.Logger
	now      func() time.Time
	standard float64
	needName bool

	name    string
	day     Day
	records *records.Store
}

// Option configures a Clock.
type Option func(*Clock)

// WithNow replaces the time source.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) { c.now = now }
}

// WithLogger sets the logger for transitions.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Clock) { c.logger = logger }
}

// WithStandardHours sets the regular day length used for overtime.
func WithStandardHours(h float64) Option {
	return func(c *Clock) { c.standard = h }
}

// RequireWorkerName makes ClockIn fail while the worker name is blank.
func RequireWorkerName(required bool) Option {
	return func(c *Clock) { c.needName = required }
}

// New restores a Clock from a loaded state.
func New(state model.State, saver Saver, opts ...Option) *Clock {
	c := &Clock{
		saver:    saver,
		logger:   zap.NewNop(),
		now:      time.Now,
		standard: timecalc.StandardHours,
		name:     state.EmployeeName,
		day:      dayFromState(state),
		records:  records.New(state.Records),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClockIn starts the day.
func (c *Clock) ClockIn(ctx context.Context) error {
	now := c.timestamp()
	if _, ok := c.day.(Idle); !ok {
		return c.reject("clock-in", ErrAlreadyClockedIn)
	}
	if c.needName && strings.TrimSpace(c.name) == "" {
		return c.reject("clock-in", ErrWorkerNameRequired)
	}
	if c.records.HasDay(now) {
		return c.reject("clock-in", ErrAlreadyClockedInToday)
	}

	if err := c.commit(ctx, c.name, Working{Entry: now}, c.records); err != nil {
		return err
	}
	c.logger.Info("clocked in", zap.Time("at", now))
	return nil
}

// LunchOut starts the lunch break. Only one lunch break is allowed per day.
func (c *Clock) LunchOut(ctx context.Context) error {
	now := c.timestamp()
	var next Day
	switch d := c.day.(type) {
	case Idle:
		return c.reject("lunch-out", ErrNotClockedIn)
	case Lunch:
		return c.reject("lunch-out", ErrAlreadyOnLunch)
	case Afternoon:
		return c.reject("lunch-out", ErrLunchAlreadyTaken)
	case Working:
		next = Lunch{Entry: d.Entry, LunchExit: now}
	}

	if err := c.commit(ctx, c.name, next, c.records); err != nil {
		return err
	}
	c.logger.Info("left for lunch", zap.Time("at", now))
	return nil
}

// LunchIn ends the lunch break.
func (c *Clock) LunchIn(ctx context.Context) error {
	now := c.timestamp()
	var next Day
	switch d := c.day.(type) {
	case Idle, Working:
		return c.reject("lunch-in", ErrNoLunchExitRecorded)
	case Afternoon:
		return c.reject("lunch-in", ErrLunchAlreadyTaken)
	case Lunch:
		next = Afternoon{Entry: d.Entry, LunchExit: d.LunchExit, LunchReturn: now}
	}

	if err := c.commit(ctx, c.name, next, c.records); err != nil {
		return err
	}
	c.logger.Info("back from lunch", zap.Time("at", now))
	return nil
}

// ClockOut finalizes the day into a record, replacing any record for the
// same day, and returns to idle.
func (c *Clock) ClockOut(ctx context.Context) (model.DailyRecord, error) {
	now := c.timestamp()
	p := timecalc.Punches{Exit: now}
	switch d := c.day.(type) {
	case Idle:
		return model.DailyRecord{}, c.reject("clock-out", ErrNotClockedIn)
	case Lunch:
		return model.DailyRecord{}, c.reject("clock-out", ErrLunchNotResumed)
	case Working:
		p.Entry = d.Entry
	case Afternoon:
		p.Entry = d.Entry
		p.LunchExit = timePtr(d.LunchExit)
		p.LunchReturn = timePtr(d.LunchReturn)
	}

	h, err := timecalc.CalculateHours(p, c.standard)
	if err != nil {
		return model.DailyRecord{}, fmt.Errorf("calculating hours: %w", err)
	}
	if h.Clamped {
		c.logger.Warn("worked time ran backwards, counted as zero",
			zap.Time("entry", p.Entry), zap.Time("exit", p.Exit))
	}

	rec := newRecord(now, p, h)
	next := records.New(c.records.All())
	next.UpsertByDay(rec)

	if err := c.commit(ctx, c.name, Idle{}, next); err != nil {
		return model.DailyRecord{}, err
	}
	c.logger.Info("clocked out",
		zap.Time("at", now),
		zap.Stringer("phase", PhaseFinished),
		zap.String("record", rec.ID),
		zap.Float64("total_hours", h.Total),
		zap.Float64("overtime_hours", h.Overtime))
	return rec, nil
}

// SetWorkerName changes the worker's display name.
func (c *Clock) SetWorkerName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if err := c.commit(ctx, name, c.day, c.records); err != nil {
		return err
	}
	c.logger.Info("worker name changed", zap.String("name", name))
	return nil
}

// Clear erases all persisted data and resets the clock to an empty idle state.
func (c *Clock) Clear(ctx context.Context) error {
	if err := c.saver.Clear(ctx); err != nil {
		return fmt.Errorf("clearing state: %w", err)
	}
	c.name = ""
	c.day = Idle{}
	c.records = records.New(nil)
	c.logger.Info("all data cleared")
	return nil
}

// Phase returns the current workflow phase.
func (c *Clock) Phase() Phase {
	return c.day.Phase()
}

// Day returns today's in-progress punches.
func (c *Clock) Day() Day {
	return c.day
}

// WorkerName returns the worker's display name.
func (c *Clock) WorkerName() string {
	return c.name
}

// Records returns the finalized records, most recent first.
func (c *Clock) Records() []model.DailyRecord {
	return c.records.All()
}

// RecordStore exposes the finalized records for read-only queries.
func (c *Clock) RecordStore() *records.Store {
	return records.New(c.records.All())
}

// Totals sums worked and overtime hours over all records.
func (c *Clock) Totals() records.Totals {
	return c.records.Totals()
}

// Worked returns the time worked so far today, lunch excluded.
func (c *Clock) Worked(now time.Time) time.Duration {
	return c.day.Worked(now)
}

// Snapshot returns the state as it is persisted.
func (c *Clock) Snapshot() model.State {
	return snapshot(c.name, c.day, c.records)
}

// commit persists the next state and adopts it only once the save succeeded.
func (c *Clock) commit(ctx context.Context, name string, day Day, recs *records.Store) error {
	if err := c.saver.Save(ctx, snapshot(name, day, recs)); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	c.name, c.day, c.records = name, day, recs
	return nil
}

func (c *Clock) reject(op string, err error) error {
	c.logger.Debug("punch rejected",
		zap.String("op", op), zap.Stringer("phase", c.day.Phase()), zap.Error(err))
	return err
}

// timestamp returns the current time without its monotonic reading, so it
// compares equal to the value read back from storage.
func (c *Clock) timestamp() time.Time {
	return c.now().Round(0)
}

func snapshot(name string, day Day, recs *records.Store) model.State {
	s := model.State{EmployeeName: name, Records: recs.All()}
	day.fill(&s)
	return s
}

func newRecord(now time.Time, p timecalc.Punches, h timecalc.Hours) model.DailyRecord {
	exit := timecalc.FormatClock(p.Exit)
	total, overtime := h.Total, h.Overtime
	rec := model.DailyRecord{
		ID:            timecalc.GenerateID(now),
		Date:          p.Entry,
		EntryTime:     timecalc.FormatClock(p.Entry),
		ExitTime:      &exit,
		TotalHours:    &total,
		OvertimeHours: &overtime,
		LunchDuration: h.Lunch,
	}
	if p.LunchExit != nil {
		out, in := timecalc.FormatClock(*p.LunchExit), timecalc.FormatClock(*p.LunchReturn)
		rec.LunchExitTime = &out
		rec.LunchReturnTime = &in
	}
	return rec
}
