// Package storage persists the punch clock state as one JSON blob in a
// key/value backend.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Tiliavir/punch-clock/internal/model"
)

// errSchema marks a blob that parses as JSON but does not describe a valid state.
var errSchema = errors.New("schema mismatch")

// Store loads and saves the whole state under a single key.
type Store struct {
	backend Backend
	key     string
	logger  *zap.Logger
}

// New returns a Store writing to key in backend.
func New(backend Backend, key string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{backend: backend, key: key, logger: logger}
}

// Load reads the state. A missing blob yields the empty state. A blob that
// cannot be parsed is set aside and the empty state is returned; only
// backend failures are reported as errors.
func (s *Store) Load(ctx context.Context) (model.State, error) {
	data, err := s.backend.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		return model.EmptyState(), nil
	}
	if err != nil {
		return model.EmptyState(), err
	}

	state, err := decode(data)
	if err != nil {
		s.discard(ctx, err)
		return model.EmptyState(), nil
	}
	return state, nil
}

// Save writes the full snapshot in a single write, replacing any prior blob.
func (s *Store) Save(ctx context.Context, state model.State) error {
	if state.Records == nil {
		state.Records = []model.DailyRecord{}
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}
	return s.backend.Put(ctx, s.key, data)
}

// Clear erases the persisted blob.
func (s *Store) Clear(ctx context.Context) error {
	return s.backend.Delete(ctx, s.key)
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) discard(ctx context.Context, cause error) {
	if q, ok := s.backend.(quarantiner); ok {
		backup, err := q.Quarantine(ctx, s.key)
		if err == nil {
			s.logger.Warn("discarded corrupt state",
				zap.String("key", s.key), zap.String("backup", backup), zap.Error(cause))
			return
		}
		s.logger.Warn("could not back up corrupt state", zap.String("key", s.key), zap.Error(err))
	}
	if err := s.backend.Delete(ctx, s.key); err != nil {
		s.logger.Error("could not delete corrupt state", zap.String("key", s.key), zap.Error(err))
		return
	}
	s.logger.Warn("discarded corrupt state", zap.String("key", s.key), zap.Error(cause))
}

func decode(data []byte) (model.State, error) {
	var state model.State
	if err := json.Unmarshal(data, &state); err != nil {
		return model.State{}, err
	}
	if err := validate(state); err != nil {
		return model.State{}, err
	}
	if state.Records == nil {
		state.Records = []model.DailyRecord{}
	}
	return state, nil
}

func validate(state model.State) error {
	for i, r := range state.Records {
		if r.ID == "" || r.Date.IsZero() || r.EntryTime == "" {
			return fmt.Errorf("%w: record %d is incomplete", errSchema, i)
		}
	}
	if state.CurrentLunchExit != nil && state.CurrentEntry == nil {
		return fmt.Errorf("%w: lunch exit without entry", errSchema)
	}
	if state.CurrentLunchReturn != nil && state.CurrentLunchExit == nil {
		return fmt.Errorf("%w: lunch return without lunch exit", errSchema)
	}
	return nil
}
