package timer

import (
	"errors"
	"time"

	"github.com/ktausif7709-art/Time-tracker/internal/model"
	"github.com/ktausif7709-art/Time-tracker/internal/storage"
)

// MinLogSeconds is the shortest stopwatch session that may be logged.
const MinLogSeconds = 10

// ErrTooShort is returned when logging a session under MinLogSeconds.
var ErrTooShort = errors.New("session too short to log (minimum 10s)")

// Stopwatch accumulates elapsed whole seconds while running. Its state is
// persisted through the store so a session survives across invocations.
type Stopwatch struct {
	store *storage.Store
	now   func() time.Time
	state model.TimerState
}

// New loads the persisted stopwatch state.
func New(store *storage.Store) *Stopwatch {
	return &Stopwatch{
		store: store,
		now:   time.Now,
		state: store.LoadTimer(),
	}
}

// Running reports whether the stopwatch is currently counting.
func (s *Stopwatch) Running() bool {
	return s.state.RunningSince != nil
}

// Elapsed returns the total accumulated whole seconds, including the
// currently running span.
func (s *Stopwatch) Elapsed() int64 {
	total := s.state.AccumulatedSeconds
	if s.state.RunningSince != nil {
		total += s.now().Unix() - *s.state.RunningSince
	}
	return total
}

// Hours converts the elapsed time to decimal hours for logging.
func (s *Stopwatch) Hours() float64 {
	return float64(s.Elapsed()) / 3600
}

// Start begins (or resumes) counting. Starting a running stopwatch is a
// no-op.
func (s *Stopwatch) Start() error {
	if s.Running() {
		return nil
	}
	since := s.now().Unix()
	s.state.RunningSince = &since
	return s.store.SaveTimer(s.state)
}

// Pause stops counting, folding the running span into the accumulated total.
func (s *Stopwatch) Pause() error {
	if !s.Running() {
		return nil
	}
	s.state.AccumulatedSeconds = s.Elapsed()
	s.state.RunningSince = nil
	return s.store.SaveTimer(s.state)
}

// Reset discards the session. There is no in-flight work to unwind; the
// stopwatch simply stops incrementing.
func (s *Stopwatch) Reset() error {
	s.state = model.TimerState{}
	return s.store.SaveTimer(s.state)
}

// CheckLoggable returns ErrTooShort when the session is under the minimum.
func (s *Stopwatch) CheckLoggable() error {
	if s.Elapsed() < MinLogSeconds {
		return ErrTooShort
	}
	return nil
}
