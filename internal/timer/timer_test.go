package timer

import (
	"errors"
	"testing"
	"time"

	"github.com/ktausif7709-art/Time-tracker/internal/storage"
)

func newTestStopwatch(t *testing.T) (*Stopwatch, *storage.Store, *time.Time) {
	t.Helper()
	kv, err := storage.NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}
	store := storage.New(kv)

	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	sw := New(store)
	sw.now = func() time.Time { return now }
	return sw, store, &now
}

func TestStopwatchAccumulates(t *testing.T) {
	sw, _, now := newTestStopwatch(t)

	if sw.Running() || sw.Elapsed() != 0 {
		t.Fatal("fresh stopwatch must be paused at zero")
	}

	if err := sw.Start(); err != nil {
		t.Fatal(err)
	}
	*now = now.Add(5 * time.Second)
	if got := sw.Elapsed(); got != 5 {
		t.Errorf("Elapsed while running = %d, want 5", got)
	}

	if err := sw.Pause(); err != nil {
		t.Fatal(err)
	}
	*now = now.Add(time.Hour)
	if got := sw.Elapsed(); got != 5 {
		t.Errorf("Elapsed while paused = %d, want 5 (inert)", got)
	}

	// Resume and keep counting from the accumulated total.
	if err := sw.Start(); err != nil {
		t.Fatal(err)
	}
	*now = now.Add(55 * time.Second)
	if got := sw.Elapsed(); got != 60 {
		t.Errorf("Elapsed after resume = %d, want 60", got)
	}
	if got := sw.Hours(); got != 60.0/3600 {
		t.Errorf("Hours = %v, want %v", got, 60.0/3600)
	}
}

func TestStopwatchStartWhileRunningIsNoop(t *testing.T) {
	sw, _, now := newTestStopwatch(t)
	if err := sw.Start(); err != nil {
		t.Fatal(err)
	}
	*now = now.Add(10 * time.Second)
	if err := sw.Start(); err != nil {
		t.Fatal(err)
	}
	*now = now.Add(10 * time.Second)
	if got := sw.Elapsed(); got != 20 {
		t.Errorf("Elapsed = %d, want 20 (second Start must not restart the span)", got)
	}
}

func TestStopwatchReset(t *testing.T) {
	sw, _, now := newTestStopwatch(t)
	if err := sw.Start(); err != nil {
		t.Fatal(err)
	}
	*now = now.Add(30 * time.Second)
	if err := sw.Reset(); err != nil {
		t.Fatal(err)
	}
	if sw.Running() || sw.Elapsed() != 0 {
		t.Error("Reset must stop and zero the stopwatch")
	}
}

func TestStopwatchPersistsAcrossInstances(t *testing.T) {
	sw, store, now := newTestStopwatch(t)
	if err := sw.Start(); err != nil {
		t.Fatal(err)
	}
	*now = now.Add(42 * time.Second)
	if err := sw.Pause(); err != nil {
		t.Fatal(err)
	}

	sw2 := New(store)
	sw2.now = sw.now
	if sw2.Running() {
		t.Error("reloaded stopwatch should be paused")
	}
	if got := sw2.Elapsed(); got != 42 {
		t.Errorf("reloaded Elapsed = %d, want 42", got)
	}
}

func TestCheckLoggable(t *testing.T) {
	sw, _, now := newTestStopwatch(t)
	if err := sw.Start(); err != nil {
		t.Fatal(err)
	}

	*now = now.Add(9 * time.Second)
	if err := sw.CheckLoggable(); !errors.Is(err, ErrTooShort) {
		t.Errorf("CheckLoggable at 9s = %v, want ErrTooShort", err)
	}

	*now = now.Add(1 * time.Second)
	if err := sw.CheckLoggable(); err != nil {
		t.Errorf("CheckLoggable at 10s = %v, want nil", err)
	}
}
