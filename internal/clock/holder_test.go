package clock

import (
	"sync"
	"testing"
	"time"
)

// fakeClock returns a scripted sequence of readings.
type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(f.step)
	return f.now
}

// TestSystemClock verifies the system clock reads real time.
func TestSystemClock(t *testing.T) {
	before := time.Now()
	got := System{}.Now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("System.Now() = %v, want between %v and %v", got, before, after)
	}
}

// TestHolderTicks verifies readings advance on each tick.
func TestHolderTicks(t *testing.T) {
	clk := &fakeClock{
		now:  time.Date(2026, time.August, 23, 10, 0, 0, 0, time.UTC),
		step: time.Second,
	}
	h := NewHolder(clk, 5*time.Millisecond)
	defer h.Stop()

	var first, second time.Time
	select {
	case first = <-h.C():
	case <-time.After(time.Second):
		t.Fatal("no tick received")
	}
	select {
	case second = <-h.C():
	case <-time.After(time.Second):
		t.Fatal("no second tick received")
	}

	if !second.After(first) {
		t.Errorf("second reading %v not after first %v", second, first)
	}
	if h.Current().Before(second) {
		t.Errorf("Current() = %v, want at least %v", h.Current(), second)
	}
}

// TestHolderStop verifies Stop closes the tick channel and halts refresh.
func TestHolderStop(t *testing.T) {
	clk := &fakeClock{
		now:  time.Date(2026, time.August, 23, 10, 0, 0, 0, time.UTC),
		step: time.Second,
	}
	h := NewHolder(clk, 5*time.Millisecond)

	select {
	case <-h.C():
	case <-time.After(time.Second):
		t.Fatal("no tick received")
	}

	h.Stop()
	h.Stop() // idempotent

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-h.C():
			if !ok {
				return // channel closed, ticker cancelled
			}
		case <-deadline:
			t.Fatal("tick channel never closed after Stop")
		}
	}
}

// TestHolderCurrentSeededImmediately verifies a reading exists before the
// first tick fires.
func TestHolderCurrentSeededImmediately(t *testing.T) {
	clk := &fakeClock{
		now:  time.Date(2026, time.August, 23, 10, 0, 0, 0, time.UTC),
		step: time.Second,
	}
	h := NewHolder(clk, time.Hour)
	defer h.Stop()

	if h.Current().IsZero() {
		t.Error("Current() is zero before first tick")
	}
}
