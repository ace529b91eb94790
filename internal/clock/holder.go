package clock

import (
	"sync"
	"time"
)

// Holder tracks the current time, refreshed on a fixed cadence for the
// lifetime of the screen. Each tick re-reads the injected Clock; there is no
// drift correction or catch-up. Stop cancels the underlying ticker so no
// background timer leaks past teardown.
type Holder struct {
	clk      Clock
	interval time.Duration

	mu      sync.Mutex
	current time.Time

	ticks chan time.Time
	done  chan struct{}
	once  sync.Once
}

// NewHolder creates a Holder ticking at the given interval and starts it.
func NewHolder(clk Clock, interval time.Duration) *Holder {
	h := &Holder{
		clk:      clk,
		interval: interval,
		current:  clk.Now(),
		ticks:    make(chan time.Time, 1),
		done:     make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *Holder) run() {
	t := time.NewTicker(h.interval)
	defer t.Stop()

	for {
		select {
		case <-h.done:
			close(h.ticks)
			return
		case <-t.C:
			now := h.clk.Now()
			h.mu.Lock()
			h.current = now
			h.mu.Unlock()

			// A slow consumer only ever misses intermediate readings;
			// Current always has the latest one.
			select {
			case h.ticks <- now:
			default:
			}
		}
	}
}

// Current returns the most recent reading.
func (h *Holder) Current() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// C exposes the refresh cadence. The channel is closed by Stop.
func (h *Holder) C() <-chan time.Time {
	return h.ticks
}

// Stop cancels the refresh cadence. It is safe to call more than once.
func (h *Holder) Stop() {
	h.once.Do(func() { close(h.done) })
}
