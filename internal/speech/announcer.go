// Package speech converts the current time into a spoken Bengali phrase and
// tracks the lifecycle of the resulting utterance.
package speech

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/sahilm/fuzzy"

	"github.com/banglaghori/banglaghori/internal/bangla"
	"github.com/banglaghori/banglaghori/internal/clock"
)

// DefaultRate is slightly below normal pace; Bengali phonetics read better
// a touch slower than most engines' default.
const DefaultRate = 0.9

// Announcer speaks the current time through an Engine. At most one
// utterance is in flight: a speak request while speaking is a silent no-op,
// and every accepted request cancels the shared engine first.
type Announcer struct {
	engine Engine
	clk    clock.Clock
	logger *log.Logger

	mu        sync.Mutex
	speaking  bool
	voiceOK   bool
	preferred string
	rate      float64
	closed    bool
	seq       uint64 // identifies the utterance the flag belongs to

	events chan Event
}

// Option configures an Announcer.
type Option func(*Announcer)

// WithRate overrides the speech rate multiplier.
func WithRate(rate float64) Option {
	return func(a *Announcer) {
		if rate > 0 {
			a.rate = rate
		}
	}
}

// WithPreferredVoice requests a voice by (possibly partial) name. The name
// is fuzzy-matched against the inventory; no match falls back to the normal
// selection procedure.
func WithPreferredVoice(name string) Option {
	return func(a *Announcer) { a.preferred = name }
}

// WithLogger overrides the default logger.
func WithLogger(l *log.Logger) Option {
	return func(a *Announcer) { a.logger = l }
}

// New creates an Announcer bound to an engine and a clock, and subscribes to
// the engine's voice inventory exactly once.
func New(engine Engine, clk clock.Clock, opts ...Option) *Announcer {
	a := &Announcer{
		engine: engine,
		clk:    clk,
		logger: log.Default(),
		rate:   DefaultRate,
		events: make(chan Event, 8),
	}
	for _, opt := range opts {
		opt(a)
	}

	engine.OnVoicesChanged(a.refreshVoices)
	a.refreshVoices()

	return a
}

// Announce speaks the current time. If an utterance is already in flight
// the request is dropped silently: not queued, not an error.
func (a *Announcer) Announce() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return ErrAnnouncerClosed
	}
	if a.speaking {
		a.mu.Unlock()
		return nil
	}
	a.speaking = true
	a.seq++
	seq := a.seq
	preferred := a.preferred
	rate := a.rate
	a.mu.Unlock()

	now := a.clk.Now()
	u := &Utterance{
		Text:     bangla.TimePhrase(now),
		Language: bangla.Locale.String(),
		Rate:     rate,
		Pitch:    1.0,
	}
	if v := a.chooseVoice(preferred); v != nil {
		u.Voice = v
		u.Language = v.Language
	}

	// Notifications from an utterance this announcer has since replaced
	// must not touch the flag; the sequence check drops them.
	u.OnStart = func() {
		if !a.currentSeq(seq) {
			return
		}
		a.logger.Debug("speech started", "text", u.Text, "language", u.Language)
		a.emit(Event{Kind: EventStarted})
	}
	u.OnEnd = func() {
		if !a.setIdle(seq) {
			return
		}
		a.emit(Event{Kind: EventDone})
	}
	u.OnError = func(err error) {
		if !a.setIdle(seq) {
			return
		}
		a.logger.Error("speech failed", "err", err)
		a.emit(Event{Kind: EventError, Err: err})
	}

	// A stale utterance could still be active if an end notification was
	// missed; the shared engine is cancelled before every request.
	a.engine.Cancel()

	if err := a.engine.Speak(u); err != nil {
		a.setIdle(seq)
		return err
	}
	return nil
}

// chooseVoice picks the voice to bind. A preferred name wins when it
// fuzzy-matches the inventory; otherwise the first Bengali descriptor is
// used. Nil means no binding, letting the engine pick its default for the
// requested tag.
func (a *Announcer) chooseVoice(preferred string) *Voice {
	voices := a.engine.Voices()
	if preferred != "" {
		names := make([]string, len(voices))
		for i, v := range voices {
			names[i] = v.Name
		}
		if matches := fuzzy.Find(preferred, names); len(matches) > 0 {
			v := voices[matches[0].Index]
			return &v
		}
		a.logger.Warn("preferred voice not found", "name", preferred)
	}
	return FindVoice(voices)
}

// Speaking reports whether an utterance is in flight.
func (a *Announcer) Speaking() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.speaking
}

// VoiceAvailable reports whether the inventory has a Bengali voice. False
// is degraded mode, not an error: announcements still go out with the
// generic locale tag.
func (a *Announcer) VoiceAvailable() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.voiceOK
}

// Events exposes lifecycle notifications. The channel is closed by Close.
func (a *Announcer) Events() <-chan Event {
	return a.events
}

// Close shuts down the engine and stops event delivery.
func (a *Announcer) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	close(a.events)
	a.mu.Unlock()

	a.engine.Cancel()
	return a.engine.Shutdown()
}

func (a *Announcer) refreshVoices() {
	ok := HasBengaliVoice(a.engine.Voices())

	a.mu.Lock()
	a.voiceOK = ok
	a.mu.Unlock()

	if !ok {
		a.logger.Debug("no Bengali voice in inventory")
	}
	a.emit(Event{Kind: EventVoicesChanged})
}

// setIdle resets the flag if seq still identifies the active utterance.
func (a *Announcer) setIdle(seq uint64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.seq != seq {
		return false
	}
	a.speaking = false
	return true
}

func (a *Announcer) currentSeq(seq uint64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.seq == seq
}

// emit delivers an event without blocking. Dropping on a full channel is
// fine: the UI re-reads announcer state on every message anyway.
func (a *Announcer) emit(ev Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	select {
	case a.events <- ev:
	default:
	}
}
