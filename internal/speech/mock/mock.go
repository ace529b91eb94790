// Package mock provides a scriptable speech engine for tests and for
// running the UI on machines without a synthesizer.
package mock

import (
	"sync"
	"time"

	"github.com/banglaghori/banglaghori/internal/speech"
)

// Engine implements speech.Engine with a fixed inventory and manually fired
// lifecycle notifications. The call log records the order of Cancel and
// Speak operations so tests can assert cancel-before-speak.
type Engine struct {
	mu            sync.Mutex
	voices        []speech.Voice
	onVoices      func()
	current       *speech.Utterance
	utterances    []*speech.Utterance
	calls         []string
	speakErr     error
	available    bool
	autoComplete time.Duration
}

// New creates a mock engine with one Bengali and one English voice.
func New() *Engine {
	return &Engine{
		available: true,
		voices: []speech.Voice{
			{ID: "mock-bn", Name: "Mock Bangla", Language: "bn-BD", Gender: "female"},
			{ID: "mock-en", Name: "Mock English", Language: "en-US", Gender: "neutral"},
		},
	}
}

// Voices returns the configured inventory.
func (e *Engine) Voices() []speech.Voice {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]speech.Voice(nil), e.voices...)
}

// OnVoicesChanged registers the single inventory subscriber.
func (e *Engine) OnVoicesChanged(fn func()) {
	e.mu.Lock()
	e.onVoices = fn
	e.mu.Unlock()
}

// Speak records the utterance and, in auto-complete mode, fires start and
// end on its own.
func (e *Engine) Speak(u *speech.Utterance) error {
	e.mu.Lock()
	if !e.available {
		e.mu.Unlock()
		return speech.ErrEngineNotAvailable
	}
	if e.speakErr != nil {
		err := e.speakErr
		e.mu.Unlock()
		return err
	}
	e.calls = append(e.calls, "speak")
	e.utterances = append(e.utterances, u)
	e.current = u
	auto := e.autoComplete
	e.mu.Unlock()

	if auto > 0 {
		go func() {
			e.FireStart()
			time.Sleep(auto)
			e.FireEnd()
		}()
	}
	return nil
}

// Cancel records the cancel and clears the current utterance.
func (e *Engine) Cancel() {
	e.mu.Lock()
	e.calls = append(e.calls, "cancel")
	e.current = nil
	e.mu.Unlock()
}

// Shutdown marks the engine unavailable.
func (e *Engine) Shutdown() error {
	e.mu.Lock()
	e.available = false
	e.mu.Unlock()
	return nil
}

// Test controls

// SetVoices replaces the inventory and fires the change notification,
// simulating asynchronous inventory population.
func (e *Engine) SetVoices(voices []speech.Voice) {
	e.mu.Lock()
	e.voices = append([]speech.Voice(nil), voices...)
	fn := e.onVoices
	e.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// SetSpeakError makes subsequent Speak calls fail synchronously.
func (e *Engine) SetSpeakError(err error) {
	e.mu.Lock()
	e.speakErr = err
	e.mu.Unlock()
}

// SetAutoComplete makes Speak fire start immediately and end after d.
func (e *Engine) SetAutoComplete(d time.Duration) {
	e.mu.Lock()
	e.autoComplete = d
	e.mu.Unlock()
}

// FireStart fires the current utterance's start notification.
func (e *Engine) FireStart() {
	if u := e.currentUtterance(); u != nil && u.OnStart != nil {
		u.OnStart()
	}
}

// FireEnd fires the current utterance's end notification and clears it.
func (e *Engine) FireEnd() {
	e.mu.Lock()
	u := e.current
	e.current = nil
	e.mu.Unlock()
	if u != nil && u.OnEnd != nil {
		u.OnEnd()
	}
}

// FireError fires the current utterance's error notification and clears it.
func (e *Engine) FireError(err error) {
	e.mu.Lock()
	u := e.current
	e.current = nil
	e.mu.Unlock()
	if u != nil && u.OnError != nil {
		u.OnError(err)
	}
}

// Calls returns the recorded operation order ("cancel", "speak", ...).
func (e *Engine) Calls() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.calls...)
}

// Utterances returns every utterance passed to Speak.
func (e *Engine) Utterances() []*speech.Utterance {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*speech.Utterance(nil), e.utterances...)
}

func (e *Engine) currentUtterance() *speech.Utterance {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}
