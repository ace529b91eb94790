package speech

// Voice describes one synthetic voice exposed by an engine.
type Voice struct {
	ID       string // Engine-specific handle
	Name     string // Human-readable name
	Language string // Locale tag (e.g. "bn", "bn-BD")
	Gender   string // Voice gender, if the engine reports one
}

// Utterance is a single speech request. The lifecycle callbacks are invoked
// by the engine from its own goroutine: start when audio begins, then
// exactly one of end or error.
type Utterance struct {
	Text     string  // What to say
	Language string  // Locale tag to request
	Voice    *Voice  // Specific voice to bind, or nil for the engine default
	Rate     float64 // Speech rate multiplier (1.0 = normal)
	Pitch    float64 // Pitch multiplier (1.0 = engine default)

	OnStart func()
	OnEnd   func()
	OnError func(error)
}

// Engine is the platform speech synthesizer. One utterance may be active at
// a time; issuing Speak while another utterance is playing is engine-defined
// behavior, which is why callers cancel first.
type Engine interface {
	// Voices returns the current voice inventory. It may be empty until the
	// engine has finished loading it.
	Voices() []Voice

	// OnVoicesChanged registers a callback invoked whenever the inventory
	// becomes available or changes. Engines support exactly one subscriber.
	OnVoicesChanged(fn func())

	// Speak issues an utterance. The call returns once the request is
	// accepted; progress is reported through the utterance callbacks.
	Speak(u *Utterance) error

	// Cancel discards any utterance currently in progress.
	Cancel()

	// Shutdown stops the engine and releases its resources.
	Shutdown() error
}

// AudioPlayer plays raw PCM audio. Engines that synthesize to PCM use it for
// output; it is an interface so tests can substitute a fake device.
type AudioPlayer interface {
	// Play blocks until the audio has been played or Stop is called.
	Play(pcm []byte) error

	// Stop halts playback.
	Stop() error

	// Close releases the audio device.
	Close() error
}
