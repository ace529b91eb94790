// Package espeak implements the speech engine on top of the espeak-ng
// synthesizer, spawning a fresh process per utterance.
package espeak

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/banglaghori/banglaghori/internal/speech"
)

// defaultWPM is espeak-ng's own default speaking rate, in words per minute.
// Utterance rate multipliers scale against it.
const defaultWPM = 175

// Config holds configuration for the espeak engine.
type Config struct {
	// Binary is the synthesizer executable. When empty, espeak-ng and then
	// espeak are looked up on PATH.
	Binary string

	// DataDir points at an alternate voice-data directory (espeak --path).
	DataDir string

	// WordsPerMinute overrides the base speaking rate.
	WordsPerMinute int
}

// Engine runs espeak-ng once per utterance: synthesize to WAV on stdout,
// strip the header, play the PCM. The voice inventory is loaded
// asynchronously so it can be empty right after New returns.
type Engine struct {
	bin     string
	dataDir string
	wpm     int
	player  speech.AudioPlayer
	logger  *log.Logger

	mu       sync.Mutex
	voices   []speech.Voice
	onVoices func()
	cmd      *exec.Cmd
	shutdown bool
}

// New locates the synthesizer binary and starts loading the voice
// inventory in the background.
func New(cfg Config, player speech.AudioPlayer) (*Engine, error) {
	bin := cfg.Binary
	if bin == "" {
		for _, candidate := range []string{"espeak-ng", "espeak"} {
			if path, err := exec.LookPath(candidate); err == nil {
				bin = path
				break
			}
		}
	} else if path, err := exec.LookPath(bin); err == nil {
		bin = path
	} else {
		return nil, fmt.Errorf("%w: %s not found", speech.ErrEngineNotAvailable, cfg.Binary)
	}
	if bin == "" {
		return nil, fmt.Errorf("%w: espeak-ng not installed", speech.ErrEngineNotAvailable)
	}

	wpm := cfg.WordsPerMinute
	if wpm <= 0 {
		wpm = defaultWPM
	}

	e := &Engine{
		bin:     bin,
		dataDir: cfg.DataDir,
		wpm:     wpm,
		player:  player,
		logger:  log.Default(),
	}
	go e.loadVoices()

	return e, nil
}

// Voices returns the inventory loaded so far.
func (e *Engine) Voices() []speech.Voice {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]speech.Voice(nil), e.voices...)
}

// OnVoicesChanged registers the inventory subscriber. If the inventory
// already loaded before the subscriber arrived, it is notified immediately.
func (e *Engine) OnVoicesChanged(fn func()) {
	e.mu.Lock()
	e.onVoices = fn
	loaded := len(e.voices) > 0
	e.mu.Unlock()

	if loaded && fn != nil {
		fn()
	}
}

// Speak synthesizes and plays the utterance asynchronously. Lifecycle
// callbacks fire from the playback goroutine; a cancelled utterance fires
// nothing.
func (e *Engine) Speak(u *speech.Utterance) error {
	if u.Text == "" {
		return speech.ErrEmptyUtterance
	}

	voice := u.Language
	if u.Voice != nil && u.Voice.ID != "" {
		voice = u.Voice.ID
	}

	args := e.baseArgs()
	args = append(args,
		"-v", voice,
		"-s", strconv.Itoa(scaleWPM(e.wpm, u.Rate)),
		"-p", strconv.Itoa(scalePitch(u.Pitch)),
		"--stdout",
		u.Text,
	)

	e.mu.Lock()
	if e.shutdown {
		e.mu.Unlock()
		return speech.ErrEngineShutdown
	}
	cmd := exec.Command(e.bin, args...)
	e.cmd = cmd
	e.mu.Unlock()

	go e.run(cmd, u)
	return nil
}

// Cancel kills the in-flight synthesis process and stops playback.
func (e *Engine) Cancel() {
	e.mu.Lock()
	cmd := e.cmd
	e.cmd = nil
	e.mu.Unlock()

	if cmd != nil && cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
	_ = e.player.Stop()
}

// Shutdown cancels any utterance and closes the audio device.
func (e *Engine) Shutdown() error {
	e.mu.Lock()
	if e.shutdown {
		e.mu.Unlock()
		return nil
	}
	e.shutdown = true
	e.mu.Unlock()

	e.Cancel()
	return e.player.Close()
}

func (e *Engine) run(cmd *exec.Cmd, u *speech.Utterance) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	e.mu.Lock()
	cancelled := e.cmd != cmd
	if !cancelled {
		e.cmd = nil
	}
	e.mu.Unlock()
	if cancelled {
		return
	}

	fail := func(err error) {
		if u.OnError != nil {
			u.OnError(err)
		}
	}

	if err != nil {
		fail(fmt.Errorf("espeak failed: %w: %s", err, bytes.TrimSpace(stderr.Bytes())))
		return
	}

	pcm, err := pcmFromWAV(stdout.Bytes())
	if err != nil {
		fail(fmt.Errorf("unable to decode espeak output: %w", err))
		return
	}

	if u.OnStart != nil {
		u.OnStart()
	}
	if err := e.player.Play(pcm); err != nil {
		fail(fmt.Errorf("playback failed: %w", err))
		return
	}
	if u.OnEnd != nil {
		u.OnEnd()
	}
}

func (e *Engine) loadVoices() {
	args := append(e.baseArgs(), "--voices")
	out, err := exec.Command(e.bin, args...).Output()
	if err != nil {
		e.logger.Warn("unable to list espeak voices", "err", err)
		return
	}

	voices := parseVoices(out)
	e.mu.Lock()
	e.voices = voices
	fn := e.onVoices
	e.mu.Unlock()

	e.logger.Debug("voice inventory loaded", "count", len(voices))
	if fn != nil {
		fn()
	}
}

func (e *Engine) baseArgs() []string {
	if e.dataDir == "" {
		return nil
	}
	return []string{"--path", e.dataDir}
}

// scaleWPM applies the utterance rate multiplier to the base rate. espeak
// accepts 80 upward; anything outside is clamped.
func scaleWPM(base int, rate float64) int {
	if rate <= 0 {
		rate = 1.0
	}
	wpm := int(float64(base) * rate)
	if wpm < 80 {
		wpm = 80
	}
	if wpm > 450 {
		wpm = 450
	}
	return wpm
}

// scalePitch maps the 1.0-centered pitch multiplier onto espeak's 0-99
// range, 50 being the default.
func scalePitch(pitch float64) int {
	if pitch <= 0 {
		pitch = 1.0
	}
	p := int(50 * pitch)
	if p < 0 {
		p = 0
	}
	if p > 99 {
		p = 99
	}
	return p
}
