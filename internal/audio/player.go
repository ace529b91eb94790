// Package audio provides PCM playback for synthesized announcements using
// oto.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Config describes the PCM stream the player accepts.
type Config struct {
	SampleRate int // Hz
	Channels   int // 1 = mono, 2 = stereo
}

// DefaultConfig matches espeak-ng output: 22050 Hz mono 16-bit.
func DefaultConfig() Config {
	return Config{
		SampleRate: 22050,
		Channels:   1,
	}
}

// Player plays 16-bit little-endian PCM through the system audio device.
// Announcements are short one-shot clips, so there is no pause, resume or
// seeking; Play blocks until done and Stop aborts.
type Player struct {
	mu      sync.Mutex
	context *oto.Context
	player  *oto.Player

	// The buffer backing the active oto player must stay referenced until
	// playback finishes or the device plays static.
	active []byte

	sampleRate int
	channels   int
	closed     bool
}

// NewPlayer opens the system audio device.
func NewPlayer(cfg Config) (*Player, error) {
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", cfg.SampleRate)
	}
	if cfg.Channels != 1 && cfg.Channels != 2 {
		return nil, fmt.Errorf("channels must be 1 or 2, got %d", cfg.Channels)
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   cfg.SampleRate,
		ChannelCount: cfg.Channels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open audio device: %w", err)
	}
	<-ready

	return &Player{
		context:    ctx,
		sampleRate: cfg.SampleRate,
		channels:   cfg.Channels,
	}, nil
}

// Play plays pcm and blocks until playback completes or Stop is called.
func (p *Player) Play(pcm []byte) error {
	if len(pcm) == 0 {
		return errors.New("audio data is empty")
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return errors.New("player is closed")
	}
	p.stopLocked()

	data := make([]byte, len(pcm))
	copy(data, pcm)

	pl := p.context.NewPlayer(bytes.NewReader(data))
	p.player = pl
	p.active = data
	p.mu.Unlock()

	pl.Play()

	for {
		p.mu.Lock()
		if p.player != pl {
			// Stopped or replaced from another goroutine.
			p.mu.Unlock()
			return nil
		}
		playing := pl.IsPlaying()
		if !playing {
			p.player = nil
			p.active = nil
		}
		p.mu.Unlock()

		if !playing {
			return pl.Close()
		}
		time.Sleep(20 * time.Millisecond)
	}
}

// Stop halts the active playback, if any.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	return nil
}

func (p *Player) stopLocked() {
	if p.player != nil {
		p.player.Pause()
		_ = p.player.Close()
		p.player = nil
		p.active = nil
	}
}

// Close stops playback and releases the device. oto contexts have no close
// in v3; dropping the reference lets it be collected.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	p.context = nil
	p.closed = true
	return nil
}
