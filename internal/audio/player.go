// Package audio plays short synthesized cues for game events.
// Any failure to reach the sound device leaves a silent player behind; the
// game itself never depends on audio.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Player turns simulation events into sound. It implements core.EventSink.
// A nil or silent Player ignores every event.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	play   func(beep.Streamer) // nil when silent
	closer func()
}

// speakerOnce guards the process-wide sound device, which can only be opened once.
var (
	speakerOnce sync.Once
	speakerErr  error
	mixer       = &beep.Mixer{}
)

func openSpeaker(rate beep.SampleRate) error {
	speakerOnce.Do(func() {
		if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
			speakerErr = fmt.Errorf("audio: init speaker: %w", err)
			return
		}
		speaker.Play(mixer)
	})
	return speakerErr
}

// New opens the sound device and returns a player for it. When audio is
// disabled or the device cannot be opened, a silent player is returned and
// the reason is logged.
func New(cfg config.AudioConfig, logger *log.Logger) *Player {
	if !cfg.Enabled {
		return Silent()
	}

	if err := openSpeaker(DefaultSampleRate); err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "err", err)
		}
		return Silent()
	}

	return &Player{
		rate:   DefaultSampleRate,
		volume: cfg.Volume,
		play: func(s beep.Streamer) {
			speaker.Lock()
			mixer.Add(s)
			speaker.Unlock()
		},
		closer: func() {
			speaker.Lock()
			mixer.Clear()
			speaker.Unlock()
		},
	}
}

// NewWithOutput creates a player that hands every cue to play instead of the
// sound device.
func NewWithOutput(rate beep.SampleRate, volume float64, play func(beep.Streamer)) *Player {
	return &Player{rate: rate, volume: volume, play: play}
}

// Silent returns a player that discards all events.
func Silent() *Player {
	return &Player{}
}

// Enabled reports whether the player produces sound.
func (p *Player) Enabled() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.play != nil
}

// Handle plays the cue for e.
func (p *Player) Handle(e core.Event) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.play == nil {
		return
	}
	cue := Cue(e, p.rate)
	if cue == nil {
		return
	}
	p.play(withVolume(cue, p.volume))
}

// Close stops pending cues and silences the player.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closer != nil {
		p.closer()
	}
	p.play = nil
	p.closer = nil
}
