package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// DefaultSampleRate is the rate cues are synthesized at.
const DefaultSampleRate = beep.SampleRate(44100)

// gameOverDelay separates the game-over jingle from the life-lost cue that
// fires on the same tick.
const gameOverDelay = 100 * time.Millisecond

// curve maps seconds since the start of a cue to a value.
type curve func(t float64) float64

// expRamp glides exponentially from a to b over d seconds, then holds b.
func expRamp(a, b, d float64) curve {
	return func(t float64) float64 {
		if t >= d {
			return b
		}
		return a * math.Pow(b/a, t/d)
	}
}

// hold keeps a until t0, then ramps exponentially to b by t1.
func hold(a, b, t0, t1 float64) curve {
	ramp := expRamp(a, b, t1-t0)
	return func(t float64) float64 {
		if t < t0 {
			return a
		}
		return ramp(t - t0)
	}
}

// steps jumps between fixed values every step seconds.
func steps(step float64, values ...float64) curve {
	return func(t float64) float64 {
		i := int(t / step)
		if i >= len(values) {
			i = len(values) - 1
		}
		return values[i]
	}
}

// voice is a sine oscillator with time-varying pitch and gain. The phase is
// accumulated so pitch changes stay click free.
type voice struct {
	rate  beep.SampleRate
	freq  curve
	gain  curve
	pos   int
	total int
	phase float64
}

func newVoice(rate beep.SampleRate, d time.Duration, freq, gain curve) *voice {
	return &voice{rate: rate, freq: freq, gain: gain, total: rate.N(d)}
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	if v.pos >= v.total {
		return 0, false
	}
	for i := range samples {
		if v.pos >= v.total {
			return i, true
		}
		t := float64(v.pos) / float64(v.rate)

		val := v.gain(t) * math.Sin(2*math.Pi*v.phase)
		samples[i][0] = val
		samples[i][1] = val

		v.phase += v.freq(t) / float64(v.rate)
		v.phase -= math.Floor(v.phase)
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// hopCue is a short rising chirp.
func hopCue(rate beep.SampleRate) beep.Streamer {
	return newVoice(rate, 100*time.Millisecond,
		expRamp(300, 400, 0.1),
		expRamp(0.3, 0.01, 0.1))
}

// goalCue is a four note ascending arpeggio.
func goalCue(rate beep.SampleRate) beep.Streamer {
	return newVoice(rate, 500*time.Millisecond,
		steps(0.1, 400, 500, 600, 800),
		hold(0.4, 0.01, 0.3, 0.5))
}

// deathCue is a falling sweep.
func deathCue(rate beep.SampleRate) beep.Streamer {
	return newVoice(rate, 500*time.Millisecond,
		expRamp(400, 100, 0.5),
		expRamp(0.5, 0.01, 0.5))
}

// gameOverCue is two falling voices a fifth apart, played after a short pause.
// Each voice carries half the gain so the mix stays inside [-1, 1].
func gameOverCue(rate beep.SampleRate) beep.Streamer {
	gain := expRamp(0.3, 0.005, 1)
	return beep.Seq(
		beep.Silence(rate.N(gameOverDelay)),
		beep.Mix(
			newVoice(rate, time.Second, expRamp(300, 150, 1), gain),
			newVoice(rate, time.Second, expRamp(200, 100, 1), gain),
		),
	)
}

// Cue returns the sound for a simulation event, or nil if the event is silent.
func Cue(e core.Event, rate beep.SampleRate) beep.Streamer {
	switch e {
	case core.EventMoveAccepted:
		return hopCue(rate)
	case core.EventGoalReached:
		return goalCue(rate)
	case core.EventLifeLost:
		return deathCue(rate)
	case core.EventGameOver:
		return gameOverCue(rate)
	default:
		return nil
	}
}

// withVolume scales a stream by a linear gain. Zero or less mutes it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
