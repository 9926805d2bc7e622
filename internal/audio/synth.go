package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is the rate every cue is rendered at.
const SampleRate = beep.SampleRate(48000)

// secs converts float seconds to a duration.
func secs(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Waveform types
const (
	waveSine = iota
	waveSaw
	waveTriangle
)

// sweep selects how frequency moves from f0 to f1 over a tone.
type sweep int

const (
	sweepNone sweep = iota
	sweepLinear
	sweepExp
)

// tone is one oscillator voice with a linear gain ramp down to silence.
type tone struct {
	wave  int
	f0    float64
	f1    float64
	sweep sweep
	gain  float64
	start float64 // Seconds from cue start
	dur   float64 // Seconds
}

// cueTones describes each cue as a set of voices.
var cueTones = map[Cue][]tone{
	CueCatch: {
		{wave: waveSine, f0: 500, f1: 1000, sweep: sweepExp, gain: 0.1, dur: 0.1},
	},
	CueBad: {
		{wave: waveSaw, f0: 150, f1: 100, sweep: sweepLinear, gain: 0.08, dur: 0.15},
	},
	CueStart: {
		{wave: waveTriangle, f0: 440, gain: 0.05, start: 0.0, dur: 0.2},
		{wave: waveTriangle, f0: 554, gain: 0.05, start: 0.1, dur: 0.2},
		{wave: waveTriangle, f0: 659, gain: 0.05, start: 0.2, dur: 0.2},
	},
	CueGameOver: {
		{wave: waveTriangle, f0: 600, gain: 0.08, start: 0.0, dur: 0.15},
		{wave: waveTriangle, f0: 500, gain: 0.08, start: 0.2, dur: 0.15},
		{wave: waveTriangle, f0: 400, gain: 0.08, start: 0.4, dur: 0.15},
		{wave: waveTriangle, f0: 300, gain: 0.08, start: 0.6, dur: 0.15},
	},
}

// frequency returns the instantaneous frequency at fraction p of the tone.
func (t tone) frequency(p float64) float64 {
	switch t.sweep {
	case sweepLinear:
		return t.f0 + (t.f1-t.f0)*p
	case sweepExp:
		return t.f0 * math.Pow(t.f1/t.f0, p)
	default:
		return t.f0
	}
}

func sample(wave int, phase float64) float64 {
	switch wave {
	case waveSaw:
		return 2.0 * (phase - 0.5)
	case waveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Render synthesizes a cue into stereo samples at the given rate.
// Unknown cues render to nil.
func Render(c Cue, rate beep.SampleRate) [][2]float64 {
	tones, ok := cueTones[c]
	if !ok {
		return nil
	}

	var total int
	for _, t := range tones {
		total = max(total, rate.N(secs(t.start+t.dur)))
	}

	out := make([][2]float64, total)
	for _, t := range tones {
		offset := rate.N(secs(t.start))
		n := rate.N(secs(t.dur))
		phase := 0.0
		for i := 0; i < n && offset+i < total; i++ {
			p := float64(i) / float64(n)
			v := sample(t.wave, phase) * t.gain * (1 - p)
			out[offset+i][0] += v
			out[offset+i][1] += v

			phase += t.frequency(p) / float64(rate)
			if phase >= 1.0 {
				phase -= 1.0
			}
		}
	}
	return out
}
