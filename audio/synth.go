package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/plus3/roadrush/geom"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

func sample(wave WaveType, phase float64, r geom.Rand) float64 {
	switch wave {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveNoise:
		return r.Float64()*2 - 1
	}
	return 0
}

// oscillator generates a fixed-length wave, optionally sliding in pitch.
type oscillator struct {
	freq     float64
	slide    float64 // Hz per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      geom.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return newSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator whose frequency moves linearly from one
// value to another over its duration.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return newSweep(from, to, duration, wave, rate)
}

func newSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	o := &oscillator{
		freq:     from,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      geom.NewEntropyRand(),
	}
	if duration > 0 {
		o.slide = (to - from) / duration.Seconds()
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := sample(o.wave, o.phase, o.rng)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.freq += o.slide / float64(o.rate)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s in a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero and below is silent because the volume
// effect works in log space.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// engineHum is an endless low saw whose pitch follows the car speed. The
// pitch is written from the tick goroutine and read by the speaker.
type engineHum struct {
	base  float64
	pitch atomic.Uint64
	phase float64
	rate  beep.SampleRate
}

func newEngineHum(base float64, rate beep.SampleRate) *engineHum {
	e := &engineHum{base: base, rate: rate}
	e.SetPitch(EnginePitch(0, 1))
	return e
}

// EnginePitch maps speed to a playback rate multiplier in [0.5, 2].
func EnginePitch(speed, maxSpeed float64) float64 {
	if maxSpeed <= 0 {
		return 0.5
	}
	return 0.5 + geom.Clamp(speed/maxSpeed, 0, 1)*1.5
}

func (e *engineHum) SetPitch(p float64) {
	e.pitch.Store(math.Float64bits(p))
}

func (e *engineHum) Pitch() float64 {
	return math.Float64frombits(e.pitch.Load())
}

func (e *engineHum) Stream(samples [][2]float64) (n int, ok bool) {
	step := e.base * e.Pitch() / float64(e.rate)
	for i := range samples {
		val := 0.7*sample(WaveSaw, e.phase, nil) + 0.3*sample(WaveSine, e.phase, nil)
		samples[i][0] = val
		samples[i][1] = val
		e.phase += step
		e.phase -= math.Floor(e.phase)
	}
	return len(samples), true
}

func (e *engineHum) Err() error { return nil }
