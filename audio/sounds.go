package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
)

// Sound identifies a one-shot effect.
type Sound int

const (
	SoundCrash Sound = iota
	SoundGameOver
	SoundHorn
)

func (s Sound) String() string {
	switch s {
	case SoundCrash:
		return "crash"
	case SoundGameOver:
		return "game-over"
	case SoundHorn:
		return "horn"
	}
	return fmt.Sprintf("sound(%d)", int(s))
}

// Durations of the one-shot effects.
const (
	CrashDuration    = 700 * time.Millisecond
	HornDuration     = 400 * time.Millisecond
	GameOverNote     = 220 * time.Millisecond
	gameOverNotes    = 3
	GameOverDuration = GameOverNote * gameOverNotes
)

// NewSound builds a fresh streamer for s. It returns nil for unknown
// sounds.
func NewSound(s Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case SoundCrash:
		return crashSound(rate)
	case SoundGameOver:
		return gameOverSound(rate)
	case SoundHorn:
		return hornSound(rate)
	}
	return nil
}

// crashSound is a burst of noise over a falling thump.
func crashSound(rate beep.SampleRate) beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, CrashDuration, WaveNoise, rate),
		CrashDuration, 5*time.Millisecond, 600*time.Millisecond, rate)
	thump := NewEnvelope(NewSweep(120, 30, CrashDuration, WaveSquare, rate),
		CrashDuration, 5*time.Millisecond, 400*time.Millisecond, rate)

	return beep.Mix(newVolume(noise, 0.6), newVolume(thump, 0.4))
}

// gameOverSound steps down a minor third per note.
func gameOverSound(rate beep.SampleRate) beep.Streamer {
	freqs := [gameOverNotes]float64{440, 370, 311}
	notes := make([]beep.Streamer, 0, gameOverNotes)
	for _, f := range freqs {
		osc := NewOscillator(f, GameOverNote, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, GameOverNote, 10*time.Millisecond, 80*time.Millisecond, rate))
	}
	return newVolume(beep.Seq(notes...), 0.35)
}

// hornSound is two detuned squares, the classic car horn interval.
func hornSound(rate beep.SampleRate) beep.Streamer {
	lo := NewEnvelope(NewOscillator(400, HornDuration, WaveSquare, rate),
		HornDuration, 10*time.Millisecond, 60*time.Millisecond, rate)
	hi := NewEnvelope(NewOscillator(500, HornDuration, WaveSquare, rate),
		HornDuration, 10*time.Millisecond, 60*time.Millisecond, rate)
	return beep.Mix(newVolume(lo, 0.25), newVolume(hi, 0.25))
}
