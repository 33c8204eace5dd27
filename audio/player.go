// Package audio synthesizes the game's sound effects and engine hum with
// beep and plays them through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/plus3/roadrush/game"
)

// DefaultSampleRate is used when Options.SampleRate is zero.
const DefaultSampleRate = beep.SampleRate(44100)

// Options configure a Player.
type Options struct {
	SampleRate beep.SampleRate
	// Volume is linear in [0, 1].
	Volume float64
	Muted  bool
	Logger zerolog.Logger
	// EngineBase is the hum frequency at pitch 1, in Hz.
	EngineBase float64
}

// Player mixes one-shot effects with the engine hum and the background
// music. It implements
// game.EventSink; all methods are safe to call from the tick goroutine
// while the speaker streams.
type Player struct {
	rate   beep.SampleRate
	log    zerolog.Logger
	mixer  *beep.Mixer
	master *effects.Volume
	engine *engineHum
	idle   *beep.Ctrl
	music  beep.StreamSeeker
	band   *beep.Ctrl

	mu         sync.Mutex
	started    bool
	zeroVolume bool
	muted      atomic.Bool
	played     [3]atomic.Int64
}

// NewPlayer builds the mixer graph without touching the audio device.
func NewPlayer(opts Options) *Player {
	rate := opts.SampleRate
	if rate == 0 {
		rate = DefaultSampleRate
	}
	base := opts.EngineBase
	if base <= 0 {
		base = 55
	}

	p := &Player{
		rate:   rate,
		log:    opts.Logger,
		mixer:  &beep.Mixer{},
		engine: newEngineHum(base, rate),
		music:  NewMusic(rate),
	}
	p.idle = &beep.Ctrl{Streamer: newVolume(p.engine, 0.15), Paused: true}
	p.band = &beep.Ctrl{Streamer: newVolume(p.music, 0.1), Paused: true}
	p.mixer.Add(p.idle, p.band)
	p.master = newVolume(p.mixer, opts.Volume)
	p.zeroVolume = p.master.Silent
	p.muted.Store(opts.Muted)
	p.master.Silent = p.zeroVolume || opts.Muted
	return p
}

// Start opens the speaker and begins streaming.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.master)
	p.started = true
	p.log.Debug().Int("rate", int(p.rate)).Msg("audio started")
	return nil
}

// Close stops playback. The player can not be restarted.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Clear()
	p.started = false
}

// Output is the master stream, for playing through something other than
// the speaker.
func (p *Player) Output() beep.Streamer {
	return p.master
}

// locked runs fn while the speaker is not reading the mixer graph.
func (p *Player) locked(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// Play queues a one-shot sound. Muted players drop it.
func (p *Player) Play(s Sound) {
	if p.muted.Load() {
		return
	}
	streamer := NewSound(s, p.rate)
	if streamer == nil {
		return
	}
	p.played[s].Add(1)
	p.locked(func() { p.mixer.Add(streamer) })
}

// Played counts how often s was queued.
func (p *Player) Played(s Sound) int64 {
	if s < 0 || int(s) >= len(p.played) {
		return 0
	}
	return p.played[s].Load()
}

// Horn sounds the horn.
func (p *Player) Horn() {
	p.Play(SoundHorn)
}

// SetMuted silences all output.
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
	p.locked(func() { p.master.Silent = muted || p.zeroVolume })
	p.log.Debug().Bool("muted", muted).Msg("sound toggled")
}

// ToggleMute flips the mute state and returns the new one.
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.SetMuted(muted)
	return muted
}

func (p *Player) Muted() bool {
	return p.muted.Load()
}

// EnginePitch returns the current hum multiplier.
func (p *Player) EnginePitch() float64 {
	return p.engine.Pitch()
}

func (p *Player) OnExplosion(x, y float64) {
	p.Play(SoundCrash)
}

func (p *Player) OnGameOver(score int) {
	p.Play(SoundGameOver)
}

func (p *Player) OnScoreChanged(score int) {}

func (p *Player) OnSpeedChanged(speed, maxSpeed float64) {
	p.engine.SetPitch(EnginePitch(speed, maxSpeed))
}

// MusicPosition is the sample offset into the music loop.
func (p *Player) MusicPosition() int {
	var pos int
	p.locked(func() { pos = p.music.Position() })
	return pos
}

// OnStateChanged runs the engine hum and the music only while the game is
// active. A new game starts the music from the top; resuming continues it.
func (p *Player) OnStateChanged(from, to game.State) {
	running := to == game.StateActive
	p.locked(func() {
		if running && from != game.StatePaused {
			if err := p.music.Seek(0); err != nil {
				p.log.Warn().Err(err).Msg("rewind music")
			}
		}
		p.idle.Paused = !running
		p.band.Paused = !running
	})
}

var _ game.EventSink = (*Player)(nil)
