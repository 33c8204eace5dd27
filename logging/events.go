package logging

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/plus3/roadrush/game"
)

// EventLogger writes game events to a logger. Speed changes arrive every
// tick, so they are sampled.
type EventLogger struct {
	log   zerolog.Logger
	speed zerolog.Logger
}

// NewEventLogger tags every line with component=events.
func NewEventLogger(log zerolog.Logger) *EventLogger {
	log = log.With().Str("component", "events").Logger()
	return &EventLogger{
		log: log,
		speed: log.Sample(&zerolog.BurstSampler{
			Burst:       5,
			Period:      time.Second,
			NextSampler: &zerolog.BasicSampler{N: 100},
		}),
	}
}

func (l *EventLogger) OnExplosion(x, y float64) {
	l.log.Info().Float64("x", x).Float64("y", y).Msg("explosion")
}

func (l *EventLogger) OnGameOver(score int) {
	l.log.Info().Int("score", score).Msg("game over")
}

func (l *EventLogger) OnScoreChanged(score int) {
	l.log.Debug().Int("score", score).Msg("score")
}

func (l *EventLogger) OnSpeedChanged(speed, maxSpeed float64) {
	l.speed.Debug().Float64("speed", speed).Float64("max_speed", maxSpeed).Msg("speed")
}

func (l *EventLogger) OnStateChanged(from, to game.State) {
	l.log.Debug().Stringer("from", from).Stringer("to", to).Msg("state")
}

var _ game.EventSink = (*EventLogger)(nil)
