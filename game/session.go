// Package game runs a single play session: the lifecycle state machine,
// the per-tick systems and the frame driver.
package game

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/plus3/roadrush/geom"
	"github.com/plus3/roadrush/road"
	"github.com/plus3/roadrush/vehicle"
	"github.com/plus3/roadrush/world"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.baseLog = log }
}

// WithRand injects the random source used for traffic, road and effects.
func WithRand(r geom.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithEvents sets the event sink.
func WithEvents(events EventSink) Option {
	return func(s *Session) { s.events = events }
}

// WithInput sets the input source.
func WithInput(input InputSource) Option {
	return func(s *Session) { s.input = input }
}

// WithSystem appends an extra system to the active schedule, after the
// built-in ones. It is listed in the stats under its type name.
func WithSystem(sys world.System) Option {
	return func(s *Session) { s.extra = append(s.extra, sys) }
}

// Session owns the road, the player, the live traffic and effects, and the
// counters of one game. It is not safe for concurrent use.
type Session struct {
	cfg     Config
	baseLog zerolog.Logger
	log     zerolog.Logger
	rng     geom.Rand
	events  EventSink
	input   InputSource
	extra   []world.System

	view  vehicle.Viewport
	state State
	runID uuid.UUID

	road    *road.Road
	player  *vehicle.Vehicle
	storage *world.Storage

	active   *world.Scheduler
	windDown *world.Scheduler

	steering   float64
	braking    bool
	boosting   bool
	reportedAt float64

	score           int
	distance        float64
	speed           float64
	maxSpeed        float64
	acceleration    float64
	spawnTimer      time.Duration
	spawnInterval   time.Duration
	difficultyTimer time.Duration
	elapsed         time.Duration
}

// New creates an idle session for a width x height viewport. The world is
// laid out immediately so the idle screen can be drawn.
func New(cfg Config, width, height float64, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:     cfg,
		baseLog: zerolog.Nop(),
		events:  NopSink{},
		input:   FixedInput{},
		view:    vehicle.Viewport{Width: width, Height: height},
		storage: world.NewStorage(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = geom.NewEntropyRand()
	}

	s.active = world.NewScheduler(s.storage)
	s.windDown = world.NewScheduler(s.storage)
	s.registerSystems()

	s.reset()
	return s, nil
}

func (s *Session) reset() {
	s.runID = uuid.New()
	s.log = s.baseLog.With().Stringer("run", s.runID).Logger()

	s.road = road.New(s.view.Width, s.view.Height, s.cfg.Lanes, s.rng)
	s.player = vehicle.NewPlayer(s.view.Width/2, s.view.Height*s.cfg.PlayerAnchor)
	s.storage.Clear()

	s.score = 0
	s.distance = 0
	s.speed = 0
	s.maxSpeed = s.cfg.MaxSpeed
	s.player.MaxSpeed = s.cfg.MaxSpeed
	s.acceleration = s.cfg.Acceleration
	s.spawnTimer = 0
	s.spawnInterval = s.cfg.SpawnInterval
	s.difficultyTimer = 0
	s.elapsed = 0
	s.reportedAt = math.NaN()
}

func (s *Session) setState(to State) {
	from := s.state
	s.state = to
	s.log.Info().Stringer("from", from).Stringer("to", to).Msg("state changed")
	s.events.OnStateChanged(from, to)
}

// Start begins play from the idle state.
func (s *Session) Start() error {
	if s.state != StateIdle {
		return transitionError("start", s.state)
	}
	s.reset()
	s.setState(StateActive)
	return nil
}

// Restart rebuilds the world and begins a fresh game. It applies after a
// game over and while paused.
func (s *Session) Restart() error {
	if s.state != StateOver && s.state != StatePaused {
		return transitionError("restart", s.state)
	}
	s.reset()
	s.setState(StateActive)
	return nil
}

// Pause freezes an active game.
func (s *Session) Pause() error {
	if s.state != StateActive {
		return transitionError("pause", s.state)
	}
	s.setState(StatePaused)
	return nil
}

// Resume continues a paused game.
func (s *Session) Resume() error {
	if s.state != StatePaused {
		return transitionError("resume", s.state)
	}
	s.setState(StateActive)
	return nil
}

// TogglePause pauses an active game or resumes a paused one.
func (s *Session) TogglePause() error {
	if s.state == StatePaused {
		return s.Resume()
	}
	return s.Pause()
}

// Update advances the simulation by dt seconds, clamped to
// [0, Config.MaxDeltaTime]; NaN counts as 0. Idle and paused sessions do
// not change.
func (s *Session) Update(dt float64) {
	if math.IsNaN(dt) {
		dt = 0
	}
	dt = geom.Clamp(dt, 0, s.cfg.MaxDeltaTime)

	switch s.state {
	case StateActive:
		s.steering = sampleSteering(s.input)
		s.braking = s.input.Brake()
		s.boosting = s.input.Accelerate()
		s.active.Once(dt)
	case StateOver:
		s.windDown.Once(dt)
	default:
		return
	}

	if s.speed != s.reportedAt {
		s.reportedAt = s.speed
		s.events.OnSpeedChanged(s.speed, s.maxSpeed)
	}
}

// Draw hands the scene to sink in draw order.
func (s *Session) Draw(sink PresentationSink) {
	sink.DrawRoad(s.road)
	for _, v := range s.storage.Enemies() {
		sink.DrawVehicle(v)
	}
	sink.DrawVehicle(s.player)
	for _, e := range s.storage.Effects() {
		sink.DrawEffect(e)
	}
}

// Resize adapts the road and the player to a new viewport.
func (s *Session) Resize(width, height float64) {
	s.view = vehicle.Viewport{Width: width, Height: height}
	s.road.Resize(width, height)
	s.player.Y = height * s.cfg.PlayerAnchor
	s.player.ClampTo(width)
	s.log.Debug().Float64("width", width).Float64("height", height).Msg("resized")
}

func (s *Session) gameOver() {
	s.setState(StateOver)
	s.log.Info().
		Int("score", s.score).
		Float64("distance", s.distance).
		Dur("elapsed", s.elapsed).
		Msg("game over")
	s.events.OnGameOver(s.score)
}

func (s *Session) State() State                 { return s.state }
func (s *Session) Config() Config               { return s.cfg }
func (s *Session) RunID() uuid.UUID             { return s.runID }
func (s *Session) Score() int                   { return s.score }
func (s *Session) Distance() float64            { return s.distance }
func (s *Session) Speed() float64               { return s.speed }
func (s *Session) MaxSpeed() float64            { return s.maxSpeed }
func (s *Session) SpawnInterval() time.Duration { return s.spawnInterval }
func (s *Session) Elapsed() time.Duration       { return s.elapsed }
func (s *Session) Viewport() vehicle.Viewport   { return s.view }
func (s *Session) Road() *road.Road             { return s.road }
func (s *Session) Player() *vehicle.Vehicle     { return s.player }

// Storage exposes the live enemies and effects for inspection.
func (s *Session) Storage() *world.Storage { return s.storage }

// Stats returns timing statistics for the active and wind-down schedules.
func (s *Session) Stats() (active, windDown *world.SchedulerStats) {
	return s.active.GetStats(), s.windDown.GetStats()
}
