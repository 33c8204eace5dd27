package game

import (
	"math"
	"time"

	"github.com/plus3/roadrush/effect"
	"github.com/plus3/roadrush/geom"
	"github.com/plus3/roadrush/vehicle"
	"github.com/plus3/roadrush/world"
)

func (s *Session) registerSystems() {
	s.active.RegisterNamed("speed", &speedSystem{s})
	s.active.RegisterNamed("road", &roadSystem{s})
	s.active.RegisterNamed("player", &playerSystem{s})
	s.active.RegisterNamed("enemies", &enemySystem{s})
	s.active.RegisterNamed("collisions", &collisionSystem{s: s})
	s.active.RegisterNamed("spawns", &spawnSystem{s})
	s.active.RegisterNamed("difficulty", &difficultySystem{s})
	s.active.RegisterNamed("effects", &effectSystem{})
	s.active.RegisterNamed("score", &scoreSystem{s})
	for _, sys := range s.extra {
		s.active.Register(sys)
	}

	s.windDown.RegisterNamed("speed", &speedSystem{s})
	s.windDown.RegisterNamed("road", &roadSystem{s})
	s.windDown.RegisterNamed("effects", &effectSystem{})
}

type speedSystem struct{ s *Session }

func (sys *speedSystem) Execute(frame *world.UpdateFrame) {
	s := sys.s
	switch {
	case s.player.Collided:
		s.speed *= s.cfg.CrashDecay
	case s.braking:
		s.speed *= s.cfg.BrakeFactor
	case s.boosting:
		s.speed += s.acceleration * s.cfg.BoostFactor * frame.DeltaTime
	default:
		s.speed += s.acceleration * frame.DeltaTime
	}
	s.speed = math.Min(s.speed, s.maxSpeed)
}

type roadSystem struct{ s *Session }

func (sys *roadSystem) Execute(frame *world.UpdateFrame) {
	sys.s.road.Update(frame.DeltaTime, sys.s.speed)
}

type playerSystem struct{ s *Session }

func (sys *playerSystem) Execute(frame *world.UpdateFrame) {
	sys.s.player.Update(frame.DeltaTime, sys.s.steering, sys.s.view)
}

type enemySystem struct{ s *Session }

func (sys *enemySystem) Execute(frame *world.UpdateFrame) {
	for id, v := range frame.Storage.Enemies() {
		if v.Update(frame.DeltaTime, 0, sys.s.view) || v.Collided {
			frame.Commands.Delete(id)
		}
	}
}

// collisionSystem tests the player against traffic and stops at the first
// hit. It is also the explosion sink for that hit.
type collisionSystem struct {
	s        *Session
	commands *world.Commands
}

func (sys *collisionSystem) Execute(frame *world.UpdateFrame) {
	s := sys.s
	if s.player.Collided {
		return
	}
	sys.commands = frame.Commands
	defer func() { sys.commands = nil }()

	for id, v := range frame.Storage.Enemies() {
		if !s.player.ResolveCollisionWith(v, sys) {
			continue
		}
		v.Collided = true
		frame.Commands.Delete(id)
		s.log.Debug().Stringer("enemy", id).Str("model", string(v.Model)).Msg("collision")
		frame.Commands.Defer(s.gameOver)
		return
	}
}

func (sys *collisionSystem) Explode(x, y float64) {
	s := sys.s
	for _, e := range effect.Explosion(s.rng, x, y, s.cfg.ExplosionParticles) {
		sys.commands.SpawnEffect(e)
	}
	s.events.OnExplosion(x, y)
}

type spawnSystem struct{ s *Session }

func (sys *spawnSystem) Execute(frame *world.UpdateFrame) {
	s := sys.s
	if s.player.Collided {
		return
	}
	s.spawnTimer += geom.Seconds(frame.DeltaTime)
	if s.spawnTimer < s.spawnInterval {
		return
	}
	s.spawnTimer = 0

	lane := s.rng.IntN(s.road.Lanes)
	model := geom.RandomChoice(s.rng, vehicle.EnemyModels)
	frame.Commands.SpawnEnemy(vehicle.NewEnemy(s.rng, s.road.LaneCenter(lane), lane, model))
}

type difficultySystem struct{ s *Session }

func (sys *difficultySystem) Execute(frame *world.UpdateFrame) {
	s := sys.s
	if s.player.Collided {
		return
	}
	step := geom.Seconds(frame.DeltaTime)
	s.elapsed += step
	s.difficultyTimer += step

	for s.difficultyTimer >= s.cfg.DifficultyPeriod {
		s.difficultyTimer -= s.cfg.DifficultyPeriod
		s.maxSpeed += s.cfg.MaxSpeedIncrement
		s.player.MaxSpeed += s.cfg.MaxSpeedIncrement
		s.spawnInterval = max(s.cfg.MinSpawnInterval,
			time.Duration(float64(s.spawnInterval)*s.cfg.SpawnDecay))

		s.log.Debug().
			Float64("max_speed", s.maxSpeed).
			Dur("spawn_interval", s.spawnInterval).
			Msg("difficulty increased")
	}
}

type effectSystem struct{}

func (effectSystem) Execute(frame *world.UpdateFrame) {
	for id, e := range frame.Storage.Effects() {
		if !e.Active() {
			frame.Commands.Delete(id)
			continue
		}
		e.Update(frame.DeltaTime)
	}
}

type scoreSystem struct{ s *Session }

func (sys *scoreSystem) Execute(frame *world.UpdateFrame) {
	s := sys.s
	if s.player.Collided {
		return
	}
	s.distance += s.speed * frame.DeltaTime
	if score := int(math.Floor(s.distance / 10)); score != s.score {
		s.score = score
		s.events.OnScoreChanged(score)
	}
}
