// Command roadrush-bench plays headless games with an autopilot at a fixed
// step and reports tick timings, per-system costs and scores.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/plus3/roadrush/config"
	"github.com/plus3/roadrush/game"
	"github.com/plus3/roadrush/geom"
	"github.com/plus3/roadrush/logging"
	"github.com/plus3/roadrush/world"
)

type benchOptions struct {
	Step        time.Duration
	Games       int
	MaxGameTime time.Duration
	Seed        uint64
	Width       float64
	Height      float64
}

// result is what one worker produced.
type result struct {
	Scores   []int
	Ticks    int64
	Sim      time.Duration
	Samples  []time.Duration
	Active   *world.SchedulerStats
	WindDown *world.SchedulerStats
	Traffic  trafficSampler
}

func main() {
	var (
		configPath     = flag.String("config", "", "path to a config file for the game tunables")
		duration       = flag.Duration("duration", 10*time.Second, "wall clock limit for the whole run")
		games          = flag.Int("games", 0, "number of games to play, 0 for as many as fit in -duration")
		workers        = flag.Int("workers", 1, "independent sessions played in parallel")
		step           = flag.Duration("step", time.Second/60, "fixed simulation step")
		maxGameTime    = flag.Duration("max-game-time", 5*time.Minute, "simulated time after which a game is abandoned")
		seed           = flag.Uint64("seed", 1, "base random seed, worker i uses seed+i; 0 for entropy")
		gcPauseMetrics = flag.Bool("gc-pause-metrics", false, "include GC pause totals in the report")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roadrush-bench: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Out: os.Stderr})

	gameCfg, err := cfg.GameConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	opts := benchOptions{
		Step:        *step,
		Games:       *games,
		MaxGameTime: *maxGameTime,
		Seed:        *seed,
		Width:       float64(cfg.Window.Width),
		Height:      float64(cfg.Window.Height),
	}
	report := &Report{
		Duration:       *duration,
		Step:           *step,
		Workers:        max(*workers, 1),
		GameLimit:      *games,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	log.Info().Dur("duration", *duration).Int("workers", report.Workers).Msg("starting bench")

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	results, err := runAll(ctx, gameCfg, opts, report.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("bench failed")
	}
	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)

	var (
		stats          []*world.SchedulerStats
		trafficTotal   int64
		trafficSamples int64
	)
	for _, res := range results {
		report.Scores.Samples = append(report.Scores.Samples, res.Scores...)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, res.Samples...)
		report.TotalTicks += res.Ticks
		report.SimulatedTime += res.Sim
		stats = append(stats, res.Active, res.WindDown)
		report.Commands += res.Active.Commands + res.WindDown.Commands
		report.PeakTraffic = max(report.PeakTraffic, res.Traffic.peak)
		trafficTotal += res.Traffic.total
		trafficSamples += res.Traffic.samples
	}
	if trafficSamples > 0 {
		report.AvgTraffic = float64(trafficTotal) / float64(trafficSamples)
	}
	report.Games = len(report.Scores.Samples)
	report.Scores.Finalize()
	report.UpdateTime.Finalize()
	report.Systems = mergeSystems(stats...)

	log.Info().Int("games", report.Games).Int64("ticks", report.TotalTicks).Msg("bench finished")

	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("failed to generate report")
	}
}

// runAll plays games on workers sessions until ctx ends or the game limit
// is reached.
func runAll(ctx context.Context, cfg game.Config, opts benchOptions, workers int, log zerolog.Logger) ([]result, error) {
	var (
		mu      sync.Mutex
		results []result
		started atomic.Int64
	)

	g, ctx := errgroup.WithContext(ctx)
	for i := range workers {
		g.Go(func() error {
			res, err := runWorker(ctx, i, cfg, opts, &started, log.With().Int("worker", i).Logger())
			if err != nil {
				return fmt.Errorf("worker %d: %w", i, err)
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runWorker plays games on one session. started is shared between workers
// to enforce opts.Games.
func runWorker(ctx context.Context, id int, cfg game.Config, opts benchOptions, started *atomic.Int64, log zerolog.Logger) (result, error) {
	rng := geom.NewEntropyRand()
	if opts.Seed != 0 {
		rng = geom.NewRand(opts.Seed + uint64(id))
	}

	var res result
	pilot := newAutopilot()
	s, err := game.New(cfg, opts.Width, opts.Height,
		game.WithRand(rng),
		game.WithInput(pilot),
		game.WithLogger(log),
		game.WithSystem(&res.Traffic),
	)
	if err != nil {
		return result{}, err
	}
	pilot.attach(s)

	dt := opts.Step.Seconds()

	for ctx.Err() == nil {
		if opts.Games > 0 && started.Add(1) > int64(opts.Games) {
			break
		}
		if err := begin(s); err != nil {
			return res, err
		}

		for s.State() == game.StateActive && s.Elapsed() < opts.MaxGameTime && ctx.Err() == nil {
			t0 := time.Now()
			s.Update(dt)
			res.Samples = append(res.Samples, time.Since(t0))
			res.Ticks++
		}

		if s.State() == game.StateActive && s.Elapsed() < opts.MaxGameTime {
			// cut short by ctx
			break
		}
		if s.State() == game.StateActive {
			log.Debug().Int("score", s.Score()).Msg("game abandoned")
			if err := s.Pause(); err != nil {
				return res, err
			}
		}
		res.Scores = append(res.Scores, s.Score())
		res.Sim += s.Elapsed()
	}

	res.Active, res.WindDown = s.Stats()
	return res, nil
}

// begin starts the first game of a session or restarts a finished one.
func begin(s *game.Session) error {
	if s.State() == game.StateIdle {
		return s.Start()
	}
	return s.Restart()
}
