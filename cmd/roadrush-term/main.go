// Command roadrush-term plays the game in a terminal. Logs go to a file
// since the screen is taken over.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/rs/zerolog"

	"github.com/plus3/roadrush/audio"
	"github.com/plus3/roadrush/config"
	"github.com/plus3/roadrush/control"
	"github.com/plus3/roadrush/game"
	"github.com/plus3/roadrush/geom"
	"github.com/plus3/roadrush/logging"
)

const frameInterval = 16 * time.Millisecond

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML, JSON or TOML config file")
		logPath    = flag.String("log", "roadrush-term.log", "log file")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roadrush-term: %v\n", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roadrush-term: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	log := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Out:     logFile,
		NoColor: true,
	})

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("roadrush-term exited")
		fmt.Fprintf(os.Stderr, "roadrush-term: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	gameCfg, err := cfg.GameConfig()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	events := game.MultiSink{logging.NewEventLogger(log)}
	var player *audio.Player
	if cfg.Sound.Enabled {
		player = audio.NewPlayer(audio.Options{
			SampleRate: beep.SampleRate(cfg.Sound.SampleRate),
			Volume:     cfg.Sound.Volume,
			Logger:     log.With().Str("component", "audio").Logger(),
		})
		if err := player.Start(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, running silent")
			player = nil
		} else {
			defer player.Close()
			events = append(events, player)
		}
	}

	rng := geom.NewEntropyRand()
	if cfg.Seed != 0 {
		rng = geom.NewRand(cfg.Seed)
	}

	controls := control.New()
	width, height := viewportFor(screen.Size())
	session, err := game.New(gameCfg, width, height,
		game.WithLogger(log),
		game.WithRand(rng),
		game.WithEvents(events),
		game.WithInput(controls),
	)
	if err != nil {
		return err
	}

	c := &canvas{screen: screen}
	driver := game.NewDriver(session, c)
	keys := newKeyboard(controls)

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	driver.BeforeFrame = keys.sample
	driver.AfterFrame = func(time.Duration) {
		c.drawHUD(session, player != nil && player.Muted())
		screen.Show()
	}

	go pumpEvents(ctx, screen, driver, func(ev tcell.Event) {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			cmd := keys.handle(ev, driver.Since())
			if err := execute(cmd, session, player, log); err != nil {
				cancel(err)
			}
		case *tcell.EventResize:
			screen.Sync()
			session.Resize(viewportFor(screen.Size()))
		}
	})

	driver.Run(ctx, frameInterval)
	if err := context.Cause(ctx); !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

// pumpEvents hands terminal events to the driver goroutine until the screen
// is finalised or ctx ends.
func pumpEvents(ctx context.Context, screen tcell.Screen, driver *game.Driver, handle func(tcell.Event)) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if !driver.Do(ctx, func() { handle(ev) }) {
			return
		}
	}
}
