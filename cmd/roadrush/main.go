// Command roadrush is the desktop frontend: an ebiten window drawing the
// session, keyboard, mouse and touch controls, synthesized sound and an
// optional Dear ImGui debug overlay.
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/plus3/roadrush/assets"
	"github.com/plus3/roadrush/audio"
	"github.com/plus3/roadrush/config"
	"github.com/plus3/roadrush/control"
	"github.com/plus3/roadrush/debugui"
	debugui_ebiten "github.com/plus3/roadrush/debugui/ebiten"
	"github.com/plus3/roadrush/game"
	"github.com/plus3/roadrush/geom"
	"github.com/plus3/roadrush/logging"
)

const assetTimeout = 10 * time.Second

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML, JSON or TOML config file")
		debug      = flag.Bool("debug", false, "show the debug overlay (toggle with F1)")
		seed       = flag.Uint64("seed", 0, "random seed, 0 for entropy (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roadrush: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Debug = true
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	log := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("roadrush exited")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	gameCfg, err := cfg.GameConfig()
	if err != nil {
		return err
	}

	set, err := loadAssets(cfg.AssetDir, log)
	if err != nil {
		return err
	}

	events := game.MultiSink{logging.NewEventLogger(log)}
	player := startAudio(cfg.Sound, log)
	if player != nil {
		defer player.Close()
		events = append(events, player)
	}

	rng := geom.NewEntropyRand()
	if cfg.Seed != 0 {
		rng = geom.NewRand(cfg.Seed)
	}

	controls := control.New()
	session, err := game.New(gameCfg,
		float64(cfg.Window.Width), float64(cfg.Window.Height),
		game.WithLogger(log),
		game.WithRand(rng),
		game.WithEvents(events),
		game.WithInput(controls),
	)
	if err != nil {
		return err
	}

	app := newApp(session, controls, newRenderer(set), player, log)

	if cfg.Debug {
		history := debugui.NewFrameHistory(120)
		overlay := debugui.NewSessionOverlay(session, history)
		overlay.Visible = true
		app.withOverlay(debugui_ebiten.New(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, overlay), history)
	} else {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Info().
		Int("width", cfg.Window.Width).
		Int("height", cfg.Window.Height).
		Bool("debug", cfg.Debug).
		Msg("starting")
	return ebiten.RunGame(app)
}

func loadAssets(dir string, log zerolog.Logger) (*assets.Set, error) {
	ctx, cancel := context.WithTimeout(context.Background(), assetTimeout)
	defer cancel()

	var fsys fs.FS
	if dir != "" {
		if _, err := os.Stat(dir); err == nil {
			fsys = os.DirFS(dir)
		} else {
			log.Warn().Err(err).Str("dir", dir).Msg("asset directory unavailable, using fallback shapes")
		}
	}

	set, err := assets.Load(ctx, fsys, assets.DefaultNames(), assets.Options{
		Logger: log.With().Str("component", "assets").Logger(),
	})
	if err != nil {
		return nil, err
	}
	ready, fallback := set.Counts()
	log.Info().Int("ready", ready).Int("fallback", fallback).Msg("assets loaded")
	return set, nil
}

// startAudio opens the speaker. A missing audio device is not fatal; the
// game runs silent.
func startAudio(cfg config.SoundConfig, log zerolog.Logger) *audio.Player {
	if !cfg.Enabled {
		return nil
	}
	player := audio.NewPlayer(audio.Options{
		SampleRate: beep.SampleRate(cfg.SampleRate),
		Volume:     cfg.Volume,
		Logger:     log.With().Str("component", "audio").Logger(),
	})
	if err := player.Start(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, running silent")
		return nil
	}
	return player
}
