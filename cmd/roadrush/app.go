package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/plus3/roadrush/audio"
	"github.com/plus3/roadrush/control"
	"github.com/plus3/roadrush/debugui"
	debugui_ebiten "github.com/plus3/roadrush/debugui/ebiten"
	"github.com/plus3/roadrush/game"
)

// App implements ebiten.Game around one session.
type App struct {
	session  *game.Session
	driver   *game.Driver
	input    *inputState
	renderer *renderer
	audio    *audio.Player
	log      zerolog.Logger

	overlay *debugui.Overlay
	imgui   *debugui_ebiten.ImguiBackend
	history *debugui.FrameHistory

	start      time.Time
	lastUpdate time.Time
	width      int
	height     int
}

func newApp(session *game.Session, controls *control.Controls, r *renderer, player *audio.Player, log zerolog.Logger) *App {
	view := session.Viewport()
	now := time.Now()
	return &App{
		session:    session,
		driver:     game.NewDriver(session, nil),
		input:      newInputState(controls),
		renderer:   r,
		audio:      player,
		log:        log,
		start:      now,
		lastUpdate: now,
		width:      int(view.Width),
		height:     int(view.Height),
	}
}

// withOverlay attaches the ImGui debug overlay.
func (a *App) withOverlay(backend *debugui_ebiten.ImguiBackend, history *debugui.FrameHistory) {
	a.imgui = backend
	a.overlay = backend.Overlay
	a.history = history
}

func (a *App) Update() error {
	now := time.Now()
	frame := now.Sub(a.lastUpdate).Seconds()
	a.lastUpdate = now
	if a.history != nil {
		a.history.Push(frame)
	}

	captured := a.overlay != nil && a.overlay.Visible &&
		(a.overlay.Input.WantCaptureKeyboard || a.overlay.Input.WantCaptureMouse)

	if !captured {
		for _, act := range a.input.actions() {
			if err := a.apply(act); err != nil {
				return err
			}
		}
	}

	a.input.poll(layoutHUD(float64(a.width), float64(a.height)), frame, captured)
	a.driver.Frame(now.Sub(a.start))

	if a.imgui != nil {
		a.imgui.Update()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.begin(screen)
	a.session.Draw(a.renderer)
	a.renderer.drawHUD(a.session, layoutHUD(float64(a.width), float64(a.height)), a.input.view())

	if a.imgui != nil {
		a.imgui.DrawOverlay(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.session.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	if a.imgui != nil {
		a.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
