package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/roadrush/control"
	"github.com/plus3/roadrush/game"
)

type action uint8

const (
	actionNone action = iota
	actionConfirm
	actionPause
	actionRestart
	actionHorn
	actionMute
	actionOverlay
	actionQuit
)

var keyActions = []struct {
	key    ebiten.Key
	action action
}{
	{ebiten.KeyEnter, actionConfirm},
	{ebiten.KeyEscape, actionPause},
	{ebiten.KeyP, actionPause},
	{ebiten.KeyR, actionRestart},
	{ebiten.KeySpace, actionHorn},
	{ebiten.KeyM, actionMute},
	{ebiten.KeyF1, actionOverlay},
	{ebiten.KeyQ, actionQuit},
}

// pointer is one mouse button or touch currently held.
type pointer struct {
	x, y float64
}

// inputState maps keyboard, mouse and touch onto the driver controls.
type inputState struct {
	controls *control.Controls

	// wheelOwner is the pointer dragging the wheel while wheelHeld: the
	// mouse or a touch id.
	wheelOwner ebiten.TouchID
	wheelHeld  bool
	touchIDs   []ebiten.TouchID
}

const mouseOwner ebiten.TouchID = -1

func newInputState(controls *control.Controls) *inputState {
	return &inputState{controls: controls}
}

// actions returns the actions whose keys were pressed this frame.
func (in *inputState) actions() []action {
	var out []action
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			out = append(out, ka.action)
		}
	}
	return out
}

// poll samples steering and pedals for the next tick.
func (in *inputState) poll(hud hudLayout, dt float64, captured bool) {
	if captured || !ebiten.IsFocused() {
		in.controls.Release()
		in.wheelHeld = false
		return
	}

	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	brake := ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
	accel := ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)

	pointers := make(map[ebiten.TouchID]pointer)
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pointers[mouseOwner] = pointer{float64(x), float64(y)}
	}
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	for _, id := range in.touchIDs {
		x, y := ebiten.TouchPosition(id)
		pointers[id] = pointer{float64(x), float64(y)}
	}

	wheel := in.controls.Wheel
	if in.wheelHeld {
		if p, ok := pointers[in.wheelOwner]; ok {
			wheel.DragTo(p.x)
		} else {
			wheel.EndDrag()
			in.wheelHeld = false
		}
	}

	for id, p := range pointers {
		switch {
		case contains(hud.Brake, p.x, p.y):
			brake = true
		case contains(hud.Accelerate, p.x, p.y):
			accel = true
		case !in.wheelHeld && hud.onWheel(p.x, p.y) && in.justPressed(id):
			wheel.BeginDrag(p.x)
			in.wheelOwner = id
			in.wheelHeld = true
		}
	}

	wheel.SetKeys(left, right)
	wheel.Update(dt)
	in.controls.SetPedals(brake, accel)
}

func (in *inputState) justPressed(id ebiten.TouchID) bool {
	if id == mouseOwner {
		return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	}
	return inpututil.TouchPressDuration(id) == 1
}

func (in *inputState) view() controlsView {
	return controlsView{
		wheelAngle:   in.controls.Wheel.Angle(),
		braking:      in.controls.Brake(),
		accelerating: in.controls.Accelerate(),
	}
}

// apply runs one action against the app. Transitions that do not apply to
// the current state are ignored.
func (a *App) apply(act action) error {
	s := a.session
	var err error
	switch act {
	case actionConfirm:
		switch s.State() {
		case game.StateIdle:
			err = s.Start()
		case game.StateOver:
			err = s.Restart()
		}
	case actionPause:
		if st := s.State(); st == game.StateActive || st == game.StatePaused {
			err = s.TogglePause()
		}
	case actionRestart:
		if st := s.State(); st == game.StateOver || st == game.StatePaused {
			err = s.Restart()
		}
	case actionHorn:
		if a.audio != nil {
			a.audio.Horn()
		}
	case actionMute:
		if a.audio != nil {
			muted := a.audio.ToggleMute()
			a.log.Info().Bool("muted", muted).Msg("sound toggled")
		}
	case actionOverlay:
		if a.overlay != nil {
			a.overlay.Toggle()
		}
	case actionQuit:
		return ebiten.Termination
	}

	if errors.Is(err, game.ErrInvalidTransition) {
		a.log.Debug().Err(err).Msg("ignored input")
		return nil
	}
	return err
}
