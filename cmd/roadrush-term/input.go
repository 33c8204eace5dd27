package main

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/plus3/roadrush/audio"
	"github.com/plus3/roadrush/control"
	"github.com/plus3/roadrush/game"
)

// holdWindow is how long a key counts as held after its last press or
// repeat. Terminals report no key releases.
const holdWindow = 150 * time.Millisecond

// latch remembers when a key was last seen.
type latch struct {
	at time.Duration
	ok bool
}

func (l *latch) press(now time.Duration) {
	l.at = now
	l.ok = true
}

func (l *latch) held(now time.Duration) bool {
	return l.ok && now-l.at < holdWindow
}

type command uint8

const (
	cmdNone command = iota
	cmdConfirm
	cmdPause
	cmdRestart
	cmdHorn
	cmdMute
	cmdQuit
)

// keyboard folds terminal key events into the driver controls.
type keyboard struct {
	controls *control.Controls

	left, right, brake, accel latch
}

func newKeyboard(controls *control.Controls) *keyboard {
	return &keyboard{controls: controls}
}

// handle records a key event at time now and returns the command it
// triggers, if any.
func (k *keyboard) handle(ev *tcell.EventKey, now time.Duration) command {
	switch ev.Key() {
	case tcell.KeyLeft:
		k.left.press(now)
	case tcell.KeyRight:
		k.right.press(now)
	case tcell.KeyUp:
		k.accel.press(now)
	case tcell.KeyDown:
		k.brake.press(now)
	case tcell.KeyEnter:
		return cmdConfirm
	case tcell.KeyEscape:
		return cmdPause
	case tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			k.left.press(now)
		case 'd', 'D':
			k.right.press(now)
		case 'w', 'W':
			k.accel.press(now)
		case 's', 'S':
			k.brake.press(now)
		case 'p', 'P':
			return cmdPause
		case 'r', 'R':
			return cmdRestart
		case ' ':
			return cmdHorn
		case 'm', 'M':
			return cmdMute
		case 'q', 'Q':
			return cmdQuit
		}
	}
	return cmdNone
}

// sample pushes the held keys into the controls for the tick at now.
func (k *keyboard) sample(now time.Duration) {
	k.controls.Wheel.SetKeys(k.left.held(now), k.right.held(now))
	k.controls.SetPedals(k.brake.held(now), k.accel.held(now))
}

var errQuit = errors.New("quit")

// execute applies a command to the session. Transitions that do not apply
// to the current state are ignored; errQuit ends the loop.
func execute(cmd command, s *game.Session, player *audio.Player, log zerolog.Logger) error {
	var err error
	switch cmd {
	case cmdConfirm:
		switch s.State() {
		case game.StateIdle:
			err = s.Start()
		case game.StateOver:
			err = s.Restart()
		}
	case cmdPause:
		err = s.TogglePause()
	case cmdRestart:
		err = s.Restart()
	case cmdHorn:
		if player != nil {
			player.Horn()
		}
	case cmdMute:
		if player != nil {
			player.ToggleMute()
		}
	case cmdQuit:
		return errQuit
	}

	if errors.Is(err, game.ErrInvalidTransition) {
		log.Debug().Err(err).Msg("ignored key")
		return nil
	}
	return err
}
