package game

import (
	"errors"
	"fmt"
)

// State is the lifecycle phase of a session.
type State uint8

const (
	StateIdle State = iota
	StateActive
	StatePaused
	StateOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// ErrInvalidTransition is returned when a lifecycle call does not apply to
// the current state.
var ErrInvalidTransition = errors.New("invalid state transition")

func transitionError(op string, from State) error {
	return fmt.Errorf("%s from %s: %w", op, from, ErrInvalidTransition)
}
