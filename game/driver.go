package game

import (
	"context"
	"time"
)

// Driver couples a Session to a frame clock and an optional presentation
// sink.
type Driver struct {
	Session *Session
	Clock   *FrameClock
	Sink    PresentationSink

	// BeforeFrame and AfterFrame, when set, run around every frame of Run
	// with the frame timestamp.
	BeforeFrame func(ts time.Duration)
	AfterFrame  func(ts time.Duration)

	inbox   chan func()
	started time.Time
}

// NewDriver creates a driver whose clock uses the session's delta cap.
// sink may be nil for headless runs.
func NewDriver(session *Session, sink PresentationSink) *Driver {
	return &Driver{
		Session: session,
		Clock:   NewFrameClock(session.Config().MaxDeltaTime),
		Sink:    sink,
		inbox:   make(chan func(), 64),
	}
}

// Frame runs one update/draw cycle for the frame at timestamp ts. While the
// session is idle or paused the clock is held, so time spent there is never
// integrated.
func (d *Driver) Frame(ts time.Duration) {
	switch d.Session.State() {
	case StateIdle, StatePaused:
		d.Clock.Reset()
	default:
		d.Session.Update(d.Clock.Tick(ts))
	}
	if d.Sink != nil {
		d.Session.Draw(d.Sink)
	}
}

// Do queues fn to run on the goroutine executing Run, between frames. It
// reports false if ctx ended first.
func (d *Driver) Do(ctx context.Context, fn func()) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case d.inbox <- fn:
		return true
	case <-ctx.Done():
		return false
	}
}

// Since is the time elapsed on Run's frame timeline. It is only meaningful
// from functions Run calls.
func (d *Driver) Since() time.Duration {
	return time.Since(d.started)
}

// Run drives frames from a ticker until ctx is done and returns ctx.Err().
// Functions queued with Do run in between.
func (d *Driver) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.started = time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-d.inbox:
			fn()
		case now := <-ticker.C:
			ts := now.Sub(d.started)
			if d.BeforeFrame != nil {
				d.BeforeFrame(ts)
			}
			d.Frame(ts)
			if d.AfterFrame != nil {
				d.AfterFrame(ts)
			}
		}
	}
}
