package control

// Controls is the full driver input: a steering wheel and two pedals. It
// implements game.InputSource.
type Controls struct {
	Wheel *Wheel

	braking      bool
	accelerating bool
}

// New returns controls with a centred wheel and both pedals released.
func New() *Controls {
	return &Controls{Wheel: NewWheel()}
}

// SetPedals records the pedal state for the next tick.
func (c *Controls) SetPedals(brake, accelerate bool) {
	c.braking = brake
	c.accelerating = accelerate
}

// Release lets go of everything, e.g. when the window loses focus.
func (c *Controls) Release() {
	c.Wheel.SetKeys(false, false)
	c.Wheel.EndDrag()
	c.SetPedals(false, false)
}

func (c *Controls) Steering() float64 { return c.Wheel.Steering() }

// Brake wins over the accelerator when both are held.
func (c *Controls) Brake() bool { return c.braking }

func (c *Controls) Accelerate() bool { return c.accelerating && !c.braking }
