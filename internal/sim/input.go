package sim

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Tilt ramping per frame, in sensor units (the real axis tops out near g).
const (
	tiltStep  = 0.6
	tiltDecay = 0.8
	tiltLimit = 9.0
)

// Controls synthesizes the handheld's raw inputs from the keyboard:
// arrow keys lean the board, Z/X turn the encoder, Space is the button.
// It produces honest electrical levels — a queued encoder detent becomes
// a one-tick phase-A low pulse with phase B at the direction level — so
// the game's edge detection runs unmodified.
type Controls struct {
	tilt float64

	// pending encoder detents; +1 clockwise, -1 counter-clockwise.
	queue []int
	// current pulse: 0 idle, 1 A held low this tick.
	pulse    int
	pulseDir int

	button bool
}

func NewControls() *Controls {
	return &Controls{}
}

// Update advances the synthetic input state. Call once per frame, before
// the game tick samples the levels.
func (c *Controls) Update() {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		c.tilt += tiltStep
		if c.tilt > tiltLimit {
			c.tilt = tiltLimit
		}
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		c.tilt -= tiltStep
		if c.tilt < -tiltLimit {
			c.tilt = -tiltLimit
		}
	case c.tilt > tiltDecay:
		c.tilt -= tiltDecay
	case c.tilt < -tiltDecay:
		c.tilt += tiltDecay
	default:
		c.tilt = 0
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		c.queue = append(c.queue, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		c.queue = append(c.queue, -1)
	}

	if c.pulse > 0 {
		c.pulse = 0
	} else if len(c.queue) > 0 {
		c.pulseDir = c.queue[0]
		c.queue = c.queue[1:]
		c.pulse = 1
	}

	c.button = ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyEnter)
}

// Button is the raw active-low level: false while pressed.
func (c *Controls) Button() bool { return !c.button }

func (c *Controls) PhaseA() bool { return c.pulse == 0 }

func (c *Controls) PhaseB() bool {
	if c.pulse > 0 {
		return c.pulseDir > 0
	}
	return true
}

// Acceleration implements device.Tilt. The simulated sensor never fails.
func (c *Controls) Acceleration() (float64, float64, float64, error) {
	return c.tilt, 0, -9.8, nil
}
