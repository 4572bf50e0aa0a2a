package game

import "dodge/internal/device"

// Rotation is the per-tick encoder signal.
type Rotation int

const (
	RotateNone Rotation = iota
	RotatePos           // clockwise
	RotateNeg
)

// Sample is everything the loop learns from the controls in one tick.
type Sample struct {
	// Confirm is true exactly once per physical button press.
	Confirm bool
	Rotate  Rotation
	// Tilt is the raw X-axis reading; 0 when the sensor read failed.
	Tilt float64
}

// Sampler edge-detects the button and encoder from their raw levels.
// The button line is active low: a press is the released->pressed falling
// edge. The encoder emits a direction when phase A changes level — only on
// A's falling edge, with phase B's level at that instant picking the
// direction. One phase-A transition resolves per tick.
type Sampler struct {
	in   device.Inputs
	tilt device.Tilt

	lastBtn bool
	lastA   bool
}

func NewSampler(in device.Inputs, tilt device.Tilt) *Sampler {
	return &Sampler{
		in:      in,
		tilt:    tilt,
		lastBtn: in.Button(),
		lastA:   in.PhaseA(),
	}
}

// Tick samples all inputs once. It never mutates anything beyond its own
// edge-detection state.
func (s *Sampler) Tick() Sample {
	var out Sample

	btn := s.in.Button()
	out.Confirm = s.lastBtn && !btn
	s.lastBtn = btn

	a := s.in.PhaseA()
	if a != s.lastA {
		if !a {
			if s.in.PhaseB() {
				out.Rotate = RotatePos
			} else {
				out.Rotate = RotateNeg
			}
		}
		s.lastA = a
	}

	x, _, _, err := s.tilt.Acceleration()
	if err != nil {
		x = 0 // neutral on sensor failure, never an error
	}
	out.Tilt = x

	return out
}
