package game

import "time"

// Drop animation pacing.
const (
	dropHold  = 150 * time.Millisecond
	dropGuard = 100 * time.Millisecond

	// Minimum time between life losses while the claw lingers on the
	// player row. The single-player pass flag can't cover repeated
	// multiplayer drops, so time does.
	hitCooldown = 500 * time.Millisecond
)

// dropAnim is the scripted down-then-up claw motion, advanced one step per
// tick so the loop keeps doing bounded work instead of sleeping inline.
type dropAnim struct {
	active    bool
	step      int
	rising    bool
	holdUntil time.Time
	// hit marks a life already lost during this descent.
	hit bool
}

func (d *dropAnim) start() {
	*d = dropAnim{active: true}
}

// advance moves the animation one tick and returns the current vertical
// offset. done fires on the tick the claw returns to its reset posture.
func (d *dropAnim) advance(now time.Time) (offset float64, done bool) {
	switch {
	case !d.rising:
		if d.step < DropSteps {
			d.step++
		} else if d.holdUntil.IsZero() {
			d.holdUntil = now.Add(dropHold)
		} else if !now.Before(d.holdUntil) {
			d.rising = true
		}
	case d.step > 0:
		d.step--
	}

	if d.rising && d.step == 0 {
		d.active = false
		return ClawResetY, true
	}
	return float64(d.step * DropStepPixels), false
}

// descending reports whether collisions apply: hits only land on the way
// down, never on the rise back up.
func (d *dropAnim) descending() bool {
	return d.active && !d.rising
}
