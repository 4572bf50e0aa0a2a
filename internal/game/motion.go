package game

import "math/rand"

// Player is the dodging dot: a 1-D position clamped to the screen.
type Player struct {
	X int
}

// Move maps tilt onto a velocity in [-PlayerMaxSpeed,+PlayerMaxSpeed],
// truncates to whole pixels, and clamps the result to the screen.
func (p *Player) Move(tilt, inMin, inMax float64) {
	step := int(MapRange(tilt, inMin, inMax, -PlayerMaxSpeed, PlayerMaxSpeed))
	p.X += step
	if p.X < 0 {
		p.X = 0
	}
	if p.X > ScreenWidth-PlayerWidth {
		p.X = ScreenWidth - PlayerWidth
	}
}

// Center is the point the collision test uses.
func (p *Player) Center() int {
	return p.X + PlayerWidth/2
}

// Claw is the falling hazard. Offset is a float accumulator added to the
// three line baselines; rendering and collision read it truncated.
type Claw struct {
	X      int
	Offset float64
	Speed  float64
	// HasHit marks that this pass already cost a life.
	HasHit bool
}

// Fall advances one tick of single-player free fall.
func (c *Claw) Fall() {
	c.Offset += c.Speed
}

// PassDone reports that the claw has fallen past the player's row and the
// pass is over.
func (c *Claw) PassDone() bool {
	return c.Offset > PlayerY+ClawPassMargin
}

// Respawn parks the claw back above the screen at a random column. The
// spawn range extends ClawSpawnSlack past both edges so the grabbers can
// reach the corners.
func (c *Claw) Respawn(rng *rand.Rand) {
	c.Offset = ClawResetY
	c.HasHit = false
	c.X = rng.Intn(ScreenWidth-ClawWidth+2*ClawSpawnSlack+1) - ClawSpawnSlack
}

// Park puts the claw at the middle column without randomizing, the
// multiplayer starting posture.
func (c *Claw) Park() {
	c.Offset = ClawResetY
	c.HasHit = false
	c.X = (ScreenWidth - ClawWidth) / 2
}

// AimAt positions the claw from the opponent's raw tilt value. The wire
// carries the opponent's sensor reading, so the static sensor range
// applies, not any local calibration.
func (c *Claw) AimAt(aim float64) {
	c.X = int(MapRange(aim, AccelMin, AccelMax, 0, ScreenWidth-ClawWidth))
}

// Bottom is the screen row of the lowest claw line.
func (c *Claw) Bottom() int {
	return ClawY3Base + int(c.Offset)
}
