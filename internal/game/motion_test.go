package game

import (
	"math/rand"
	"testing"
)

func TestPlayerStaysOnScreen(t *testing.T) {
	p := Player{X: ScreenWidth / 2}
	for i := 0; i < 100; i++ {
		p.Move(1000, AccelMin, AccelMax) // absurd tilt, clamped mapping
		if p.X < 0 || p.X > ScreenWidth-PlayerWidth {
			t.Fatalf("player escaped the screen: x=%d", p.X)
		}
	}
	if p.X != ScreenWidth-PlayerWidth {
		t.Errorf("hard right tilt should pin the player at the edge, x=%d", p.X)
	}
	for i := 0; i < 100; i++ {
		p.Move(-1000, AccelMin, AccelMax)
	}
	if p.X != 0 {
		t.Errorf("hard left tilt should pin the player at zero, x=%d", p.X)
	}
}

func TestClawRespawnRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := Claw{Offset: 99, HasHit: true}
	for i := 0; i < 500; i++ {
		c.Respawn(rng)
		if c.Offset != ClawResetY {
			t.Fatalf("respawn did not reset offset: %v", c.Offset)
		}
		if c.HasHit {
			t.Fatal("respawn did not clear the hit flag")
		}
		if c.X < -ClawSpawnSlack || c.X > ScreenWidth-ClawWidth+ClawSpawnSlack {
			t.Fatalf("spawn x=%d outside the extended range", c.X)
		}
		c.HasHit = true
	}
}

func TestClawPassDone(t *testing.T) {
	c := Claw{Offset: float64(PlayerY + ClawPassMargin)}
	if c.PassDone() {
		t.Error("pass ends strictly past the margin, not at it")
	}
	c.Offset++
	if !c.PassDone() {
		t.Error("past the margin the pass should be over")
	}
}

func TestClawAimMapping(t *testing.T) {
	var c Claw
	c.AimAt(AccelMin)
	if c.X != 0 {
		t.Errorf("full left aim: x=%d, want 0", c.X)
	}
	c.AimAt(AccelMax)
	if c.X != ScreenWidth-ClawWidth {
		t.Errorf("full right aim: x=%d, want %d", c.X, ScreenWidth-ClawWidth)
	}
	c.AimAt(-100) // garbage aim stays on screen
	if c.X != 0 {
		t.Errorf("out-of-range aim should clamp, x=%d", c.X)
	}
}

func TestClawFallAccumulates(t *testing.T) {
	c := Claw{Offset: ClawResetY, Speed: 3.25}
	c.Fall()
	c.Fall()
	if c.Offset != ClawResetY+6.5 {
		t.Errorf("offset = %v, want %v", c.Offset, ClawResetY+6.5)
	}
}
