package game

import "testing"

func TestCollidesOnGrabber(t *testing.T) {
	clawX := 40
	left := clawX + GrabberLeftOffset
	right := clawX + GrabberRightOffset

	// Player center exactly on each grabber, bottom line on the player row.
	if !Collides(clawX, PlayerY, left) {
		t.Error("center on left grabber should hit")
	}
	if !Collides(clawX, PlayerY, right) {
		t.Error("center on right grabber should hit")
	}
	// Radius reaches a little past the grabber edges.
	if !Collides(clawX, PlayerY, left-PlayerRadius) {
		t.Error("center within radius of left grabber should hit")
	}
	if Collides(clawX, PlayerY, left-PlayerRadius-1) {
		t.Error("center just outside radius should miss")
	}
}

func TestCollidesCaughtBetween(t *testing.T) {
	clawX := 40
	mid := clawX + (GrabberLeftOffset+GrabberRightOffset+GrabberWidth)/2
	if !Collides(clawX, PlayerY, mid) {
		t.Error("center between the grabbers should count as caught")
	}
}

func TestCollidesVerticalWindow(t *testing.T) {
	clawX := 40
	onGrabber := clawX + GrabberLeftOffset

	if Collides(clawX, 10, onGrabber) {
		t.Error("claw far above the player row should never hit")
	}
	if !Collides(clawX, HitWindowTop, onGrabber) {
		t.Error("top of the hit window should hit")
	}
	if !Collides(clawX, HitWindowBottom, onGrabber) {
		t.Error("bottom of the hit window should hit")
	}
	if Collides(clawX, HitWindowTop-1, onGrabber) || Collides(clawX, HitWindowBottom+1, onGrabber) {
		t.Error("just outside the window should miss")
	}
}

func TestCollidesIdempotent(t *testing.T) {
	// Same positions, same answer, every time.
	for i := 0; i < 5; i++ {
		if !Collides(40, PlayerY, 40+GrabberLeftOffset) {
			t.Fatal("predicate changed its mind between calls")
		}
	}
}
