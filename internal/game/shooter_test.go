package game

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"dodge/internal/device"
)

func newTestShooter(roundSecs float64) (*Shooter, *fakePort, *fakeDisplay, *fakeInputs, *fakeTilt) {
	port := &fakePort{}
	disp := newFakeDisplay()
	in := &fakeInputs{btn: true, a: true, b: true}
	tilt := &fakeTilt{}
	s := NewShooter(Deps{
		Display: disp,
		Pixels:  &fakePixels{c: make([]device.RGB, 1)},
		Sounder: &fakeSounder{},
		Inputs:  in,
		Tilt:    tilt,
		Store:   &fakeStore{},
		Rand:    rand.New(rand.NewSource(1)),
	}, port, roundSecs)
	return s, port, disp, in, tilt
}

func TestShooterSendsAimAndFire(t *testing.T) {
	s, port, _, in, tilt := newTestShooter(60)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tilt.x = 3.0
	s.Tick(now)
	if len(port.out) == 0 || port.out[0] != "AIM:3.00" {
		t.Fatalf("out = %v, want AIM:3.00 first", port.out)
	}

	// Tiny wobble is deduped, a real change goes out.
	tilt.x = 3.05
	s.Tick(now.Add(tickStep))
	tilt.x = 4.0
	s.Tick(now.Add(2 * tickStep))
	var aims []string
	for _, l := range port.out {
		if strings.HasPrefix(l, "AIM:") {
			aims = append(aims, l)
		}
	}
	if len(aims) != 2 || aims[1] != "AIM:4.00" {
		t.Errorf("aims = %v, want [AIM:3.00 AIM:4.00]", aims)
	}

	// Button press fires and starts the local preview drop.
	in.btn = false
	s.Tick(now.Add(3 * tickStep))
	in.btn = true
	fired := false
	for _, l := range port.out {
		if l == "FIRE:1" {
			fired = true
		}
	}
	if !fired {
		t.Error("button press should send FIRE:1")
	}
	if !s.drop.active {
		t.Error("preview drop should be running")
	}
}

func TestShooterShowsOpponentDot(t *testing.T) {
	s, port, disp, _, _ := newTestShooter(60)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	port.in = append(port.in, "P:40")
	s.Tick(now)

	if got := disp.pos[device.FieldPlayer]; got != [2]int{40, PlayerY} {
		t.Errorf("opponent dot at %v, want [40 %d]", got, PlayerY)
	}
}

func TestShooterRoundEndsAndRearms(t *testing.T) {
	s, _, disp, in, _ := newTestShooter(2)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	s.Tick(now)
	s.Tick(now.Add(3 * time.Second))
	if !s.over {
		t.Fatal("round should be over")
	}
	if got := disp.texts[device.FieldMessage]; got != "ROUND OVER\nPress to rearm" {
		t.Errorf("message = %q", got)
	}

	in.btn = false
	s.Tick(now.Add(3*time.Second + tickStep))
	in.btn = true
	if s.over {
		t.Error("press should start a fresh round")
	}
}
