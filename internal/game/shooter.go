package game

import (
	"fmt"
	"time"

	"dodge/internal/device"
	"dodge/internal/link"
)

// Shooter is the aiming peer of a multiplayer round: it steers the claw on
// the opponent's screen with its own tilt and fires drops with the button.
// It keeps no lives or score; it mirrors the claw locally so the player
// can see what they are aiming, and shows the opponent's reported dot.
type Shooter struct {
	disp device.Display
	snd  device.Sounder
	in   *Sampler

	ch        *link.Channel
	roundSecs float64

	started    bool
	roundStart time.Time
	over       bool

	aim  float64
	claw Claw
	drop dropAnim
}

// NewShooter wires the aiming role. port may be nil, in which case the
// shooter still runs its local preview with nothing on the wire.
func NewShooter(d Deps, port link.Port, roundSecs float64) *Shooter {
	if roundSecs <= 0 {
		roundSecs = 60
	}
	s := &Shooter{
		disp:      d.Display,
		snd:       d.Sounder,
		in:        NewSampler(d.Inputs, d.Tilt),
		roundSecs: roundSecs,
	}
	if port != nil {
		s.ch = link.Attach(port)
	}

	s.disp.SetText(device.FieldClawTop, ClawTopText)
	s.disp.SetText(device.FieldClawMid, ClawMidText)
	s.disp.SetText(device.FieldClawBottom, ClawBottomText)
	s.disp.SetText(device.FieldPlayer, PlayerText)
	s.claw.Park()
	return s
}

func (s *Shooter) Tick(now time.Time) {
	in := s.in.Tick()

	if !s.started {
		s.startRound(now)
	}

	if s.ch != nil {
		s.ch.Drain()
		// The opponent reports its dot position as P lines.
		s.disp.Move(device.FieldPlayer, s.ch.OpponentPos(), PlayerY)
	}

	if s.over {
		if in.Confirm {
			s.startRound(now)
		}
		return
	}

	s.aim = in.Tilt
	if s.ch != nil {
		s.ch.SendAim(s.aim)
	}
	// Local preview of the claw the opponent sees, static sensor range.
	s.claw.AimAt(s.aim)

	if s.drop.active {
		offset, _ := s.drop.advance(now)
		s.claw.Offset = offset
	} else if in.Confirm {
		if s.ch != nil {
			s.ch.SendFire()
		}
		s.drop.start()
	}
	s.drawClaw()

	remaining := s.roundSecs - now.Sub(s.roundStart).Seconds()
	if remaining < 0 {
		remaining = 0
	}
	s.disp.SetText(device.FieldTimer, fmt.Sprintf("T:%ds", int(remaining)))

	if remaining <= 0 {
		s.over = true
		s.disp.SetText(device.FieldMessage, "ROUND OVER\nPress to rearm")
		s.snd.Play(device.CueWin)
	}
}

func (s *Shooter) startRound(now time.Time) {
	s.started = true
	s.over = false
	s.roundStart = now
	s.drop = dropAnim{}
	s.claw.Park()
	s.disp.SetText(device.FieldTitle, "SHOOTER")
	s.disp.SetText(device.FieldMessage, "")
	s.snd.Play(device.CueGameStart)
}

func (s *Shooter) drawClaw() {
	off := int(s.claw.Offset)
	s.disp.Move(device.FieldClawTop, s.claw.X, ClawY1Base+off)
	s.disp.Move(device.FieldClawMid, s.claw.X, ClawY2Base+off)
	s.disp.Move(device.FieldClawBottom, s.claw.X, ClawY3Base+off)
}
