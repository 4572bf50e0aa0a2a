package game

import (
	"fmt"
	"time"

	"dodge/internal/device"
)

// Boot splash pacing, in ticks and pixels.
const (
	splashTitle     = "DODGE GAME\nv1.0"
	splashDropStep  = 2
	splashRiseStep  = 4
	splashRiseTop   = -15
	splashFlashTick = 8
	splashFlashes   = 6
	splashPause     = 500 * time.Millisecond
)

// splashAnim is the boot animation: the claw drops through the title,
// snaps back up, and the title flashes. One step per tick.
type splashAnim struct {
	begun      bool
	phase      int // 0 drop, 1 rise, 2 flash, 3 pause
	y          int
	flashTicks int
	pauseUntil time.Time
}

func (g *Game) tickSplash(now time.Time) {
	s := &g.splash
	if !s.begun {
		s.begun = true
		g.disp.SetText(device.FieldMessage, splashTitle)
	}

	switch s.phase {
	case 0:
		s.y += splashDropStep
		g.disp.Move(device.FieldClawBottom, (ScreenWidth-ClawWidth)/2, s.y)
		if s.y >= ScreenHeight {
			s.phase = 1
		}
	case 1:
		s.y -= splashRiseStep
		g.disp.Move(device.FieldClawBottom, (ScreenWidth-ClawWidth)/2, s.y)
		if s.y <= splashRiseTop {
			s.phase = 2
		}
	case 2:
		s.flashTicks++
		if s.flashTicks%splashFlashTick == 0 {
			if (s.flashTicks/splashFlashTick)%2 == 1 {
				g.disp.SetText(device.FieldMessage, "")
			} else {
				g.disp.SetText(device.FieldMessage, splashTitle)
			}
		}
		if s.flashTicks >= splashFlashTick*splashFlashes {
			g.disp.SetText(device.FieldMessage, splashTitle)
			s.pauseUntil = now.Add(splashPause)
			s.phase = 3
		}
	case 3:
		if now.Before(s.pauseUntil) {
			return
		}
		g.disp.SetText(device.FieldMessage, "")
		g.hideClaw()
		g.snd.Play(device.CueStartup)
		if g.opts.Calibrate {
			g.st = stateCalibrate
		} else {
			g.showMenu()
		}
	}
}

// Calibration window and the minimum observed swing required before the
// recorded range replaces the static defaults.
const (
	calibDuration = 5 * time.Second
	calibMinSpan  = 2.0
)

// calibration tracks the tilt extremes over a fixed boot window. A wide
// enough span rebinds the motion mapping's input range.
type calibration struct {
	begun    bool
	start    time.Time
	min, max float64
}

func (g *Game) tickCalibrate(now time.Time, in Sample) {
	c := &g.calib
	if !c.begun {
		c.begun = true
		c.start = now
		g.disp.SetText(device.FieldTitle, "CALIBRATE")
		g.disp.SetText(device.FieldMessage, "Tilt to test")
	}

	if now.Sub(c.start) < calibDuration {
		if in.Tilt < c.min {
			c.min = in.Tilt
		}
		if in.Tilt > c.max {
			c.max = in.Tilt
		}
		g.disp.SetText(device.FieldDebug,
			fmt.Sprintf("X:%.1f Min:%.1f Max:%.1f", in.Tilt, c.min, c.max))
		return
	}

	if c.max-c.min >= calibMinSpan {
		g.tiltMin, g.tiltMax = c.min, c.max
	}
	g.disp.SetText(device.FieldDebug, "")
	g.disp.SetText(device.FieldMessage, "")
	g.showMenu()
}
