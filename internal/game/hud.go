package game

import (
	"fmt"

	"dodge/internal/device"
)

// Off-screen row used to hide the claw's text lines.
const hiddenY = -100

func (g *Game) updateHUD(remaining float64) {
	g.disp.SetText(device.FieldLevel, fmt.Sprintf("Lv%d", g.levelIdx+1))
	g.disp.SetText(device.FieldLives, fmt.Sprintf("L%d", g.lives))
	g.disp.SetText(device.FieldTimer, fmt.Sprintf("T:%ds", int(remaining)))
	g.disp.SetText(device.FieldScore, fmt.Sprintf("S:%d", g.score))
}

func (g *Game) drawClaw() {
	off := int(g.claw.Offset)
	g.disp.Move(device.FieldClawTop, g.claw.X, ClawY1Base+off)
	g.disp.Move(device.FieldClawMid, g.claw.X, ClawY2Base+off)
	g.disp.Move(device.FieldClawBottom, g.claw.X, ClawY3Base+off)
}

func (g *Game) hideClaw() {
	g.disp.Move(device.FieldClawTop, g.claw.X, hiddenY)
	g.disp.Move(device.FieldClawMid, g.claw.X, hiddenY)
	g.disp.Move(device.FieldClawBottom, g.claw.X, hiddenY)
}

// clearGameFields blanks the in-game HUD before a board screen.
func (g *Game) clearGameFields() {
	for _, f := range []device.Field{
		device.FieldTitle, device.FieldLevel, device.FieldTimer,
		device.FieldLives, device.FieldScore, device.FieldMessage,
	} {
		g.disp.SetText(f, "")
	}
}

func (g *Game) clearBoardFields() {
	for _, f := range []device.Field{
		device.FieldBoardTitle, device.FieldBoardLine1, device.FieldBoardLine2,
		device.FieldBoardLine3, device.FieldPrompt,
	} {
		g.disp.SetText(f, "")
	}
}

// updateInitialDisplay shows the three letters with the cursor bracketed.
func (g *Game) updateInitialDisplay() {
	var s string
	for i, c := range g.initials {
		if i == g.initialIdx {
			s += fmt.Sprintf("[%c]", c)
		} else {
			s += fmt.Sprintf(" %c ", c)
		}
	}
	g.disp.SetText(device.FieldBoardLine1, "")
	g.disp.SetText(device.FieldBoardLine2, s)
	g.disp.SetText(device.FieldBoardLine3, "")
}

func (g *Game) updateHealthBar() {
	for i := 0; i < g.pix.Count(); i++ {
		if i < g.lives {
			g.pix.Set(i, device.PixelAlive)
		} else {
			g.pix.Set(i, device.PixelLost)
		}
	}
}

func (g *Game) clearHealthBar() {
	for i := 0; i < g.pix.Count(); i++ {
		g.pix.Set(i, device.PixelReset)
	}
}
