// Package sim is the desktop frontend: an ebiten window standing in for
// the handheld's OLED, encoder, tilt sensor and status pixel.
package sim

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"dodge/internal/device"
)

type anchor int

const (
	anchorLeft anchor = iota
	anchorCenter
	anchorRight
)

type fieldState struct {
	text   string
	x, y   int
	anchor anchor
	color  color.Color
}

var (
	colWhite  = color.NRGBA{255, 255, 255, 255}
	colYellow = color.NRGBA{255, 255, 0, 255}
	colGreen  = color.NRGBA{0, 255, 0, 255}
)

// Display lays the fields out the way the firmware's labels were anchored.
type Display struct {
	fields [device.NumFields]fieldState
}

func NewDisplay() *Display {
	d := &Display{}
	set := func(f device.Field, x, y int, a anchor, c color.Color) {
		d.fields[f] = fieldState{x: x, y: y, anchor: a, color: c}
	}

	set(device.FieldTitle, screenW/2, 0, anchorCenter, colYellow)
	set(device.FieldLevel, 0, 0, anchorLeft, colYellow)
	set(device.FieldTimer, 0, 10, anchorLeft, colWhite)
	set(device.FieldLives, screenW-2, 0, anchorRight, colWhite)
	set(device.FieldScore, screenW-2, 10, anchorRight, colWhite)
	set(device.FieldBoardTitle, screenW/2, 5, anchorCenter, colYellow)
	set(device.FieldBoardLine1, screenW/2, 20, anchorCenter, colWhite)
	set(device.FieldBoardLine2, screenW/2, 30, anchorCenter, colWhite)
	set(device.FieldBoardLine3, screenW/2, 40, anchorCenter, colWhite)
	set(device.FieldPrompt, screenW/2, 52, anchorCenter, colGreen)
	set(device.FieldMessage, screenW/2, 27, anchorCenter, colWhite)
	set(device.FieldDebug, screenW/2, 44, anchorCenter, colWhite)
	set(device.FieldClawTop, 0, -100, anchorLeft, colWhite)
	set(device.FieldClawMid, 0, -100, anchorLeft, colWhite)
	set(device.FieldClawBottom, 0, -100, anchorLeft, colWhite)
	set(device.FieldPlayer, 0, -100, anchorLeft, colWhite)
	return d
}

func (d *Display) SetText(f device.Field, s string) {
	d.fields[f].text = s
}

func (d *Display) Move(f device.Field, x, y int) {
	d.fields[f].x = x
	d.fields[f].y = y
}

// Glyph metrics of the stand-in face; the firmware's font cell was 6x8.
const (
	glyphW     = 7
	lineHeight = 10
	baseline   = 8
)

func (d *Display) Draw(screen *ebiten.Image) {
	for i := range d.fields {
		f := &d.fields[i]
		if f.text == "" {
			continue
		}
		for li, line := range strings.Split(f.text, "\n") {
			x := f.x
			switch f.anchor {
			case anchorCenter:
				x -= len(line) * glyphW / 2
			case anchorRight:
				x -= len(line) * glyphW
			}
			y := f.y + li*lineHeight + baseline
			text.Draw(screen, line, basicfont.Face7x13, x, y, f.color)
		}
	}
}
