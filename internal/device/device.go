// Package device defines the peripheral surface the game core runs against.
// Real hardware, the desktop simulator, and the test fakes all implement
// these interfaces; the core never talks to a driver directly.
package device

// Field identifies one positioned text element on the display. The frontend
// owns placement and color; the core only sets text and, for the moving
// elements, pixel positions.
type Field int

const (
	FieldTitle Field = iota
	FieldLevel
	FieldTimer
	FieldLives
	FieldScore
	FieldBoardTitle
	FieldBoardLine1
	FieldBoardLine2
	FieldBoardLine3
	FieldPrompt
	FieldMessage
	FieldDebug
	FieldClawTop
	FieldClawMid
	FieldClawBottom
	FieldPlayer

	NumFields
)

// Display is a line-oriented text display with positioned fields.
// Move is only meaningful for the claw and player fields; the rest keep
// their fixed anchored positions.
type Display interface {
	SetText(f Field, text string)
	Move(f Field, x, y int)
}

// Tilt reads the accelerometer. Only the X axis drives the game.
type Tilt interface {
	Acceleration() (x, y, z float64, err error)
}

// Inputs exposes the raw electrical levels of the rotary encoder and its
// push button. All three lines are pulled up, so true is the idle level
// and the button reads false while pressed.
type Inputs interface {
	Button() bool
	PhaseA() bool
	PhaseB() bool
}

type RGB struct {
	R, G, B uint8
}

var (
	PixelAlive = RGB{0, 255, 0}
	PixelLost  = RGB{0, 0, 255}
	PixelReset = RGB{255, 0, 0}
)

// Pixels is the status LED strip (a single pixel on the original hardware).
type Pixels interface {
	Count() int
	Set(i int, c RGB)
}

// Cue names one of the scripted tunes. Synthesis is the sounder's problem;
// the core only marks the moments.
type Cue int

const (
	CueStartup Cue = iota
	CueGameStart
	CueGameOver
	CueWin
)

type Sounder interface {
	Play(c Cue)
}
