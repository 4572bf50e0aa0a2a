// Package game is the runtime core: the tick loop's state machine, motion,
// collision, and the glue to the link and the leaderboard. It owns all
// mutable game state; peripherals are injected and the loop driver calls
// Tick once per frame.
package game

// Screen and entity geometry, in display pixels.
const (
	ScreenWidth  = 128
	ScreenHeight = 64

	ClawWidth  = 40
	ClawY1Base = 2
	ClawY2Base = 12
	ClawY3Base = 22

	PlayerWidth = 8
	PlayerY     = 52
)

// Claw tuning.
const (
	InitialClawSpeed = 3.0
	ClawSpeedStep    = 0.25
	ClawResetY       = -10.0

	// The claw may spawn hanging this far past either screen edge, so the
	// corners are never safe.
	ClawSpawnSlack = 10

	// A fall pass is over once the offset moves this far past the player row.
	ClawPassMargin = 8
)

// Multiplayer drop animation: discrete steps down, a short hold, the same
// steps back up.
const (
	DropSteps      = 10
	DropStepPixels = 3
)

// Tilt mapping defaults. Calibration may narrow the input range.
const (
	AccelMin = -9.0
	AccelMax = 9.0

	// Maximum horizontal player speed in pixels per tick.
	PlayerMaxSpeed = 10
)

// Collision geometry. The bottom claw line reads "  |  |"; with the 6px
// glyph cell the two grabbers sit at character cells 2 and 5, each 2px
// wide, and the player's center counts as a 3px-radius point.
const (
	GrabberLeftOffset  = 2*6 + 2
	GrabberRightOffset = 5*6 + 2
	GrabberWidth       = 2
	PlayerRadius       = 3

	// Vertical window (of the bottom claw line) in which a hit can land.
	HitWindowTop    = PlayerY - 2
	HitWindowBottom = PlayerY + 4
)

// Claw and player glyphs. The collision constants above are derived from
// the bottom line's text, so the core owns these rather than the frontend.
const (
	ClawTopText    = "   ||"
	ClawMidText    = "  ===="
	ClawBottomText = "  |  |"
	PlayerText     = "*"
)

// LevelTargets holds the seconds to survive per level, all difficulties.
var LevelTargets = []float64{3, 5, 7, 10, 13, 15, 17, 15, 13, 10}
