package game

// state is the one exhaustive session state. There are no side flags:
// a Game is in exactly one of these at any tick.
type state int

const (
	stateSplash state = iota
	stateCalibrate
	stateMenu
	statePlaying
	stateGameOver
	stateWin
	stateEnterInitials
	stateShowScores
)

// Difficulty is the closed set the menu cycles through.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Multiplayer

	numDifficulties
)

// difficultySpec is the data that used to be four copy-pasted start
// functions: a label, a speed offset, and the round structure.
type difficultySpec struct {
	label       string
	speedOffset float64
	// multiplayer rounds are one flat duration with no level progression.
	multiplayer bool
}

var difficulties = [numDifficulties]difficultySpec{
	Easy:        {label: "EASY"},
	Medium:      {label: "MEDIUM", speedOffset: 0.4},
	Hard:        {label: "HARD", speedOffset: 0.8},
	Multiplayer: {label: "MULTI", multiplayer: true},
}

func (d Difficulty) String() string { return difficulties[d].label }

// MenuLabel is what the menu shows; MULTIPLAYER gets its full name there.
func (d Difficulty) MenuLabel() string {
	if d == Multiplayer {
		return "MULTIPLAYER"
	}
	return difficulties[d].label
}

// speedFor is the claw speed on a given level of this difficulty.
func (d Difficulty) speedFor(level int) float64 {
	return InitialClawSpeed + difficulties[d].speedOffset + ClawSpeedStep*float64(level)
}
