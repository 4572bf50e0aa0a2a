package sim

import (
	"log"

	"dodge/internal/device"
)

// Sounder stands in for the piezo speaker. Synthesis is out of scope, so
// the cue points just go to the log.
type Sounder struct{}

func (Sounder) Play(c device.Cue) {
	names := map[device.Cue]string{
		device.CueStartup:   "startup",
		device.CueGameStart: "game start",
		device.CueGameOver:  "game over",
		device.CueWin:       "win",
	}
	log.Printf("SOUND: %s", names[c])
}
