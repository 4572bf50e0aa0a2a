// Package link implements the two-player serial protocol: newline-terminated
// ASCII lines, best effort, no framing beyond the newline. Garbled lines are
// dropped; a dead transport degrades to "no updates" rather than an error
// the game loop would have to care about.
package link

import (
	"fmt"
	"strconv"
	"strings"
)

// Wire grammar. Both sides parse the same three shapes and ignore
// anything they have no use for.
const (
	prefixAim = "AIM:"
	prefixPos = "P:"
	fireLine  = "FIRE:1"
)

func formatAim(v float64) string { return fmt.Sprintf("AIM:%.2f", v) }
func formatPos(x int) string     { return fmt.Sprintf("P:%d", x) }

type msgKind int

const (
	msgNone msgKind = iota
	msgAim
	msgFire
	msgPos
)

type msg struct {
	kind msgKind
	aim  float64
	pos  int
}

// parseLine decodes one received line. Unrecognized prefixes and malformed
// payloads both come back as msgNone.
func parseLine(line string) msg {
	line = strings.TrimSpace(line)
	switch {
	case line == fireLine:
		return msg{kind: msgFire}
	case strings.HasPrefix(line, prefixAim):
		v, err := strconv.ParseFloat(line[len(prefixAim):], 64)
		if err != nil {
			return msg{}
		}
		return msg{kind: msgAim, aim: v}
	case strings.HasPrefix(line, prefixPos):
		n, err := strconv.Atoi(line[len(prefixPos):])
		if err != nil {
			return msg{}
		}
		return msg{kind: msgPos, pos: n}
	}
	return msg{}
}
