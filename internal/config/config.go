// Package config loads process configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Link describes how (and whether) the multiplayer serial link is opened.
type Link struct {
	// Kind selects the transport: "tcp", "ws", "serial" or "" for none.
	Kind string
	// Listen is the address to accept the peer on; when empty, Peer is dialed.
	Listen string
	// Peer is the address (tcp) or URL (ws) of the other device.
	Peer       string
	SerialPort string
	SerialBaud int
}

type Config struct {
	// Role is "dodge" (default) or "shoot", the aiming peer.
	Role string
	Link Link

	ScoreFile string
	Scale     int
	TPS       int
	LEDs      int
	Seed      int64

	Calibrate bool
	Splash    bool

	// MPScores controls whether a multiplayer round may enter the leaderboard.
	MPScores    bool
	MPRoundSecs float64
}

// Load reads the environment. Every key has a default; nothing here fails.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Role: getenv("DODGE_ROLE", "dodge"),
		Link: Link{
			Kind:       getenv("DODGE_LINK", "tcp"),
			Listen:     getenv("DODGE_LISTEN", ""),
			Peer:       getenv("DODGE_PEER", "127.0.0.1:7777"),
			SerialPort: getenv("DODGE_SERIAL_PORT", ""),
			SerialBaud: getint("DODGE_SERIAL_BAUD", 115200),
		},
		ScoreFile:   getenv("DODGE_SCORE_FILE", "high_scores.txt"),
		Scale:       getint("DODGE_SCALE", 4),
		TPS:         getint("DODGE_TPS", 50),
		LEDs:        getint("DODGE_LEDS", 1),
		Seed:        getint64("DODGE_SEED", 0),
		Calibrate:   getbool("DODGE_CALIBRATE", false),
		Splash:      getbool("DODGE_SPLASH", true),
		MPScores:    getbool("DODGE_MP_SCORES", false),
		MPRoundSecs: getfloat("DODGE_MP_ROUND_SECS", 60),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getint64(k string, def int64) int64 {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
