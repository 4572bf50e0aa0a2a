package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"dodge/internal/config"
	"dodge/internal/game"
	"dodge/internal/link"
	"dodge/internal/scores"
	"dodge/internal/sim"
)

func main() {
	cfg := config.Load()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	disp := sim.NewDisplay()
	ctrl := sim.NewControls()
	pix := sim.NewPixels(cfg.LEDs)

	deps := game.Deps{
		Display: disp,
		Pixels:  pix,
		Sounder: sim.Sounder{},
		Inputs:  ctrl,
		Tilt:    ctrl,
		Store:   scores.NewFileStore(cfg.ScoreFile),
		Rand:    rng,
		OpenLink: func(ctx context.Context) (link.Port, error) {
			return link.Open(ctx, cfg.Link)
		},
	}

	var loop sim.Ticker
	switch cfg.Role {
	case "shoot":
		// The shooter is useless without a wire, but a failed open still
		// leaves the local preview running.
		port, err := link.Open(context.Background(), cfg.Link)
		if err != nil {
			log.Printf("LINK: open failed: %v", err)
			port = nil
		}
		loop = game.NewShooter(deps, port, cfg.MPRoundSecs)
	default:
		loop = game.New(deps, game.Options{
			Splash:      cfg.Splash,
			Calibrate:   cfg.Calibrate,
			MPScores:    cfg.MPScores,
			MPRoundSecs: cfg.MPRoundSecs,
		})
	}

	scale := cfg.Scale
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(128*scale, 72*scale)
	ebiten.SetWindowTitle("DODGE")
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(sim.NewApp(disp, ctrl, pix, loop)); err != nil {
		log.Fatal(err)
	}
}
