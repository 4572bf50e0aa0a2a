package sim

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Logical screen: the 128x64 panel plus a strip for the status pixels.
const (
	screenW = 128
	screenH = 72
)

// Ticker is one iteration of the cooperative game loop. Both roles
// (dodger and shooter) satisfy it.
type Ticker interface {
	Tick(now time.Time)
}

// App adapts the game loop to ebiten: Update samples the synthetic
// controls and runs exactly one tick; the TPS setting is the loop's
// per-tick sleep.
type App struct {
	disp *Display
	ctrl *Controls
	pix  *Pixels
	game Ticker
}

func NewApp(disp *Display, ctrl *Controls, pix *Pixels, game Ticker) *App {
	return &App{disp: disp, ctrl: ctrl, pix: pix, game: game}
}

func (a *App) Update() error {
	a.ctrl.Update()
	a.game.Tick(time.Now())
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.disp.Draw(screen)
	a.pix.Draw(screen)
}

func (a *App) Layout(_, _ int) (int, int) {
	return screenW, screenH
}
