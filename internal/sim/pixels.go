package sim

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dodge/internal/device"
)

// Pixels draws the status LED strip as squares under the screen area.
type Pixels struct {
	c []device.RGB
}

func NewPixels(n int) *Pixels {
	if n < 1 {
		n = 1
	}
	return &Pixels{c: make([]device.RGB, n)}
}

func (p *Pixels) Count() int { return len(p.c) }

func (p *Pixels) Set(i int, c device.RGB) {
	if i >= 0 && i < len(p.c) {
		p.c[i] = c
	}
}

const ledSize = 5

func (p *Pixels) Draw(screen *ebiten.Image) {
	for i, c := range p.c {
		x := float32(2 + i*(ledSize+2))
		y := float32(screenH - ledSize - 1)
		vector.DrawFilledRect(screen, x, y, ledSize, ledSize,
			color.NRGBA{c.R, c.G, c.B, 255}, false)
	}
}
