package link

import "math"

// Port is one end of the line channel. ReadLine never blocks: it reports
// ok=false as soon as no buffered line remains. WriteLine queues or writes
// one line; errors are for the caller to swallow.
type Port interface {
	ReadLine() (line string, ok bool)
	WriteLine(line string) error
	Close() error
}

// Channel is the per-session protocol state on top of a Port: the freshest
// opponent aim, a one-shot fire flag, the opponent's last reported position,
// and the dedupe state for outgoing sends.
type Channel struct {
	port Port

	aim  float64
	fire bool
	pos  int

	sentPos     bool
	lastSentPos int
	sentAim     bool
	lastSentAim float64
}

func Attach(p Port) *Channel {
	return &Channel{port: p}
}

// Drain consumes every currently buffered line. Later AIM and P values
// overwrite earlier ones; FIRE flags are OR-ed until taken. The loop is
// bounded by the port's buffer, so one tick can never starve on input.
func (c *Channel) Drain() {
	for {
		line, ok := c.port.ReadLine()
		if !ok {
			return
		}
		switch m := parseLine(line); m.kind {
		case msgAim:
			c.aim = m.aim
		case msgFire:
			c.fire = true
		case msgPos:
			c.pos = m.pos
		}
	}
}

func (c *Channel) Aim() float64 { return c.aim }

func (c *Channel) OpponentPos() int { return c.pos }

// TakeFire consumes the one-shot fire request.
func (c *Channel) TakeFire() bool {
	f := c.fire
	c.fire = false
	return f
}

// SendPos reports our player position, suppressed until it has moved at
// least one pixel since the last send. Transport errors are dropped.
func (c *Channel) SendPos(x int) {
	if c.sentPos && abs(x-c.lastSentPos) < 1 {
		return
	}
	if err := c.port.WriteLine(formatPos(x)); err != nil {
		return
	}
	c.sentPos = true
	c.lastSentPos = x
}

// SendAim reports the shooter's aim, suppressed below a 0.1 change.
func (c *Channel) SendAim(v float64) {
	if c.sentAim && math.Abs(v-c.lastSentAim) < 0.1 {
		return
	}
	if err := c.port.WriteLine(formatAim(v)); err != nil {
		return
	}
	c.sentAim = true
	c.lastSentAim = v
}

func (c *Channel) SendFire() {
	_ = c.port.WriteLine(fireLine)
}

func (c *Channel) Close() {
	_ = c.port.Close()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
