package link

import "testing"

// fakePort scripts inbound lines and records outbound ones.
type fakePort struct {
	in     []string
	out    []string
	wrErr  error
	closed bool
}

func (p *fakePort) ReadLine() (string, bool) {
	if len(p.in) == 0 {
		return "", false
	}
	line := p.in[0]
	p.in = p.in[1:]
	return line, true
}

func (p *fakePort) WriteLine(line string) error {
	if p.wrErr != nil {
		return p.wrErr
	}
	p.out = append(p.out, line)
	return nil
}

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

func TestParseLine(t *testing.T) {
	cases := []struct {
		line string
		want msg
	}{
		{"AIM:3.50", msg{kind: msgAim, aim: 3.5}},
		{"AIM:-9", msg{kind: msgAim, aim: -9}},
		{"AIM:banana", msg{}},
		{"FIRE:1", msg{kind: msgFire}},
		{"FIRE:2", msg{}},
		{"P:64", msg{kind: msgPos, pos: 64}},
		{"P:abc", msg{}},
		{"HELLO", msg{}},
		{"  AIM:1.25  ", msg{kind: msgAim, aim: 1.25}},
		{"", msg{}},
	}
	for _, c := range cases {
		if got := parseLine(c.line); got != c.want {
			t.Errorf("parseLine(%q) = %+v, want %+v", c.line, got, c.want)
		}
	}
}

func TestDrainKeepsFreshestState(t *testing.T) {
	p := &fakePort{in: []string{
		"AIM:1.00",
		"FIRE:1",
		"garbage",
		"AIM:2.50",
		"P:17",
		"P:40",
	}}
	c := Attach(p)
	c.Drain()

	if c.Aim() != 2.5 {
		t.Errorf("Aim = %v, want last value 2.5", c.Aim())
	}
	if c.OpponentPos() != 40 {
		t.Errorf("OpponentPos = %d, want 40", c.OpponentPos())
	}
	if !c.TakeFire() {
		t.Error("fire flag should be set")
	}
	if c.TakeFire() {
		t.Error("fire flag must be one-shot")
	}
}

func TestDrainStopsWhenEmpty(t *testing.T) {
	c := Attach(&fakePort{})
	c.Drain() // must return immediately with nothing buffered
	if c.TakeFire() {
		t.Error("no fire expected")
	}
}

func TestSendPosDedupe(t *testing.T) {
	p := &fakePort{}
	c := Attach(p)

	c.SendPos(60)
	c.SendPos(60) // unchanged, suppressed
	c.SendPos(61)
	c.SendPos(61)
	c.SendPos(59)

	want := []string{"P:60", "P:61", "P:59"}
	if len(p.out) != len(want) {
		t.Fatalf("sent %v, want %v", p.out, want)
	}
	for i := range want {
		if p.out[i] != want[i] {
			t.Errorf("out[%d] = %q, want %q", i, p.out[i], want[i])
		}
	}
}

func TestSendAimDedupe(t *testing.T) {
	p := &fakePort{}
	c := Attach(p)

	c.SendAim(1.0)
	c.SendAim(1.05) // below the 0.1 threshold
	c.SendAim(1.2)

	want := []string{"AIM:1.00", "AIM:1.20"}
	if len(p.out) != len(want) {
		t.Fatalf("sent %v, want %v", p.out, want)
	}
}

func TestWriteErrorDoesNotPoisonDedupe(t *testing.T) {
	p := &fakePort{wrErr: errFake}
	c := Attach(p)
	c.SendPos(10) // swallowed
	p.wrErr = nil
	c.SendPos(10)
	if len(p.out) != 1 || p.out[0] != "P:10" {
		t.Fatalf("position should be resent after a failed write, got %v", p.out)
	}
}

var errFake = &fakeErr{}

type fakeErr struct{}

func (*fakeErr) Error() string { return "fake transport error" }
