package link

import (
	"net"
	"testing"
	"time"
)

func readWithPatience(t *testing.T, p Port) string {
	t.Helper()
	for i := 0; i < 200; i++ {
		if line, ok := p.ReadLine(); ok {
			return line
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("no line arrived")
	return ""
}

func TestStreamPortRoundTrip(t *testing.T) {
	a, b := net.Pipe()
	pa := newStreamPort(a)
	pb := newStreamPort(b)
	defer pa.Close()
	defer pb.Close()

	if err := pa.WriteLine("AIM:1.00"); err != nil {
		t.Fatalf("WriteLine: %v", err)
	}
	if got := readWithPatience(t, pb); got != "AIM:1.00" {
		t.Errorf("got %q, want AIM:1.00", got)
	}

	// Nothing buffered reads as not-ok, immediately.
	if _, ok := pb.ReadLine(); ok {
		t.Error("empty port should report no line")
	}
}

func TestStreamPortWriteAfterClose(t *testing.T) {
	a, b := net.Pipe()
	p := newStreamPort(a)
	defer b.Close()

	_ = p.Close()
	if err := p.WriteLine("P:1"); err == nil {
		t.Error("write on closed port should error")
	}
}
