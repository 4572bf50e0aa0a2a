package link

import (
	"log"
	"time"

	"go.bug.st/serial"
)

// OpenSerial opens a real serial cable to the other device, the transport
// the handheld hardware uses.
func OpenSerial(name string, baud int) (Port, error) {
	mode := &serial.Mode{BaudRate: baud}
	sp, err := serial.Open(name, mode)
	if err != nil {
		return nil, err
	}
	// Short timeout so the reader goroutine keeps polling instead of
	// parking forever on a quiet line.
	if err := sp.SetReadTimeout(10 * time.Millisecond); err != nil {
		_ = sp.Close()
		return nil, err
	}
	log.Printf("LINK: serial %s @ %d baud", name, baud)
	return newStreamPort(serialStream{sp}), nil
}

// serialStream papers over the timeout reads: a zero-byte read with no
// error means "nothing yet", which bufio.Scanner would treat as EOF.
type serialStream struct {
	port serial.Port
}

func (s serialStream) Read(p []byte) (int, error) {
	for {
		n, err := s.port.Read(p)
		if n > 0 || err != nil {
			return n, err
		}
	}
}

func (s serialStream) Write(p []byte) (int, error) { return s.port.Write(p) }

func (s serialStream) Close() error { return s.port.Close() }
