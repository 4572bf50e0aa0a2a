package link

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log"
	"net"
	"sync"
)

// streamPort adapts any byte stream (TCP conn, serial port) to the Port
// contract. A reader goroutine splits the stream into lines and feeds a
// buffered channel; ReadLine just polls that channel. When the buffer is
// full the oldest line is dropped, which suits a protocol where only the
// freshest value matters.
type streamPort struct {
	mu     sync.Mutex
	rw     io.ReadWriteCloser
	inCh   chan string
	closed bool
}

const portBuffer = 64

func newStreamPort(rw io.ReadWriteCloser) *streamPort {
	p := &streamPort{rw: rw, inCh: make(chan string, portBuffer)}
	go p.reader()
	return p
}

func (p *streamPort) reader() {
	sc := bufio.NewScanner(p.rw)
	for sc.Scan() {
		select {
		case p.inCh <- sc.Text():
		default:
			select {
			case <-p.inCh:
			default:
			}
			p.inCh <- sc.Text()
		}
	}
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	close(p.inCh)
}

func (p *streamPort) ReadLine() (string, bool) {
	select {
	case line, ok := <-p.inCh:
		return line, ok
	default:
		return "", false
	}
}

func (p *streamPort) WriteLine(line string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return errors.New("link: write on closed port")
	}
	_, err := p.rw.Write([]byte(line + "\n"))
	if err != nil {
		p.closed = true
	}
	return err
}

func (p *streamPort) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return p.rw.Close()
}

// Dial connects to a listening peer over TCP. Cancelling ctx aborts the
// attempt; an established port outlives it.
func Dial(ctx context.Context, addr string) (Port, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	log.Printf("LINK: connected to %s", addr)
	return newStreamPort(conn), nil
}

// Listen accepts exactly one peer over TCP, then stops listening.
// Cancelling ctx unblocks the accept and releases the listen address, so
// an abandoned session never keeps the port bound.
func Listen(ctx context.Context, addr string) (Port, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	defer ln.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = ln.Close()
		case <-done:
		}
	}()

	log.Printf("LINK: waiting for peer on %s", addr)
	conn, err := ln.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	log.Printf("LINK: peer connected from %s", conn.RemoteAddr())
	return newStreamPort(conn), nil
}
