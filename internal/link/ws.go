package link

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// wsPort carries one protocol line per websocket text message.
type wsPort struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	inCh   chan string
	closed bool
}

func newWSPort(conn *websocket.Conn) *wsPort {
	p := &wsPort{conn: conn, inCh: make(chan string, portBuffer)}
	go p.reader()
	return p
}

func (p *wsPort) reader() {
	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			p.mu.Lock()
			p.closed = true
			p.mu.Unlock()
			close(p.inCh)
			return
		}
		select {
		case p.inCh <- string(data):
		default:
			select {
			case <-p.inCh:
			default:
			}
			p.inCh <- string(data)
		}
	}
}

func (p *wsPort) ReadLine() (string, bool) {
	select {
	case line, ok := <-p.inCh:
		return line, ok
	default:
		return "", false
	}
}

func (p *wsPort) WriteLine(line string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return errors.New("link: write on closed port")
	}
	err := p.conn.WriteMessage(websocket.TextMessage, []byte(line))
	if err != nil {
		p.closed = true
	}
	return err
}

func (p *wsPort) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return p.conn.Close()
}

// DialWS connects to a peer serving the link at a ws:// URL. Cancelling
// ctx aborts the handshake.
func DialWS(ctx context.Context, url string) (Port, error) {
	dialer := websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	log.Printf("LINK: connected to %s", url)
	return newWSPort(conn), nil
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  256,
	WriteBufferSize: 256,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ListenWS serves /link on addr and returns once the first peer upgrades.
// Cancelling ctx shuts the server down and releases the address.
func ListenWS(ctx context.Context, addr string) (Port, error) {
	portCh := make(chan Port, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("/link", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("LINK: upgrade:", err)
			return
		}
		select {
		case portCh <- newWSPort(conn):
		default:
			_ = conn.Close() // already paired
		}
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("LINK: listen %s: %v", addr, err)
			select {
			case portCh <- nil:
			default:
			}
		}
	}()

	log.Printf("LINK: waiting for peer on ws://%s/link", addr)
	select {
	case p := <-portCh:
		_ = srv.Close()
		if p == nil {
			return nil, errors.New("link: websocket listen failed")
		}
		return p, nil
	case <-ctx.Done():
		_ = srv.Close()
		// An upgrade racing the shutdown must not leak its conn.
		select {
		case p := <-portCh:
			if p != nil {
				_ = p.Close()
			}
		default:
		}
		return nil, ctx.Err()
	}
}
