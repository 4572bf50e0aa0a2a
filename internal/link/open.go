package link

import (
	"context"
	"fmt"

	"dodge/internal/config"
)

// Open builds the configured transport. Kind "tcp" and "ws" listen when a
// listen address is set and dial otherwise; "serial" opens the cable.
// Kind "" means the link is not configured at all. ctx cancels a pending
// listen or dial without affecting an already-opened port.
func Open(ctx context.Context, cfg config.Link) (Port, error) {
	switch cfg.Kind {
	case "tcp":
		if cfg.Listen != "" {
			return Listen(ctx, cfg.Listen)
		}
		return Dial(ctx, cfg.Peer)
	case "ws":
		if cfg.Listen != "" {
			return ListenWS(ctx, cfg.Listen)
		}
		return DialWS(ctx, cfg.Peer)
	case "serial":
		return OpenSerial(cfg.SerialPort, cfg.SerialBaud)
	case "":
		return nil, fmt.Errorf("link: no transport configured")
	}
	return nil, fmt.Errorf("link: unknown transport %q", cfg.Kind)
}
