//go:build unix

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Tiliavir/dial/internal/app"
)

// followTerminal sends the terminal size now and after every SIGWINCH.
func followTerminal(ctx context.Context, fd int, events chan<- app.Event) {
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)

	sendTerminalSize(ctx, fd, events)
	for {
		select {
		case <-ctx.Done():
			return
		case <-winch:
			sendTerminalSize(ctx, fd, events)
		}
	}
}
