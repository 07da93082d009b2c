//go:build !unix

package cmd

import (
	"context"

	"github.com/Tiliavir/dial/internal/app"
)

// followTerminal sends the terminal size once; there is no resize signal.
func followTerminal(ctx context.Context, fd int, events chan<- app.Event) {
	sendTerminalSize(ctx, fd, events)
}
