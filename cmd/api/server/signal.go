package server

import (
	"context"
	"os/signal"
	"syscall"
)

// WithSignal returns a context that is canceled on SIGINT or SIGTERM.
// The returned function releases the signal registration.
func WithSignal(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}
