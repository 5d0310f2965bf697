// Package delivery defines the inbound transport contracts of the application.
package delivery

import "context"

// Delivery is a long-running inbound adapter, such as an HTTP server.
type Delivery interface {
	// Serve blocks serving requests until the context is cancelled or the
	// listener fails.
	Serve(ctx context.Context) error
}
