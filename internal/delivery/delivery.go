// Package delivery defines the transports that expose the usecases.
package delivery

import "context"

// Delivery is a long-running server started by a binary's fx lifecycle.
type Delivery interface {
	// Serve blocks until the server stops. A graceful shutdown returns nil.
	Serve(ctx context.Context) error
}
