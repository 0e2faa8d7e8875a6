// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import (
	"context"
)

// Delivery is implemented by every server the application can run.
type Delivery interface {
	// Serve blocks, serving requests until the context is cancelled or the
	// server is shut down.
	Serve(ctx context.Context) error
}
