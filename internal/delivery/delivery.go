// Package delivery holds the transports that expose the use cases.
package delivery

import "context"

// Delivery is a server started by the application after dependency wiring.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
